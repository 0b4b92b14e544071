package handlers

import (
	"net/http"

	"github.com/ghuser/electrocart/pkg/errhttp"
	"github.com/ghuser/electrocart/pkg/httpx"
	"github.com/ghuser/electrocart/pkg/telemetry"
	pkgvalidator "github.com/ghuser/electrocart/pkg/validator"
	appsvcs "github.com/ghuser/electrocart/services/item/application/services"
	"github.com/ghuser/electrocart/services/item/domain/models"
)

func init() {
	if err := pkgvalidator.RegisterString("item_kind", func(s string) bool {
		_, err := models.ParseKind(s)
		return err == nil
	}); err != nil {
		panic(err)
	}
}

// PostReceiptHandler handles POST /receipt requests.
type PostReceiptHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostReceiptHandler returns a PostReceiptHandler backed by the given services.
func NewPostReceiptHandler(svc *appsvcs.Services, isProduction bool) *PostReceiptHandler {
	return &PostReceiptHandler{svc: svc, isProduction: isProduction}
}

// Execute builds the cart and renders its receipt.
//
//	@Summary		Render receipt
//	@Description	Builds a cart from lines of items with nested extras and renders a fixed-width receipt, most expensive item first
//	@Tags			receipts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RenderReceiptRequest	true	"Cart and print options"
//	@Success		200		{object}	RenderReceiptResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/receipt [post]
func (h *PostReceiptHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RenderReceiptRequest](w, r)
	if !ok {
		return
	}

	receipt, err := h.svc.Receipt.Render(r.Context(), req.toRenderRequest())
	if err != nil {
		if errhttp.Status(err) >= http.StatusInternalServerError {
			telemetry.CaptureError(r.Context(), err)
		}
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, RenderReceiptResponse{
		Key:        receipt.Key,
		Text:       receipt.Text,
		Lines:      receipt.Lines,
		Total:      receipt.Total,
		ItemCount:  receipt.ItemCount,
		Items:      receipt.Items,
		Cached:     receipt.Cached,
		RenderedAt: receipt.RenderedAt,
	})
}
