package handlers

import (
	"net/http"

	"github.com/ghuser/electrocart/pkg/httpx"
	appsvcs "github.com/ghuser/electrocart/services/item/application/services"
)

// GetCatalogHandler handles GET /catalog requests.
type GetCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetCatalogHandler returns a GetCatalogHandler backed by the given services.
func NewGetCatalogHandler(svc *appsvcs.Services) *GetCatalogHandler {
	return &GetCatalogHandler{svc: svc}
}

// Execute lists the purchasable item kinds.
//
//	@Summary		List catalog
//	@Description	Lists every item kind with its default price, wiring and extras limit (-1 means unlimited)
//	@Tags			receipts
//	@Produce		json
//	@Success		200	{object}	CatalogResponse
//	@Router			/catalog [get]
func (h *GetCatalogHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, CatalogResponse{Items: h.svc.Receipt.Catalog()})
}
