package handlers

import (
	"time"

	appsvcs "github.com/ghuser/electrocart/services/item/application/services"
	domainsvcs "github.com/ghuser/electrocart/services/item/domain/services"
)

// LineRequest is one cart line: an item kind, optional overrides, and the
// extras to attach to it in order.
type LineRequest struct {
	Kind      string         `json:"kind" validate:"required,item_kind" example:"console"`
	Overrides map[string]any `json:"overrides,omitempty"`
	Extras    []LineRequest  `json:"extras,omitempty" validate:"omitempty,max=16,dive"`
} // @name LineRequest

// RenderReceiptRequest is the request body for POST /receipt.
type RenderReceiptRequest struct {
	Lines    []LineRequest `json:"lines" validate:"max=100,dive"`
	Width    int           `json:"width,omitempty" validate:"omitempty,gte=10,lte=200" example:"50"`
	Detailed *bool         `json:"detailed,omitempty" example:"true"`
	Grouped  bool          `json:"grouped,omitempty" example:"false"`
	Order    string        `json:"order,omitempty" validate:"omitempty,oneof=asc desc" example:"asc"`
} // @name RenderReceiptRequest

// RenderReceiptResponse is returned by POST /receipt.
type RenderReceiptResponse struct {
	Key        string                `json:"key" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Text       string                `json:"text"`
	Lines      []string              `json:"lines"`
	Total      string                `json:"total" example:"555.00"`
	ItemCount  int                   `json:"item_count" example:"4"`
	Items      []appsvcs.ReceiptItem `json:"items"`
	Cached     bool                  `json:"cached"`
	RenderedAt time.Time             `json:"rendered_at"`
} // @name RenderReceiptResponse

// CatalogResponse is returned by GET /catalog.
type CatalogResponse struct {
	Items []appsvcs.CatalogEntry `json:"items"`
} // @name CatalogResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"lines[0]: extras[0]: extras not allowed: microwave cannot have any extras"`
} // @name ErrorResponse

func (r *RenderReceiptRequest) toRenderRequest() appsvcs.RenderRequest {
	detailed := true
	if r.Detailed != nil {
		detailed = *r.Detailed
	}
	return appsvcs.RenderRequest{
		Lines:    toLineSpecs(r.Lines),
		Width:    r.Width,
		Detailed: detailed,
		Grouped:  r.Grouped,
		Order:    r.Order,
	}
}

func toLineSpecs(in []LineRequest) []domainsvcs.LineSpec {
	if len(in) == 0 {
		return nil
	}
	out := make([]domainsvcs.LineSpec, len(in))
	for i, l := range in {
		out[i] = domainsvcs.LineSpec{
			Kind:      l.Kind,
			Overrides: l.Overrides,
			Extras:    toLineSpecs(l.Extras),
		}
	}
	return out
}
