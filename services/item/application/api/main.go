package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/electrocart/pkg/app"
	"github.com/ghuser/electrocart/services/item/application/handlers"
	appsvcs "github.com/ghuser/electrocart/services/item/application/services"
)

// ReceiptRoutes registers catalog and receipt endpoints on the provided chi router.
func ReceiptRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Get("/catalog", handlers.NewGetCatalogHandler(svcs).Execute)
		r.Post("/receipt", handlers.NewPostReceiptHandler(svcs, a.Receipts.IsProduction).Execute)
	})
}
