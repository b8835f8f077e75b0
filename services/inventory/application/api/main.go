package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stageops/pkg/app"
	"github.com/ghuser/stageops/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stageops/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Get("/low-stock", handlers.NewGetLowStockHandler(svcs).Execute)
			r.Post("/{id}/restock", handlers.NewPostRestockHandler(svcs).Execute)
			r.Post("/{id}/consume", handlers.NewPostConsumeHandler(svcs).Execute)
		})
	})
}
