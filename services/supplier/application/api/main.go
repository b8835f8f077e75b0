package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stageops/pkg/app"
	"github.com/ghuser/stageops/services/supplier/application/handlers"
	appsvcs "github.com/ghuser/stageops/services/supplier/application/services"
)

// SupplierRoutes registers supplier endpoints on the provided chi router.
func SupplierRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", handlers.NewPostSupplierHandler(svcs).Execute)
			r.Get("/", handlers.NewGetSuppliersHandler(svcs).Execute)
		})
	})
}
