package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stageops/pkg/app"
	"github.com/ghuser/stageops/services/procurement/application/handlers"
	appsvcs "github.com/ghuser/stageops/services/procurement/application/services"
)

// OrderRoutes registers procurement endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	reads := handlers.NewGetOrdersHandler(svcs)
	actions := handlers.NewOrderActionsHandler(svcs)
	payments := handlers.NewPaymentActionsHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Get("/dashboard", reads.Dashboard)
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Get("/", reads.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", reads.Get)
				r.Post("/approve", actions.Approve)
				r.Post("/reject", actions.Reject)
				r.Post("/deliver", actions.Deliver)
				r.Post("/receive", actions.Receive)
				r.Route("/payment", func(r chi.Router) {
					r.Post("/submit", payments.Submit)
					r.Post("/approve", payments.Approve)
					r.Post("/reject", payments.Reject)
					r.Post("/process", payments.Process)
					r.Post("/mark-paid", payments.MarkPaid)
					r.Post("/confirm", payments.Confirm)
				})
			})
		})
	})
}
