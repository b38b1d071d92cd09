package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/atelier/pkg/app"
	"github.com/ghuser/atelier/pkg/auth"
	"github.com/ghuser/atelier/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
)

// InventoryRoutes registers the inventory endpoints on the provided chi
// router. All routes require an authenticated session.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))

		r.Route("/inventory", func(r chi.Router) {
			r.Route("/items", func(r chi.Router) {
				r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
				r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
				r.Post("/bulk-status", handlers.NewBulkStatusHandler(svcs).Execute)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
					r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
					r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
					r.Put("/status", handlers.NewPutItemStatusHandler(svcs).Execute)

					r.Post("/stones", handlers.NewPostStoneHandler(svcs).Execute)
					r.Get("/stones", handlers.NewListStonesHandler(svcs).Execute)
				})
			})
			r.Delete("/stones/{id}", handlers.NewDeleteStoneHandler(svcs).Execute)
		})
	})
}
