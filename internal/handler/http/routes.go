package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes assembles the chi router: public auth endpoints and the sync
// endpoints behind bearer-token authentication.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Use(h.authMiddleware)
			r.Get("/status", h.SyncStatus)
			r.Post("/push", h.SyncPush)
			r.Get("/pull", h.SyncPull)
		})
	})

	return r
}
