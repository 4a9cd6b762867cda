package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/jobs/{client_id}", h.ClientSchedule)
		})

		r.Route("/internal/schedule", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/resync/{client_id}", h.ResyncClient)
		})
	})

	return mux
}
