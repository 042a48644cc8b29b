package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/contract", func(r chi.Router) {
		r.Get("/available", h.isAvailable)
		r.Get("/data/{key}", h.getData)

		// writes need a wallet session
		r.With(h.auth, withWalletReject).Put("/data/{key}", h.setData)
	})

	router.Route("/api/wallet", func(r chi.Router) {
		r.Post("/challenge", h.challenge)
		r.Post("/connect", h.connect)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
