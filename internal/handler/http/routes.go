package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/layout", h.getLayout)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", h.getPresets)
			r.Get("/resolution", h.getResolution)
		})

		r.Route("/journal", func(r chi.Router) {
			r.Get("/", h.listDays)

			r.Route("/{date}", func(r chi.Router) {
				r.Get("/", h.getDay)
				r.Delete("/", h.deleteDay)

				r.Route("/{bar}/{kind}", func(r chi.Router) {
					r.Get("/", h.getCell)
					r.Put("/", h.setLabels)
					r.Delete("/", h.clearCell)
					r.Post("/labels", h.addLabel)
					r.Delete("/labels", h.removeLabel)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
