package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/today
//	GET /api/v1/solar/{date}                  YYYY-MM-DD
//	GET /api/v1/lunar/{year}/{month}/{day}    ?leap=true
//	GET /api/v1/years/{year}
//	GET /api/v1/terms                         ?month=&day=
//	GET /api/v1/festivals                     ?calendar=solar|lunar
//	GET /api/v1/range                         ?start=&end=
func NewRouter(h *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
		middleware.StripSlashes,
	)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", h.GetToday)
		r.Get("/solar/{date}", h.GetSolarDay)
		r.Get("/lunar/{year}/{month}/{day}", h.GetLunarDay)
		r.Get("/years/{year}", h.GetYear)
		r.Get("/terms", h.GetSolarTerms)
		r.Get("/festivals", h.GetFestivals)
		r.Get("/range", h.GetRange)
	})

	return r
}
