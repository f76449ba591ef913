package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured. The paths
// match the deployed backend exactly; the client's base URL is the only
// thing that changes between environments.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.Get("/health", h.Health)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/onboarding", h.UpdateOnboarding)
	r.Post("/performance-trends", h.AddPerformanceTrend)
	r.Get("/performance-averages/{email}", h.PerformanceAverages)
	r.Post("/generate", h.Generate)

	return r
}
