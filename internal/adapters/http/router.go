// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/brandgate/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	gatewayHandler *handlers.GatewayHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Generic forwarding to the analysis backend.
		r.Post("/operations/{operation}", gatewayHandler.Invoke)

		r.Post("/diagnostics", gatewayHandler.Diagnostics)
		r.Post("/diagnostics/batch", gatewayHandler.DiagnosticsBatch)

		// Offline rewriting of caller-supplied diagnostics.
		r.Post("/rewrite", gatewayHandler.Rewrite)
		r.Post("/rewrite/explain", gatewayHandler.Explain)
		r.Get("/rules", gatewayHandler.Rules)
	})

	return r
}
