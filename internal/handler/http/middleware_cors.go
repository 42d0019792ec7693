package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows cross-origin GET requests from the configured origins.
// Preflight requests are answered here and never reach the auth check.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
