package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	rootPath    = "/"
	moviePath   = "/movie"
	versionPath = "/version"
)

// Init builds the router. Every route, including the greeting and paths
// that do not exist, sits behind the bearer token check; only CORS
// preflight requests are answered before it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(securityHeaders()...)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(h.auth)
	router.Use(middleware.GetHead)

	router.Get(rootPath, h.greet)
	router.Get(moviePath, h.findMovies)
	router.Get(versionPath, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
