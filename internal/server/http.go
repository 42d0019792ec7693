package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

const idleTimeout = 60 * time.Second

type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			IdleTimeout:       idleTimeout,
			ErrorLog:          stdlog.New(logger.Logger, "", 0),
		},
	}
}

func (h *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errListen, h.server.Addr, err)
	}
	return ln, nil
}

// Serve blocks until the listener fails or Shutdown is called. A shutdown
// is not reported as an error.
func (h *httpServer) Serve(ln net.Listener) error {
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", errServe, err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", errShutdown, err)
	}
	return nil
}
