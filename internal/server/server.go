package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/handler"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.Listen()
	if err != nil {
		s.logger.Err(err).Msg("error starting HTTP server")
		return err
	}

	return s.serve(ctx, ln)
}

func (s *server) serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		// the listener died before anyone asked us to stop
		s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("HTTP server did not shut down cleanly")
		return err
	}

	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
