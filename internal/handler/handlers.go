package handler

import (
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/handler/http"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}
	if cfg.App.APIToken == "" {
		return nil, errNoAPITokenProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
