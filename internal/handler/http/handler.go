package http

import (
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/service"
	"github.com/MKhiriev/go-movie-finder/internal/utils"
)

// traceIDGenerator produces ids for requests that arrive without one.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	apiToken           []byte
	production         bool
	corsAllowedOrigins []string
	traceIDs           traceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("production", cfg.App.IsProduction()).Msg("http handler created")
	return &Handler{
		services:           services,
		apiToken:           []byte(cfg.App.APIToken),
		production:         cfg.App.IsProduction(),
		corsAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		traceIDs:           utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
