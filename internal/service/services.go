package service

import (
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/store"
	"github.com/MKhiriev/go-movie-finder/models"
)

type Services struct {
	MovieService   MovieService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNoMovieRepository
	}

	movieService, err := NewMovieService(storages.MovieRepository, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		MovieService:   NewMovieLoggingService(logger).Wrap(movieService),
		AppInfoService: appInfoService,
	}, nil
}
