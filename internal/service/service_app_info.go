package service

import (
	"context"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/models"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService resolves the version reported by GET /version. A
// configured version wins over the one linked into the binary.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := cfg.Version, "config"
	if version == "" {
		version, source = buildInfo.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Str("source", source).Msg("app version resolved")

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
