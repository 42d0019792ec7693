package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/models"
)

// MovieLoggingService logs every catalogue query together with the number
// of records it produced. The request-scoped logger is preferred so that
// entries carry the trace id.
type MovieLoggingService struct {
	inner  MovieService
	logger *logger.Logger
}

func NewMovieLoggingService(logger *logger.Logger) MovieServiceWrapper {
	return &MovieLoggingService{logger: logger}
}

func (m *MovieLoggingService) FindMovies(ctx context.Context, q models.MovieQuery) ([]models.Movie, error) {
	log := m.loggerFor(ctx)
	start := time.Now()

	movies, err := m.inner.FindMovies(ctx, q)
	if err != nil {
		log.Err(err).Any("query", q).Msg("movie query failed")
		return nil, err
	}

	log.Debug().
		Any("query", q).
		Int("results", len(movies)).
		Dur("took", time.Since(start)).
		Msg("movie query served")

	return movies, nil
}

func (m *MovieLoggingService) Wrap(inner MovieService) MovieService {
	m.inner = inner
	return m
}

func (m *MovieLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return m.logger
}
