package service

import (
	"context"

	"github.com/MKhiriev/go-movie-finder/internal/catalog"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/store"
	"github.com/MKhiriev/go-movie-finder/models"
)

type movieService struct {
	repository store.MovieRepository

	logger *logger.Logger
}

func NewMovieService(repository store.MovieRepository, logger *logger.Logger) (MovieService, error) {
	if repository == nil {
		return nil, ErrNoMovieRepository
	}

	return &movieService{
		repository: repository,
		logger:     logger,
	}, nil
}

func (s *movieService) FindMovies(ctx context.Context, q models.MovieQuery) ([]models.Movie, error) {
	// the client is gone, there is nobody to answer
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if q.Sort != "" && !catalog.IsSortable(q.Sort) {
		s.logger.Debug().Str("sort", q.Sort).Msg("unknown sort field, keeping catalogue order")
	}

	return catalog.Apply(s.repository.All(ctx), q), nil
}
