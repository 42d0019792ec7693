package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-movie-finder/models"
)

// MovieService answers catalogue queries.
type MovieService interface {
	// FindMovies returns the records matching q, sorted when q.Sort names a
	// sortable field. The result is a fresh slice and may be empty but is
	// never nil on success.
	FindMovies(ctx context.Context, q models.MovieQuery) ([]models.Movie, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MovieServiceWrapper defines middleware composition for MovieService.
// Implementations wrap an existing MovieService to add behavior such as
// logging.
type MovieServiceWrapper interface {
	Wrap(MovieService) MovieService // returns a decorated MovieService applying additional behavior
}
