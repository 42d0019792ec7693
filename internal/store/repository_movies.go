package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-movie-finder/models"
)

// movieRepository is an immutable in-memory snapshot of the catalogue.
// It needs no locking because nothing writes to it after construction.
type movieRepository struct {
	movies []models.Movie
}

// NewMovieRepository returns a repository that owns a copy of movies.
func NewMovieRepository(movies []models.Movie) MovieRepository {
	return &movieRepository{
		// clipped so that an append by a caller of All can never write into
		// the shared backing array
		movies: slices.Clip(slices.Clone(movies)),
	}
}

func (r *movieRepository) All(_ context.Context) []models.Movie {
	return r.movies
}

func (r *movieRepository) Len() int {
	return len(r.movies)
}
