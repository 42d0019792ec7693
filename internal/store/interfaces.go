package store

import (
	"context"

	"github.com/MKhiriev/go-movie-finder/models"
)

// MovieRepository gives read-only access to the movie catalogue loaded at
// startup.
type MovieRepository interface {
	// All returns every record in catalogue order. The slice is shared by
	// all callers and must not be modified.
	All(ctx context.Context) []models.Movie

	// Len returns the number of records.
	Len() int
}

// ErrorClassificator inspects driver-specific errors.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// Translate maps err to one of the package sentinel errors, or returns
	// nil when err has no dedicated sentinel.
	Translate(err error) error
}
