package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-movie-finder/internal/catalog"
	"github.com/MKhiriev/go-movie-finder/models"
)

const (
	FieldSort    = "sort"
	FieldAvgVote = "avg_vote"
)

type MovieQueryValidator struct {
}

func NewMovieQueryValidator() Validator {
	return &MovieQueryValidator{}
}

func (v *MovieQueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MovieQuery:
		return v.validateMovieQuery(ctx, value, fields...)
	case *models.MovieQuery:
		return v.validateMovieQuery(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateMovieQuery checks the criteria the server would silently ignore.
// Empty criteria are always valid.
func (v *MovieQueryValidator) validateMovieQuery(_ context.Context, q models.MovieQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSort, FieldAvgVote}
	}

	for _, f := range fields {
		switch f {
		case FieldSort:
			if q.Sort != "" && !catalog.IsSortable(q.Sort) {
				return fmt.Errorf("%w: %q (expected one of %s)",
					ErrUnknownSortField, q.Sort, strings.Join(catalog.SortableFields(), ", "))
			}
		case FieldAvgVote:
			if q.AvgVote != "" && math.IsNaN(models.ParseNumber(q.AvgVote)) {
				return fmt.Errorf("%w: %q", ErrInvalidAvgVote, q.AvgVote)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
