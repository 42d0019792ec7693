package catalog

import (
	"strings"

	"github.com/MKhiriev/go-movie-finder/models"
)

// Predicate reports whether a record passes a single filter.
type Predicate func(models.Movie) bool

// GenreContains matches records whose genre contains substr, ignoring case.
func GenreContains(substr string) Predicate {
	needle := strings.ToLower(substr)
	return func(m models.Movie) bool {
		return strings.Contains(strings.ToLower(m.Genre), needle)
	}
}

// CountryContains matches records whose country contains substr, ignoring case.
func CountryContains(substr string) Predicate {
	needle := strings.ToLower(substr)
	return func(m models.Movie) bool {
		return strings.Contains(strings.ToLower(m.Country), needle)
	}
}

// MinAvgVote matches records whose average rating is greater than or equal
// to threshold. Both sides are coerced with [models.ParseNumber]; a NaN on
// either side never matches.
func MinAvgVote(threshold string) Predicate {
	limit := models.ParseNumber(threshold)
	return func(m models.Movie) bool {
		return m.AvgVote.Float64() >= limit
	}
}

// Predicates returns the filters selected by q, in application order.
// Empty criteria produce no predicate.
func Predicates(q models.MovieQuery) []Predicate {
	predicates := make([]Predicate, 0, 3)
	if q.Genre != "" {
		predicates = append(predicates, GenreContains(q.Genre))
	}
	if q.Country != "" {
		predicates = append(predicates, CountryContains(q.Country))
	}
	if q.AvgVote != "" {
		predicates = append(predicates, MinAvgVote(q.AvgVote))
	}
	return predicates
}

// Filter returns the records that satisfy every predicate, in their original
// order. The result never aliases records.
func Filter(records []models.Movie, predicates ...Predicate) []models.Movie {
	result := make([]models.Movie, 0, len(records))

next:
	for _, m := range records {
		for _, match := range predicates {
			if !match(m) {
				continue next
			}
		}
		result = append(result, m)
	}

	return result
}

// Apply runs the full search: filters from q, then the sort named by q.Sort
// when it is a sortable field. Unknown sort names leave the filtered order
// unchanged.
func Apply(records []models.Movie, q models.MovieQuery) []models.Movie {
	result := Filter(records, Predicates(q)...)
	if q.Sort != "" {
		SortInPlace(result, q.Sort)
	}
	return result
}
