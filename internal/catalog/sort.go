package catalog

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-movie-finder/models"
)

// Names of the fields a search can be sorted by. They match the JSON keys of
// [models.Movie].
const (
	FieldFilmTitle = "film_title"
	FieldYear      = "year"
	FieldGenre     = "genre"
	FieldDuration  = "duration"
	FieldCountry   = "country"
	FieldDirector  = "director"
	FieldActors    = "actors"
	FieldAvgVote   = "avg_vote"
	FieldVotes     = "votes"
)

type compareFunc func(a, b models.Movie) int

var sortFields = map[string]compareFunc{
	FieldFilmTitle: byText(func(m models.Movie) string { return m.FilmTitle }),
	FieldYear:      byNumber(func(m models.Movie) models.Number { return m.Year }),
	FieldGenre:     byText(func(m models.Movie) string { return m.Genre }),
	FieldDuration:  byNumber(func(m models.Movie) models.Number { return m.Duration }),
	FieldCountry:   byText(func(m models.Movie) string { return m.Country }),
	FieldDirector:  byText(func(m models.Movie) string { return m.Director }),
	FieldActors:    byText(func(m models.Movie) string { return m.Actors }),
	FieldAvgVote:   byNumber(func(m models.Movie) models.Number { return m.AvgVote }),
	FieldVotes:     byNumber(func(m models.Movie) models.Number { return m.Votes }),
}

// SortableFields returns the names accepted by [Sort], alphabetically.
func SortableFields() []string {
	names := make([]string, 0, len(sortFields))
	for name := range sortFields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsSortable reports whether field can be used as a sort key.
func IsSortable(field string) bool {
	_, ok := sortFields[field]
	return ok
}

// Sort returns a copy of records ordered ascending by field. Equal keys keep
// their relative order. ok is false, and the copy is in the original order,
// when field is not sortable.
func Sort(records []models.Movie, field string) (sorted []models.Movie, ok bool) {
	sorted = slices.Clone(records)
	return sorted, SortInPlace(sorted, field)
}

// SortInPlace orders records ascending by field. It reports false and leaves
// records untouched when field is not sortable. Callers must own records.
func SortInPlace(records []models.Movie, field string) bool {
	compare, ok := sortFields[field]
	if !ok {
		return false
	}
	slices.SortStableFunc(records, compare)
	return true
}

func byText(key func(models.Movie) string) compareFunc {
	return func(a, b models.Movie) int {
		return strings.Compare(key(a), key(b))
	}
}

// byNumber compares two string values as text and anything else by the
// coerced value. NaN is neither less nor greater than anything, so records
// with unusable values keep their place relative to their neighbours.
func byNumber(key func(models.Movie) models.Number) compareFunc {
	return func(a, b models.Movie) int {
		ka, kb := key(a), key(b)
		if ka.Quoted() && kb.Quoted() {
			return strings.Compare(ka.String(), kb.String())
		}

		x, y := ka.Float64(), kb.Float64()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
}
