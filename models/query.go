package models

import "net/url"

// Query parameter names understood by the movie search endpoint.
const (
	QueryParamGenre   = "genre"
	QueryParamCountry = "country"
	QueryParamAvgVote = "avg_vote"
	QueryParamSort    = "sort"
)

// MovieQuery holds the optional search criteria for the movie catalogue.
// An empty field means "no constraint on that dimension".
type MovieQuery struct {
	// Genre is a case-insensitive substring of Movie.Genre.
	Genre string `json:"genre,omitempty"`

	// Country is a case-insensitive substring of Movie.Country.
	Country string `json:"country,omitempty"`

	// AvgVote is the minimum average rating, kept as text and coerced with
	// [ParseNumber] when the filter runs.
	AvgVote string `json:"avg_vote,omitempty"`

	// Sort names the field results are ordered by, ascending.
	Sort string `json:"sort,omitempty"`
}

// MovieQueryFromValues reads the recognised parameters from v. Only the first
// value of a repeated parameter is used; unknown parameters are ignored.
func MovieQueryFromValues(v url.Values) MovieQuery {
	return MovieQuery{
		Genre:   v.Get(QueryParamGenre),
		Country: v.Get(QueryParamCountry),
		AvgVote: v.Get(QueryParamAvgVote),
		Sort:    v.Get(QueryParamSort),
	}
}

// Values encodes the non-empty criteria as URL query parameters.
func (q MovieQuery) Values() url.Values {
	v := url.Values{}
	if q.Genre != "" {
		v.Set(QueryParamGenre, q.Genre)
	}
	if q.Country != "" {
		v.Set(QueryParamCountry, q.Country)
	}
	if q.AvgVote != "" {
		v.Set(QueryParamAvgVote, q.AvgVote)
	}
	if q.Sort != "" {
		v.Set(QueryParamSort, q.Sort)
	}
	return v
}

// IsEmpty reports whether no criteria are set.
func (q MovieQuery) IsEmpty() bool {
	return q == MovieQuery{}
}
