package models

import (
	"bytes"
	"encoding/json"
)

// Movie is a single entry of the movie catalogue.
//
// Records are read-only: they are decoded once when the catalogue is loaded
// and never modified afterwards. When a record was decoded from JSON, every
// key of the source object (including keys that have no typed field here) is
// kept and written back unchanged by [Movie.MarshalJSON].
type Movie struct {
	// FilmTitle is the display title of the film.
	FilmTitle string `json:"film_title"`

	// Year is the release year.
	Year Number `json:"year"`

	// Genre holds one or more genres joined with commas, e.g. "Animation, Comedy".
	Genre string `json:"genre"`

	// Duration is the running time in minutes.
	Duration Number `json:"duration"`

	// Country holds one or more production countries joined with commas.
	Country string `json:"country"`

	// Director holds one or more directors joined with commas.
	Director string `json:"director"`

	// Actors holds the main cast joined with commas.
	Actors string `json:"actors"`

	// AvgVote is the average user rating.
	AvgVote Number `json:"avg_vote"`

	// Votes is the number of ratings AvgVote was computed from.
	Votes Number `json:"votes"`

	// raw is the source JSON object, nil for records built in code or
	// scanned from a database.
	raw map[string]json.RawMessage

	// src is the compacted source text of a decoded record. It keeps the key
	// order of the source and is dropped once the record is rebuilt.
	src json.RawMessage
}

// movieFields has the same layout as Movie but none of its methods, so it can
// be passed to encoding/json without recursing into Movie's own methods.
type movieFields Movie

// UnmarshalJSON decodes the typed fields and keeps the whole source object.
func (m *Movie) UnmarshalJSON(b []byte) error {
	var fields movieFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var src bytes.Buffer
	if err := json.Compact(&src, b); err != nil {
		return err
	}

	*m = Movie(fields)
	m.raw = raw
	m.src = src.Bytes()
	return nil
}

// MarshalJSON writes the source object, keys in source order, when the
// record was decoded from JSON, or the typed fields otherwise.
func (m Movie) MarshalJSON() ([]byte, error) {
	if m.src != nil {
		return m.src, nil
	}
	if m.raw != nil {
		return json.Marshal(m.raw)
	}
	fields := movieFields(m)
	return json.Marshal(fields)
}

// Extra returns the raw values of keys that have no typed field on Movie.
// The returned map is a copy.
func (m Movie) Extra() map[string]json.RawMessage {
	extra := make(map[string]json.RawMessage)
	for key, value := range m.raw {
		if _, known := movieJSONKeys[key]; known {
			continue
		}
		extra[key] = value
	}
	return extra
}

// WithExtra returns a copy of m whose JSON form carries the given additional
// keys. Keys that collide with typed fields are ignored. It is used by
// sources that store descriptive attributes outside the typed columns.
func (m Movie) WithExtra(extra map[string]json.RawMessage) (Movie, error) {
	fields := movieFields(m)
	fields.raw = nil
	fields.src = nil

	encoded, err := json.Marshal(fields)
	if err != nil {
		return Movie{}, err
	}

	raw := make(map[string]json.RawMessage, len(movieJSONKeys)+len(extra))
	if err = json.Unmarshal(encoded, &raw); err != nil {
		return Movie{}, err
	}
	for key, value := range extra {
		if _, known := movieJSONKeys[key]; known {
			continue
		}
		raw[key] = value
	}

	out := m
	out.raw = raw
	out.src = nil
	return out, nil
}

var movieJSONKeys = map[string]struct{}{
	"film_title": {},
	"year":       {},
	"genre":      {},
	"duration":   {},
	"country":    {},
	"director":   {},
	"actors":     {},
	"avg_vote":   {},
	"votes":      {},
}
