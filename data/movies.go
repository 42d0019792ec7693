// Package data embeds the sample movie catalogue served when no other
// dataset source is configured.
package data

import _ "embed"

// MoviesSmall is a JSON array of movie objects.
//
//go:embed movies-data-small.json
var MoviesSmall []byte
