// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the movie finder HTTP API.
//
// [MovieAPI] decouples the command line client from the transport. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is], e.g. [ErrUnauthorized]
// for 401.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/movie_api_mock.go -package=mock

// MovieAPI defines communication with the movie finder server. Every call
// carries the configured bearer token.
type MovieAPI interface {
	// FindMovies sends GET /movie with the non-empty criteria of q as query
	// parameters and returns the decoded records in server order.
	FindMovies(ctx context.Context, q models.MovieQuery) ([]models.Movie, error)

	// GetVersion returns the plain-text server version from GET /version.
	GetVersion(ctx context.Context) (string, error)
}
