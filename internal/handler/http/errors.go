// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization middleware when checking the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains a
	// scheme prefix followed by an empty token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenMismatch is returned when the presented token differs from the
	// configured API token.
	ErrTokenMismatch = errors.New("token does not match")
)

// ErrPanicRecovered wraps the value of a recovered panic that was not an
// error itself.
var ErrPanicRecovered = errors.New("panic recovered")
