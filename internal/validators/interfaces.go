// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for values built outside the
// server, such as searches assembled from command-line flags.
//
// The server itself is lenient: unknown sort fields are ignored and a
// non-numeric rating threshold simply matches nothing. Validators let a
// caller reject such input before a request is sent.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
