// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// movie finder server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place keeps the wording that
// clients match on consistent.
package app

const (
	// MsgGreeting is the plain-text body of the root endpoint.
	MsgGreeting = "Hello, movie finder!"

	// MsgUnauthorizedRequest is returned when the Authorization header is
	// missing or carries the wrong token.
	MsgUnauthorizedRequest = "Unauthorized request"

	// MsgServerError is returned in production when a request fails on the
	// server side. Outside production the error text is sent instead.
	MsgServerError = "server error"
)
