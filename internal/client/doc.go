// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line movie finder client.
//
// It sends a single search to the server through an [adapter.MovieAPI] and
// prints the result either as an aligned table or as the raw JSON array.
package client
