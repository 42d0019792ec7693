// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run performs the configured work and returns when it is done or ctx
	// is cancelled.
	Run(ctx context.Context) error
}
