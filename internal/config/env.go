// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a T from environment variables through its `env` and
// `envPrefix` tags. It is shared by [StructuredConfig] and [ClientConfig].
//
// When several variables are malformed every one of them is reported, not
// only the first.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err == nil {
		return &cfg, nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		return nil, fmt.Errorf("error getting env configs: %w", errors.Join(aggregate.Errors...))
	}
	return nil, fmt.Errorf("error getting env configs: %w", err)
}
