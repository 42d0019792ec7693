// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// setDefaults fills the fields no source provided.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the package sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.APIToken == "" {
		return fmt.Errorf("%w: API_TOKEN is required", ErrInvalidAppConfigs)
	}

	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.APIToken == "" {
		return fmt.Errorf("%w: API_TOKEN is required", ErrInvalidAppConfigs)
	}

	return nil
}
