// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Endpoint is the vault REST base URL without a trailing slash.
	Endpoint string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientLog holds the logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientOutput holds the rendering settings.
type ClientOutput struct {
	Format  string
	NoColor bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Log     ClientLog
	Output  ClientOutput
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			Endpoint:       strings.TrimRight(strings.TrimSpace(cfg.Adapter.Endpoint), "/"),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		Output: ClientOutput{
			Format:  strings.ToLower(cfg.Output.Format),
			NoColor: cfg.Output.NoColor != nil && *cfg.Output.NoColor,
		},
	}

	return clientCfg, clientCfg.validate()
}
