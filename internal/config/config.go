// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultEndpoint is the public vault REST endpoint.
	DefaultEndpoint = "https://waifuvault.moe/rest"
	// DefaultLogLevel keeps stdout-adjacent stderr quiet unless asked.
	DefaultLogLevel = "warn"
	// DefaultFormat renders coloured text.
	DefaultFormat = "text"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a JSON file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the vault endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log controls the diagnostic logger.
	Log Log `envPrefix:"LOG_"`

	// Output controls how results are rendered.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// Endpoint is the vault REST base URL.
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a single request. Zero leaves the transport
	// default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds the logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path the JSON log is appended to. When empty the
	// log goes to stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Output holds the rendering settings.
type Output struct {
	// Format is one of text, json or yaml.
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// NoColor disables styling in text mode. Nil means unset, so an explicit
	// false from a later source still overrides an earlier true.
	// Env: OUTPUT_NO_COLOR
	NoColor *bool `env:"NO_COLOR"`
}

// Defaults returns the values used for fields no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{Endpoint: DefaultEndpoint},
		Log:     Log{Level: DefaultLogLevel},
		Output:  Output{Format: DefaultFormat},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. fs holds the already parsed global flags; only flags the
// user actually set take part in the merge.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
