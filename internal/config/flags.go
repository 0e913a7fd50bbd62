package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Global flag names shared by every subcommand.
const (
	FlagEndpoint = "endpoint"
	FlagTimeout  = "timeout"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
	FlagConfig   = "config"
	FlagFormat   = "format"
	FlagNoColor  = "no-color"
)

// RegisterFlags defines the configuration flags on fs.
//
// Flags:
//
//	--endpoint      vault REST endpoint
//	--timeout       request timeout (e.g., "30s", "1m")
//	--log-level     log level (debug, info, warn, error)
//	--log-file      append JSON logs to this file instead of stderr
//	-c/--config     json file path with configs
//	--format        output format (text, json, yaml)
//	--no-color      disable coloured text output
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagEndpoint, "", "Vault REST endpoint (default "+DefaultEndpoint+")")
	fs.Duration(FlagTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagLogLevel, "", "Log level (default "+DefaultLogLevel+")")
	fs.String(FlagLogFile, "", "Append logs to this file instead of stderr")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagFormat, "", "Output format: text, json or yaml (default "+DefaultFormat+")")
	fs.Bool(FlagNoColor, false, "Disable coloured output")
}

// ParseFlags reads the flags the user set on an already parsed fs.
// Unset flags stay zero so they never override other sources.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	if fs.Changed(FlagEndpoint) {
		if cfg.Adapter.Endpoint, err = fs.GetString(FlagEndpoint); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagEndpoint, err)
		}
	}
	if fs.Changed(FlagTimeout) {
		if cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagTimeout, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagLogLevel, err)
		}
	}
	if fs.Changed(FlagLogFile) {
		if cfg.Log.File, err = fs.GetString(FlagLogFile); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagLogFile, err)
		}
	}
	if fs.Changed(FlagConfig) {
		if cfg.JSONFilePath, err = fs.GetString(FlagConfig); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagConfig, err)
		}
	}
	if fs.Changed(FlagFormat) {
		if cfg.Output.Format, err = fs.GetString(FlagFormat); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagFormat, err)
		}
	}
	if fs.Changed(FlagNoColor) {
		noColor, err := fs.GetBool(FlagNoColor)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", FlagNoColor, err)
		}
		cfg.Output.NoColor = &noColor
	}

	return cfg, nil
}
