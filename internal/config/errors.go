package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidAdapterConfigs indicates an endpoint that is not an absolute
	// http(s) URL or a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
