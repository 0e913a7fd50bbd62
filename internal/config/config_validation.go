// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-client/internal/display"
	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before the client view is
// derived from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: endpoint %q must be an absolute http(s) url", ErrInvalidAdapterConfigs, cfg.Adapter.Endpoint)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if _, err = zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if _, err = display.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	return nil
}
