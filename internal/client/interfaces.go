// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
)

// Command is one vault operation bound to its arguments.
type Command func(ctx context.Context, vault service.VaultService) (models.Result, error)

// Client defines the contract the command line layer runs commands through.
type Client interface {
	// Run executes command and renders its result. It returns an error only
	// for failures the process must exit non-zero on.
	Run(ctx context.Context, command Command) error
}
