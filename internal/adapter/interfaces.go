// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the request construction and transport layers for
// communicating with the vault REST service.
//
// [RequestBuilder] turns validated command specs into transport-independent
// [models.VaultRequest] values. [VaultAdapter] performs those requests; the
// package ships an HTTP implementation ([NewHTTPVaultAdapter]) built on resty.
//
// Interpreting the returned status and body is left to package service. The
// adapter only reports failures that happen below HTTP semantics, wrapped in
// [ErrTransport], so callers can use [errors.Is] to tell them apart.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic communication with the vault.
type VaultAdapter interface {
	// Do sends req and reads the whole response body. Any HTTP status is a
	// successful call; only connection, timeout or protocol failures return
	// an error.
	Do(ctx context.Context, req models.VaultRequest) (models.RawResponse, error)

	// Fetch sends req and returns the response with its body unread, so file
	// content can be streamed to disk. The caller must close the body.
	Fetch(ctx context.Context, req models.VaultRequest) (models.ContentResponse, error)
}
