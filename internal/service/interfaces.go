// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

// VaultService runs one vault command per call. Every method returns the
// outcome together with the lines describing it.
//
// A nil error means the command completed, even when the vault reported a
// failure: that failure is carried as a [models.ServiceError] outcome. A
// non-nil error is fatal (transport failure, unknown body shape, invariant
// violation, local I/O failure) and no usable result is returned.
type VaultService interface {
	// Upload stores a local file or a remote URL in the vault.
	Upload(ctx context.Context, spec models.UploadSpec) (models.Result, error)

	// Download fetches file content, either directly by resource URL or by
	// token (metadata first, then content), and writes it to the resolved
	// output path.
	Download(ctx context.Context, spec models.DownloadSpec) (models.Result, error)

	// Info fetches the metadata of a stored file.
	Info(ctx context.Context, spec models.TokenSpec) (models.Result, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, spec models.TokenSpec) (models.Result, error)

	// Modify changes the options of a stored file.
	Modify(ctx context.Context, spec models.ModifySpec) (models.Result, error)
}
