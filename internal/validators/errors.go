// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoUploadSource          = errors.New("either a file or a url must be given")
	ErrConflictingUploadSource = errors.New("a file and a url cannot be given together")

	ErrNoDownloadSource          = errors.New("either a token or a url must be given")
	ErrConflictingDownloadSource = errors.New("a token and a url cannot be given together")

	ErrEmptyToken = errors.New("token is required")

	ErrNothingToModify = errors.New("nothing to modify: set a password, a custom expiry or the hide-filename flag")
)
