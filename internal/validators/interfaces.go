// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks command specs before any request is built.
//
// A [Validator] enforces the preconditions the CLI layer is expected to
// guarantee already (exactly one upload source, a non-empty token, ...), so
// that a misuse of the lower layers fails fast instead of reaching the vault.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
