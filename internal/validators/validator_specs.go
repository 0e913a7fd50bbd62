// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vault-client/models"
)

const (
	FieldSource  = "source"
	FieldToken   = "token"
	FieldChanges = "changes"
)

// SpecValidator validates the command specs from package models.
type SpecValidator struct {
}

func NewSpecValidator() Validator {
	return &SpecValidator{}
}

func (v *SpecValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadSpec:
		return v.validateUploadSpec(ctx, value, fields...)
	case *models.UploadSpec:
		return v.validateUploadSpec(ctx, *value, fields...)

	case models.DownloadSpec:
		return v.validateDownloadSpec(ctx, value, fields...)
	case *models.DownloadSpec:
		return v.validateDownloadSpec(ctx, *value, fields...)

	case models.TokenSpec:
		return v.validateTokenSpec(ctx, value, fields...)
	case *models.TokenSpec:
		return v.validateTokenSpec(ctx, *value, fields...)

	case models.ModifySpec:
		return v.validateModifySpec(ctx, value, fields...)
	case *models.ModifySpec:
		return v.validateModifySpec(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SpecValidator) validateUploadSpec(_ context.Context, spec models.UploadSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSource}
	}

	for _, f := range fields {
		switch f {
		case FieldSource:
			if err := exactlyOne(spec.FilePath, spec.URL, ErrNoUploadSource, ErrConflictingUploadSource); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SpecValidator) validateDownloadSpec(_ context.Context, spec models.DownloadSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSource}
	}

	for _, f := range fields {
		switch f {
		case FieldSource:
			if err := exactlyOne(spec.Token, spec.URL, ErrNoDownloadSource, ErrConflictingDownloadSource); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SpecValidator) validateTokenSpec(_ context.Context, spec models.TokenSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if isBlank(spec.Token) {
				return ErrEmptyToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SpecValidator) validateModifySpec(_ context.Context, spec models.ModifySpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if isBlank(spec.Token) {
				return ErrEmptyToken
			}
		case FieldChanges:
			if spec.Empty() {
				return ErrNothingToModify
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func exactlyOne(a, b string, errNeither, errBoth error) error {
	switch {
	case isBlank(a) && isBlank(b):
		return errNeither
	case !isBlank(a) && !isBlank(b):
		return errBoth
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
