// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vault-client/internal/validators"
	"github.com/MKhiriev/go-vault-client/models"
)

const (
	queryHideFilename    = "hide_filename"
	queryPassword        = "password"
	queryExpires         = "expires"
	queryOneTimeDownload = "one_time_download"
	queryFormatted       = "formatted"

	headerPassword = "x-password"

	fieldFile = "file"
	fieldURL  = "url"
)

// RequestBuilder assembles outbound vault requests from command specs.
// It performs no I/O.
type RequestBuilder struct {
	endpoint  string
	validator validators.Validator
}

// NewRequestBuilder returns a builder addressing the vault REST root endpoint.
// A trailing slash on endpoint is ignored.
func NewRequestBuilder(endpoint string, validator validators.Validator) (*RequestBuilder, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	return &RequestBuilder{endpoint: endpoint, validator: validator}, nil
}

// Upload builds the store request: PUT {endpoint} with the hide-filename flag
// always present and the other options only when set. The body is a multipart
// file for a local path, or a url-encoded form for a remote URL.
func (b *RequestBuilder) Upload(ctx context.Context, spec models.UploadSpec) (models.VaultRequest, error) {
	if err := b.validator.Validate(ctx, spec, validators.FieldSource); err != nil {
		return models.VaultRequest{}, fmt.Errorf("invalid upload: %w", err)
	}

	query := url.Values{}
	query.Set(queryHideFilename, strconv.FormatBool(spec.HideFilename))
	if spec.Password != "" {
		query.Set(queryPassword, spec.Password)
	}
	if spec.Expires != "" {
		query.Set(queryExpires, spec.Expires)
	}
	if spec.OneTimeDownload {
		query.Set(queryOneTimeDownload, "true")
	}

	req := models.VaultRequest{
		Method: http.MethodPut,
		URL:    b.endpoint,
		Query:  query,
	}

	if spec.FilePath != "" {
		req.Body = models.BodyMultipartFile
		req.File = &models.MultipartFile{Field: fieldFile, Path: spec.FilePath}
	} else {
		req.Body = models.BodyForm
		req.Form = url.Values{fieldURL: {spec.URL}}
	}

	return req, nil
}

// Metadata builds the metadata lookup used by token downloads.
func (b *RequestBuilder) Metadata(ctx context.Context, token string) (models.VaultRequest, error) {
	return b.Info(ctx, models.TokenSpec{Token: token})
}

// Info builds GET {endpoint}/{token}?formatted=true.
func (b *RequestBuilder) Info(ctx context.Context, spec models.TokenSpec) (models.VaultRequest, error) {
	if err := b.validator.Validate(ctx, spec, validators.FieldToken); err != nil {
		return models.VaultRequest{}, fmt.Errorf("invalid info: %w", err)
	}

	return models.VaultRequest{
		Method: http.MethodGet,
		URL:    b.tokenURL(spec.Token),
		Query:  url.Values{queryFormatted: {"true"}},
	}, nil
}

// Delete builds DELETE {endpoint}/{token}.
func (b *RequestBuilder) Delete(ctx context.Context, spec models.TokenSpec) (models.VaultRequest, error) {
	if err := b.validator.Validate(ctx, spec, validators.FieldToken); err != nil {
		return models.VaultRequest{}, fmt.Errorf("invalid delete: %w", err)
	}

	return models.VaultRequest{
		Method: http.MethodDelete,
		URL:    b.tokenURL(spec.Token),
	}, nil
}

// Modify builds PATCH {endpoint}/{token} with a JSON body holding only the
// changed options.
func (b *RequestBuilder) Modify(ctx context.Context, spec models.ModifySpec) (models.VaultRequest, error) {
	if err := b.validator.Validate(ctx, spec); err != nil {
		return models.VaultRequest{}, fmt.Errorf("invalid modify: %w", err)
	}

	return models.VaultRequest{
		Method: http.MethodPatch,
		URL:    b.tokenURL(spec.Token),
		Body:   models.BodyJSON,
		JSON: models.ModifyPayload{
			Password:         spec.Password,
			PreviousPassword: spec.PreviousPassword,
			CustomExpiry:     spec.CustomExpiry,
			HideFilename:     spec.HideFilename,
		},
	}, nil
}

// Content builds a plain GET for a direct resource URL. The x-password header
// is attached only when password is non-empty.
func (b *RequestBuilder) Content(_ context.Context, resource, password string) (models.VaultRequest, error) {
	if strings.TrimSpace(resource) == "" {
		return models.VaultRequest{}, ErrEmptyURL
	}

	req := models.VaultRequest{
		Method: http.MethodGet,
		URL:    resource,
	}
	if password != "" {
		req.Header = http.Header{}
		req.Header.Set(headerPassword, password)
	}

	return req, nil
}

func (b *RequestBuilder) tokenURL(token string) string {
	return b.endpoint + "/" + url.PathEscape(strings.TrimSpace(token))
}
