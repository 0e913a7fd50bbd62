// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/validators"
	"github.com/MKhiriev/go-vault-client/models"
)

type vaultService struct {
	builder   *adapter.RequestBuilder
	validator validators.Validator
	adapter   adapter.VaultAdapter

	logger *logger.Logger
}

// NewVaultService constructs the [VaultService] that builds requests with
// builder and sends them through vaultAdapter. Requests are issued one at a
// time and never retried.
func NewVaultService(builder *adapter.RequestBuilder, validator validators.Validator, vaultAdapter adapter.VaultAdapter, logger *logger.Logger) VaultService {
	return &vaultService{
		builder:   builder,
		validator: validator,
		adapter:   vaultAdapter,
		logger:    logger.GetChildLogger("vault_service"),
	}
}

func (s *vaultService) Upload(ctx context.Context, spec models.UploadSpec) (models.Result, error) {
	req, err := s.builder.Upload(ctx, spec)
	if err != nil {
		return models.Result{}, err
	}

	return s.roundTrip(ctx, EndpointStore, req)
}

func (s *vaultService) Info(ctx context.Context, spec models.TokenSpec) (models.Result, error) {
	req, err := s.builder.Info(ctx, spec)
	if err != nil {
		return models.Result{}, err
	}

	return s.roundTrip(ctx, EndpointInfo, req)
}

func (s *vaultService) Delete(ctx context.Context, spec models.TokenSpec) (models.Result, error) {
	req, err := s.builder.Delete(ctx, spec)
	if err != nil {
		return models.Result{}, err
	}

	return s.roundTrip(ctx, EndpointDelete, req)
}

func (s *vaultService) Modify(ctx context.Context, spec models.ModifySpec) (models.Result, error) {
	req, err := s.builder.Modify(ctx, spec)
	if err != nil {
		return models.Result{}, err
	}

	return s.roundTrip(ctx, EndpointModify, req)
}

// Download resolves the content URL (directly, or through the token
// metadata) and then fetches the content. A protected file requested by
// token without a password never reaches the content leg.
func (s *vaultService) Download(ctx context.Context, spec models.DownloadSpec) (models.Result, error) {
	if err := s.validator.Validate(ctx, spec); err != nil {
		return models.Result{}, fmt.Errorf("invalid download: %w", err)
	}

	resource := spec.URL
	if spec.Token != "" {
		req, err := s.builder.Metadata(ctx, spec.Token)
		if err != nil {
			return models.Result{}, err
		}

		status, resp, err := s.call(ctx, EndpointInfo, req)
		if err != nil {
			return models.Result{}, err
		}

		stored, ok := resp.(models.Stored)
		if !ok {
			return Interpret(EndpointInfo, status, resp)
		}
		if status != http.StatusOK {
			return models.Result{}, fmt.Errorf("%w: %d from metadata lookup", ErrUnexpectedStatus, status)
		}

		if stored.Protected && !spec.PasswordSupplied() {
			s.logger.Debug().Msg("protected file requested without a password, content not fetched")
			return PasswordRequired(), nil
		}
		resource = stored.URL
	}

	return s.fetchContent(ctx, resource, spec)
}

func (s *vaultService) fetchContent(ctx context.Context, resource string, spec models.DownloadSpec) (models.Result, error) {
	req, err := s.builder.Content(ctx, resource, spec.Password)
	if err != nil {
		return models.Result{}, err
	}

	resp, err := s.adapter.Fetch(ctx, req)
	if err != nil {
		return models.Result{}, fmt.Errorf("%s request: %w", EndpointContent, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return ForbiddenContent(spec.PasswordSupplied()), nil
	default:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return models.Result{}, fmt.Errorf("%w: reading %s response: %w", adapter.ErrTransport, EndpointContent, err)
		}

		parsed, err := models.DecodeServiceResponse(body)
		if err != nil {
			return models.Result{}, fmt.Errorf("%s response (status %d): %w", EndpointContent, resp.StatusCode, err)
		}
		return Interpret(EndpointContent, resp.StatusCode, parsed)
	}

	path, err := ResolveOutputPath(resource, spec.Output)
	if err != nil {
		return models.Result{}, err
	}
	if err = writeFile(path, resp.Body); err != nil {
		return models.Result{}, err
	}

	s.logger.Debug().Str("path", path).Msg("content written")
	return Downloaded(path), nil
}

func (s *vaultService) roundTrip(ctx context.Context, endpoint Endpoint, req models.VaultRequest) (models.Result, error) {
	status, resp, err := s.call(ctx, endpoint, req)
	if err != nil {
		return models.Result{}, err
	}

	result, err := Interpret(endpoint, status, resp)
	if err != nil {
		s.logger.Error().Err(err).Str("endpoint", endpoint.String()).Int("status", status).Msg("response breaks the vault contract")
		return models.Result{}, err
	}

	s.logger.Debug().Str("endpoint", endpoint.String()).Str("outcome", string(result.Outcome.Kind)).Msg("response interpreted")
	return result, nil
}

func (s *vaultService) call(ctx context.Context, endpoint Endpoint, req models.VaultRequest) (int, models.ServiceResponse, error) {
	raw, err := s.adapter.Do(ctx, req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s request: %w", endpoint, err)
	}

	resp, err := models.DecodeServiceResponse(raw.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s response (status %d): %w", endpoint, raw.StatusCode, err)
	}

	return raw.StatusCode, resp, nil
}

// writeFile copies content into a temporary file next to path and renames it
// onto path once the copy is complete. A failed copy removes only the
// temporary file, so an existing file at path stays untouched.
func writeFile(path string, content io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".vault-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDownload, err)
	}

	_, err = io.Copy(tmp, transportReader{content})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s: %w", ErrWriteDownload, path, err)
	}

	return nil
}

// transportReader marks read failures of a response body as transport errors.
type transportReader struct {
	r io.Reader
}

func (t transportReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: reading response body: %w", adapter.ErrTransport, err)
	}
	return n, err
}
