package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/utils"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/go-resty/resty/v2"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of [VaultAdapter].
// A zero adapterCfg.RequestTimeout keeps the transport default.
//
// Returns an error if adapterCfg.Endpoint is empty.
func NewHTTPVaultAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VaultAdapter, error) {
	if adapterCfg.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	return &httpVaultAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: logger.GetChildLogger("adapter"),
	}, nil
}

// Do implements [VaultAdapter].
func (h *httpVaultAdapter) Do(ctx context.Context, req models.VaultRequest) (models.RawResponse, error) {
	r, err := h.prepare(ctx, req)
	if err != nil {
		return models.RawResponse{}, err
	}

	resp, err := h.execute(ctx, r, req)
	if err != nil {
		return models.RawResponse{}, err
	}

	return models.RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// Fetch implements [VaultAdapter]. The response body is handed to the caller
// unread.
func (h *httpVaultAdapter) Fetch(ctx context.Context, req models.VaultRequest) (models.ContentResponse, error) {
	r, err := h.prepare(ctx, req)
	if err != nil {
		return models.ContentResponse{}, err
	}

	resp, err := h.execute(ctx, r.SetDoNotParseResponse(true), req)
	if err != nil {
		return models.ContentResponse{}, err
	}

	body := resp.RawBody()
	if body == nil {
		body = http.NoBody
	}
	return models.ContentResponse{StatusCode: resp.StatusCode(), Body: body}, nil
}

func (h *httpVaultAdapter) prepare(ctx context.Context, req models.VaultRequest) (*resty.Request, error) {
	r := h.client.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if len(req.Header) > 0 {
		r.SetHeaderMultiValues(req.Header)
	}

	switch req.Body {
	case models.BodyMultipartFile:
		if req.File == nil {
			return nil, ErrNoUploadFile
		}
		info, err := os.Stat(req.File.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoUploadFile, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrNoUploadFile, req.File.Path)
		}
		r.SetFile(req.File.Field, req.File.Path)
	case models.BodyForm:
		r.SetFormDataFromValues(req.Form)
	case models.BodyJSON:
		r.SetHeader("Content-Type", "application/json").SetBody(req.JSON)
	}

	return r, nil
}

func (h *httpVaultAdapter) execute(ctx context.Context, r *resty.Request, req models.VaultRequest) (*resty.Response, error) {
	log := h.logger.With().Str("method", req.Method).Str("url", req.URL)
	if id, ok := utils.GetInvocationIDFromContext(ctx); ok {
		log = log.Str("invocation_id", id)
	}
	l := log.Logger()

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.URL, unwrapURLError(err))
		l.Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, err
	}

	l.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return resp, nil
}

// unwrapURLError drops the *url.Error envelope, whose message repeats the
// full URL including query parameters such as the upload password.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
