// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-vault-client/internal/validators"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://vault.test/rest"

func newTestBuilder(t *testing.T) *RequestBuilder {
	t.Helper()
	b, err := NewRequestBuilder(testEndpoint+"/", validators.NewSpecValidator())
	require.NoError(t, err)
	return b
}

func TestNewRequestBuilder_EmptyEndpoint(t *testing.T) {
	_, err := NewRequestBuilder("  ", validators.NewSpecValidator())
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
}

func TestRequestBuilder_Upload(t *testing.T) {
	tests := []struct {
		name      string
		spec      models.UploadSpec
		wantQuery map[string]string
		absent    []string
		wantBody  models.BodyKind
	}{
		{
			name:      "local file with defaults",
			spec:      models.UploadSpec{FilePath: "/tmp/report.pdf"},
			wantQuery: map[string]string{"hide_filename": "false"},
			absent:    []string{"password", "expires", "one_time_download"},
			wantBody:  models.BodyMultipartFile,
		},
		{
			name: "remote url with every option",
			spec: models.UploadSpec{
				URL:             "https://example.com/cat.png",
				Password:        "secret",
				Expires:         "1d",
				HideFilename:    true,
				OneTimeDownload: true,
			},
			wantQuery: map[string]string{
				"hide_filename":     "true",
				"password":          "secret",
				"expires":           "1d",
				"one_time_download": "true",
			},
			wantBody: models.BodyForm,
		},
		{
			name:      "only expiry",
			spec:      models.UploadSpec{FilePath: "a.txt", Expires: "30m"},
			wantQuery: map[string]string{"hide_filename": "false", "expires": "30m"},
			absent:    []string{"password", "one_time_download"},
			wantBody:  models.BodyMultipartFile,
		},
	}

	b := newTestBuilder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := b.Upload(context.Background(), tt.spec)
			require.NoError(t, err)

			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, testEndpoint, req.URL)
			for k, v := range tt.wantQuery {
				assert.Equal(t, v, req.Query.Get(k), "query %s", k)
			}
			for _, k := range tt.absent {
				assert.False(t, req.Query.Has(k), "query %s must be absent", k)
			}

			assert.Equal(t, tt.wantBody, req.Body)
			switch tt.wantBody {
			case models.BodyMultipartFile:
				require.NotNil(t, req.File)
				assert.Equal(t, "file", req.File.Field)
				assert.Equal(t, tt.spec.FilePath, req.File.Path)
				assert.Nil(t, req.Form)
			case models.BodyForm:
				assert.Nil(t, req.File)
				assert.Equal(t, tt.spec.URL, req.Form.Get("url"))
			}
		})
	}
}

func TestRequestBuilder_Upload_SourcePrecondition(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Upload(context.Background(), models.UploadSpec{})
	assert.ErrorIs(t, err, validators.ErrNoUploadSource)

	_, err = b.Upload(context.Background(), models.UploadSpec{FilePath: "a", URL: "https://b"})
	assert.ErrorIs(t, err, validators.ErrConflictingUploadSource)
}

func TestRequestBuilder_InfoAndMetadata(t *testing.T) {
	b := newTestBuilder(t)

	info, err := b.Info(context.Background(), models.TokenSpec{Token: "abc-123"})
	require.NoError(t, err)
	meta, err := b.Metadata(context.Background(), "abc-123")
	require.NoError(t, err)

	for _, req := range []models.VaultRequest{info, meta} {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, testEndpoint+"/abc-123", req.URL)
		assert.Equal(t, "true", req.Query.Get("formatted"))
		assert.Equal(t, models.BodyNone, req.Body)
	}
}

func TestRequestBuilder_TokenIsEscaped(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.Info(context.Background(), models.TokenSpec{Token: "a/b c"})
	require.NoError(t, err)
	assert.Equal(t, testEndpoint+"/a%2Fb%20c", req.URL)
}

func TestRequestBuilder_Delete(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.Delete(context.Background(), models.TokenSpec{Token: "abc-123"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, testEndpoint+"/abc-123", req.URL)
	assert.Empty(t, req.Query)

	_, err = b.Delete(context.Background(), models.TokenSpec{Token: " "})
	assert.ErrorIs(t, err, validators.ErrEmptyToken)
}

func TestRequestBuilder_Modify(t *testing.T) {
	b := newTestBuilder(t)
	hide := true

	req, err := b.Modify(context.Background(), models.ModifySpec{
		Token:        "abc-123",
		CustomExpiry: "2h",
		HideFilename: &hide,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, testEndpoint+"/abc-123", req.URL)
	assert.Equal(t, models.BodyJSON, req.Body)
	assert.Equal(t, models.ModifyPayload{CustomExpiry: "2h", HideFilename: &hide}, req.JSON)

	_, err = b.Modify(context.Background(), models.ModifySpec{Token: "abc-123"})
	assert.ErrorIs(t, err, validators.ErrNothingToModify)
}

func TestRequestBuilder_Content(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.Content(context.Background(), "https://vault.test/f/report.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://vault.test/f/report.pdf", req.URL)
	assert.Empty(t, req.Header.Get("x-password"))
	assert.Empty(t, req.Query)

	req, err = b.Content(context.Background(), "https://vault.test/f/report.pdf", "secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", req.Header.Get("x-password"))

	_, err = b.Content(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrEmptyURL)
}
