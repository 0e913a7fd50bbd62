// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-vault-client/internal/app"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStored = models.Stored{
	Token:           "tok-1",
	URL:             "https://vault.test/f/1700000000/report.pdf",
	Protected:       true,
	RetentionPeriod: "2 days 3 hours",
}

func TestInterpret_StoredByStatus(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		status   int
		wantKind models.OutcomeKind
		heading  string
	}{
		{name: "store existing", endpoint: EndpointStore, status: http.StatusOK, wantKind: models.FileExists, heading: app.MsgFileExists},
		{name: "store created", endpoint: EndpointStore, status: http.StatusCreated, wantKind: models.FileStored, heading: app.MsgFileStored},
		{name: "info", endpoint: EndpointInfo, status: http.StatusOK, wantKind: models.FileExists, heading: app.MsgFileExists},
		{name: "modify", endpoint: EndpointModify, status: http.StatusOK, wantKind: models.FileModified, heading: app.MsgFileModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Interpret(tt.endpoint, tt.status, testStored)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, res.Outcome.Kind)
			require.NotNil(t, res.Outcome.Stored)
			assert.Equal(t, testStored, *res.Outcome.Stored)
			assert.Equal(t, []string{
				tt.heading,
				"It is stored at https://vault.test/f/1700000000/report.pdf",
				"It has the unique token: tok-1",
				"It is a PROTECTED file",
				"It is available for 2 days 3 hours",
			}, res.PlainLines())
		})
	}
}

func TestInterpret_StoredUnprotectedOneTime(t *testing.T) {
	s := models.Stored{
		Token:           "tok-2",
		URL:             "https://vault.test/f/a.txt",
		RetentionPeriod: "1h0m0s",
		Options:         &models.StoredOptions{OneTimeDownload: true},
	}

	res, err := Interpret(EndpointStore, http.StatusCreated, s)
	require.NoError(t, err)

	lines := res.PlainLines()
	require.Len(t, lines, 6)
	assert.Equal(t, "It is an UNPROTECTED file", lines[3])
	assert.Equal(t, "It will be DELETED after download", lines[5])
}

func TestInterpret_StoredWithUnexpectedStatus(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		status   int
	}{
		{name: "store 202", endpoint: EndpointStore, status: http.StatusAccepted},
		{name: "store 400", endpoint: EndpointStore, status: http.StatusBadRequest},
		{name: "info 500", endpoint: EndpointInfo, status: http.StatusInternalServerError},
		{name: "modify 201", endpoint: EndpointModify, status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Interpret(tt.endpoint, tt.status, testStored)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
		})
	}
}

func TestInterpret_Failure(t *testing.T) {
	f := models.Failure{
		Name:    "VALIDATION",
		Message: "bad input",
		Status:  422,
		Errors: []models.FailureDetail{
			{Name: "expires", Message: "too long"},
			{Name: "password", Message: "too short"},
		},
	}

	for _, ep := range []Endpoint{EndpointStore, EndpointInfo, EndpointModify, EndpointDelete, EndpointContent} {
		for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError} {
			res, err := Interpret(ep, status, f)
			require.NoError(t, err, "%s %d", ep, status)

			assert.Equal(t, models.Outcome{
				Kind:    models.ServiceError,
				Name:    "VALIDATION",
				Message: "bad input",
				Details: f.Errors,
			}, res.Outcome)
			assert.Equal(t, []string{
				"Received a bad response from API: VALIDATION (422)",
				"This is probably due to: bad input",
				"  - expires: too long",
				"  - password: too short",
			}, res.PlainLines())
		}
	}
}

func TestInterpret_FailureWithoutStatusOrDetails(t *testing.T) {
	res, err := Interpret(EndpointInfo, http.StatusNotFound, models.Failure{Name: "NOT_FOUND", Message: "gone"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Received a bad response from API: NOT_FOUND",
		"This is probably due to: gone",
	}, res.PlainLines())
}

func TestInterpret_Delete(t *testing.T) {
	res, err := Interpret(EndpointDelete, http.StatusOK, models.DeleteResult(true))
	require.NoError(t, err)
	assert.Equal(t, models.FileDeleted, res.Outcome.Kind)
	assert.Equal(t, []string{app.MsgFileDeleted}, res.PlainLines())

	res, err = Interpret(EndpointDelete, http.StatusOK, models.DeleteResult(false))
	require.NoError(t, err)
	assert.Equal(t, models.FileNotDeleted, res.Outcome.Kind)
	assert.Equal(t, []string{app.MsgFileNotDeleted}, res.PlainLines())

	_, err = Interpret(EndpointDelete, http.StatusOK, testStored)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestInterpret_BooleanOutsideDelete(t *testing.T) {
	for _, ep := range []Endpoint{EndpointStore, EndpointInfo, EndpointModify, EndpointContent} {
		_, err := Interpret(ep, http.StatusOK, models.DeleteResult(true))
		assert.ErrorIs(t, err, ErrUnexpectedResponse, ep.String())
	}
}

func TestInterpret_NilResponse(t *testing.T) {
	_, err := Interpret(EndpointInfo, http.StatusOK, nil)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestForbiddenContent(t *testing.T) {
	res := ForbiddenContent(true)
	assert.Equal(t, models.ServiceError, res.Outcome.Kind)
	assert.Equal(t, app.NameIncorrectPassword, res.Outcome.Name)
	assert.Equal(t, []string{app.MsgIncorrectPassword}, res.PlainLines())

	res = ForbiddenContent(false)
	assert.Equal(t, PasswordRequired(), res)
	assert.Equal(t, app.NamePasswordRequired, res.Outcome.Name)
	assert.Equal(t, []string{app.MsgPasswordRequired}, res.PlainLines())
}

func TestDownloadedAndTransportFailure(t *testing.T) {
	res := Downloaded("/tmp/report.pdf")
	assert.Equal(t, models.Outcome{Kind: models.FileDownloaded, Path: "/tmp/report.pdf"}, res.Outcome)
	assert.Equal(t, []string{"File downloaded successfully and stored at /tmp/report.pdf"}, res.PlainLines())

	res = TransportFailure(errors.New("dial tcp: connection refused"))
	assert.Equal(t, models.TransportError, res.Outcome.Kind)
	assert.Equal(t, []string{"Could not reach the vault: dial tcp: connection refused"}, res.PlainLines())
}

func TestEndpoint_String(t *testing.T) {
	assert.Equal(t, "store", EndpointStore.String())
	assert.Equal(t, "content", EndpointContent.String())
	assert.Equal(t, "endpoint(42)", Endpoint(42).String())
}
