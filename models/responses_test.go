// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeServiceResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ServiceResponse
	}{
		{
			name: "stored with formatted retention",
			body: `{"token":"abc","url":"https://vault/f/report.pdf","protected":true,"retentionPeriod":"2 days"}`,
			want: Stored{Token: "abc", URL: "https://vault/f/report.pdf", Protected: true, RetentionPeriod: "2 days"},
		},
		{
			name: "stored with numeric retention",
			body: `{"token":"abc","url":"https://vault/f/a.txt","protected":false,"retentionPeriod":90000}`,
			want: Stored{Token: "abc", URL: "https://vault/f/a.txt", RetentionPeriod: "1m30s"},
		},
		{
			name: "stored with protection inside options",
			body: `{"token":"t","url":"https://vault/f/a","retentionPeriod":"1h","options":{"hideFilename":true,"oneTimeDownload":true,"protected":true}}`,
			want: Stored{
				Token: "t", URL: "https://vault/f/a", Protected: true, RetentionPeriod: "1h",
				Options: &StoredOptions{HideFilename: true, OneTimeDownload: true, Protected: true},
			},
		},
		{
			name: "failure without details",
			body: `{"name":"BAD_REQUEST","message":"File is too big","status":400}`,
			want: Failure{Name: "BAD_REQUEST", Message: "File is too big", Status: 400},
		},
		{
			name: "failure with details keeps order",
			body: `{"name":"VALIDATION","message":"bad input","status":422,"errors":[{"name":"b","message":"second"},{"name":"a","message":"first"}]}`,
			want: Failure{
				Name: "VALIDATION", Message: "bad input", Status: 422,
				Errors: []FailureDetail{{Name: "b", Message: "second"}, {Name: "a", Message: "first"}},
			},
		},
		{name: "delete true", body: "true", want: DeleteResult(true)},
		{name: "delete false with whitespace", body: " false\n", want: DeleteResult(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeServiceResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeServiceResponse_UnknownShapes(t *testing.T) {
	bodies := []string{
		"",
		"null",
		"42",
		`"text"`,
		`[]`,
		`{}`,
		`{"token":"abc","url":"u"}`,
		`{"name":"X","message":"no status"}`,
		`{"token":"t","url":"u","protected":true,"retentionPeriod":"1h","name":"X","message":"m","status":500}`,
		`{"token":"t","url":"u","protected":true,"retentionPeriod":{"nested":true}}`,
		`<html>gateway timeout</html>`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			got, err := DecodeServiceResponse([]byte(body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownResponseShape)
			assert.Nil(t, got)
		})
	}
}

func TestStored_OneTimeDownload(t *testing.T) {
	assert.False(t, Stored{}.OneTimeDownload())
	assert.True(t, Stored{Options: &StoredOptions{OneTimeDownload: true}}.OneTimeDownload())
}

func TestModifySpec_Empty(t *testing.T) {
	hide := false
	assert.True(t, ModifySpec{Token: "t"}.Empty())
	assert.False(t, ModifySpec{Token: "t", HideFilename: &hide}.Empty())
	assert.False(t, ModifySpec{Token: "t", CustomExpiry: "1d"}.Empty())
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "")
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "1.2.0 (date: N/A, commit: N/A)", info.String())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildCommit())
}

func TestLine_String(t *testing.T) {
	l := Line{Plain("It is stored at "), Styled("https://vault/x", StyleURL)}
	assert.Equal(t, "It is stored at https://vault/x", l.String())

	r := Result{Lines: []Line{l, {Plain("done")}}}
	assert.Equal(t, []string{"It is stored at https://vault/x", "done"}, r.PlainLines())
}
