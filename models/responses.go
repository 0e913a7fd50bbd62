// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownResponseShape is returned when a body matches none (or more than
// one) of the [ServiceResponse] variants.
var ErrUnknownResponseShape = errors.New("unknown vault response shape")

// ServiceResponse is the closed set of bodies the vault returns:
// [Stored], [Failure] or [DeleteResult]. The variants carry no discriminant
// field; [DecodeServiceResponse] tells them apart by their required fields.
type ServiceResponse interface {
	serviceResponse()
}

// Stored describes a file kept by the vault. It is returned by store, info,
// metadata and modify requests.
type Stored struct {
	Token           string          `json:"token" yaml:"token"`
	URL             string          `json:"url" yaml:"url"`
	Protected       bool            `json:"protected" yaml:"protected"`
	RetentionPeriod RetentionPeriod `json:"retentionPeriod" yaml:"retention_period"`
	Options         *StoredOptions  `json:"options,omitempty" yaml:"options,omitempty"`
}

// StoredOptions are the per-file flags reported by newer vault versions.
type StoredOptions struct {
	HideFilename    bool `json:"hideFilename" yaml:"hide_filename"`
	OneTimeDownload bool `json:"oneTimeDownload" yaml:"one_time_download"`
	Protected       bool `json:"protected" yaml:"protected"`
}

// OneTimeDownload reports whether the vault deletes the file after first access.
func (s Stored) OneTimeDownload() bool {
	return s.Options != nil && s.Options.OneTimeDownload
}

// Failure is any error condition reported by the vault, regardless of the
// transport status code.
type Failure struct {
	Name    string          `json:"name" yaml:"name"`
	Message string          `json:"message" yaml:"message"`
	Status  int             `json:"status" yaml:"status"`
	Errors  []FailureDetail `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// FailureDetail is one nested error of a [Failure], kept in server order.
type FailureDetail struct {
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

// DeleteResult is the bare boolean returned by the delete endpoint.
type DeleteResult bool

func (Stored) serviceResponse()       {}
func (Failure) serviceResponse()      {}
func (DeleteResult) serviceResponse() {}

// RetentionPeriod is the remaining lifetime of a stored file. The vault sends
// a human readable string when asked for formatted output and a number of
// milliseconds otherwise; numbers are kept as a Go duration string.
type RetentionPeriod string

func (r *RetentionPeriod) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*r = RetentionPeriod(value)
	case float64:
		*r = RetentionPeriod((time.Duration(value) * time.Millisecond).String())
	default:
		return fmt.Errorf("retention period must be a string or a number, got %s", b)
	}
	return nil
}

var (
	storedFields  = []string{"token", "url", "retentionPeriod"}
	failureFields = []string{"name", "message", "status"}
)

type storedWire struct {
	Token           string          `json:"token"`
	URL             string          `json:"url"`
	Protected       *bool           `json:"protected"`
	RetentionPeriod RetentionPeriod `json:"retentionPeriod"`
	Options         *StoredOptions  `json:"options"`
}

// DecodeServiceResponse parses body into exactly one [ServiceResponse]
// variant. Shapes are tried in order: boolean, Stored, Failure. A Stored body
// must carry token, url, retentionPeriod and a protection flag (top-level or
// inside options); a Failure body must carry name, message and status.
func DecodeServiceResponse(body []byte) (ServiceResponse, error) {
	body = bytes.TrimSpace(body)

	switch string(body) {
	case "true":
		return DeleteResult(true), nil
	case "false":
		return DeleteResult(false), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResponseShape, preview(body))
	}

	isStored := hasFields(fields, storedFields...) && (hasFields(fields, "protected") || hasFields(fields, "options"))
	isFailure := hasFields(fields, failureFields...)

	switch {
	case isStored && isFailure:
		return nil, fmt.Errorf("%w: body matches both stored and failure shapes", ErrUnknownResponseShape)
	case isStored:
		s, err := decodeStored(body)
		if err != nil {
			return nil, err
		}
		return s, nil
	case isFailure:
		var f Failure
		if err := json.Unmarshal(body, &f); err != nil {
			return nil, fmt.Errorf("%w: failure: %w", ErrUnknownResponseShape, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownResponseShape, preview(body))
	}
}

func decodeStored(body []byte) (Stored, error) {
	var w storedWire
	if err := json.Unmarshal(body, &w); err != nil {
		return Stored{}, fmt.Errorf("%w: stored: %w", ErrUnknownResponseShape, err)
	}

	s := Stored{
		Token:           w.Token,
		URL:             w.URL,
		RetentionPeriod: w.RetentionPeriod,
		Options:         w.Options,
	}
	switch {
	case w.Protected != nil:
		s.Protected = *w.Protected
	case w.Options != nil:
		s.Protected = w.Options.Protected
	}
	return s, nil
}

func hasFields(m map[string]json.RawMessage, names ...string) bool {
	for _, name := range names {
		v, ok := m[name]
		if !ok || string(v) == "null" {
			return false
		}
	}
	return true
}

func preview(body []byte) string {
	const limit = 128
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
