// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"net/url"
)

// BodyKind selects how a [VaultRequest] body is encoded on the wire.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyMultipartFile
	BodyForm
	BodyJSON
)

// MultipartFile is a local file attached to a multipart body.
type MultipartFile struct {
	Field string
	Path  string
}

// VaultRequest is a transport-independent description of one outbound call.
// Only the body field matching Body is meaningful.
type VaultRequest struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header

	Body BodyKind
	File *MultipartFile
	Form url.Values
	JSON any
}

// ModifyPayload is the JSON body of a modification request.
type ModifyPayload struct {
	Password         string `json:"password,omitempty"`
	PreviousPassword string `json:"previousPassword,omitempty"`
	CustomExpiry     string `json:"customExpiry,omitempty"`
	HideFilename     *bool  `json:"hideFilename,omitempty"`
}
