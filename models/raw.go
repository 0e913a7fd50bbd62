// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// RawResponse is a fully read response from a JSON endpoint.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// ContentResponse is a raw content response whose body has not been read.
// The caller owns Body and must close it.
type ContentResponse struct {
	StatusCode int
	Body       io.ReadCloser
}
