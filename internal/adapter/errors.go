package adapter

import "errors"

var (
	// ErrTransport wraps every failure below HTTP semantics: dial errors,
	// timeouts, cancelled contexts and malformed responses.
	ErrTransport = errors.New("transport failure")

	ErrEmptyEndpoint = errors.New("vault endpoint is empty")
	ErrEmptyURL      = errors.New("resource url is empty")
	ErrNoUploadFile  = errors.New("upload file is not readable")
)
