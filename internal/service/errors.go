package service

import "errors"

var (
	// ErrUnexpectedStatus is returned when a success body arrives with a
	// status the vault never pairs with it. It points at a client/service
	// version mismatch and is fatal.
	ErrUnexpectedStatus = errors.New("unexpected status for a stored file body")

	// ErrUnexpectedResponse is returned when an endpoint answers with a body
	// variant it never produces, such as a bare boolean from the info endpoint.
	ErrUnexpectedResponse = errors.New("unexpected response variant for endpoint")

	ErrNoFilename    = errors.New("resource url has no file name")
	ErrWriteDownload = errors.New("cannot write downloaded file")
)
