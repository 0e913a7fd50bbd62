package client

import "errors"

// ErrRendered marks an error whose outcome was already written to the
// output, so the caller exits non-zero without reporting it again.
var ErrRendered = errors.New("failure already rendered")
