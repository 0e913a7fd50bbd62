package display

import "errors"

var ErrUnknownFormat = errors.New("unknown output format")
