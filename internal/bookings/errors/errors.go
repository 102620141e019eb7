package errors

import "errors"

var ErrInvalidKind = errors.New("invalid kind")
