package errors

import "errors"

// ErrNotFound signals that a lookup matched no stored document.
var ErrNotFound = errors.New("resource not found")
