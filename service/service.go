package service

import "errors"

// ErrValidation marks a request rejected before any write happened. Wrap it
// with the specific message shown to the caller.
var ErrValidation = errors.New("validation failed")
