package domain

import "errors"

// ErrMalformedLine indicates that a received line is not a bracketed three-value sample.
var ErrMalformedLine = errors.New("malformed sample line")

// ErrValidation is a sentinel error used to indicate that a reading was rejected.
// Wrap it with fmt.Errorf to provide specific details about what was rejected.
var ErrValidation = errors.New("validation failed")
