package domain

import "errors"

// BufferSize is a validated buffer size in bytes for log file writes.
type BufferSize uint32

// NewBufferSize validates the given value and returns it as a BufferSize.
func NewBufferSize(size int) (BufferSize, error) {
	if size <= 0 {
		return 0, errors.New("buffer size must be greater than 0")
	}

	return BufferSize(size), nil
}
