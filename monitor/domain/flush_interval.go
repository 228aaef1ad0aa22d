package domain

import (
	"errors"
	"time"
)

// FlushInterval is the time between two forced flushes of the reading log buffer.
type FlushInterval time.Duration

// NewFlushInterval validates the given duration and returns it as a FlushInterval.
func NewFlushInterval(val time.Duration) (FlushInterval, error) {
	if val <= 0 {
		return 0, errors.New("flush interval must be greater than 0")
	}
	return FlushInterval(val), nil
}
