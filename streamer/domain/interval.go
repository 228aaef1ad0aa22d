package domain

import (
	"errors"
	"time"
)

// SampleInterval is the fixed pause between two sample acquisitions.
type SampleInterval time.Duration

// NewSampleInterval validates the given duration and returns it as a SampleInterval.
// It returns an error if the duration is not positive.
func NewSampleInterval(interval time.Duration) (SampleInterval, error) {
	if interval <= 0 {
		return 0, errors.New("sample interval must be greater than 0")
	}
	return SampleInterval(interval), nil
}
