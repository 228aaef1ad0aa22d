package domain

import (
	"context"
	"errors"
)

// Calibrator measures calibration vectors from the live reading stream.
// One measurement averages a fixed number of consecutive readings, so sensor noise
// does not end up baked into the reference vectors.
type Calibrator struct {
	sampleCount int
}

// DiscardBuffered drops readings that accumulated in the channel before the device
// reached its measurement position; they describe the previous orientation.
func DiscardBuffered(readings <-chan *Reading) {
	for {
		select {
		case _, ok := <-readings:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Measure averages the next sampleCount readings into one calibration vector.
// It fails when the stream ends or the context is cancelled before enough readings
// arrived.
func (c *Calibrator) Measure(ctx context.Context, readings <-chan *Reading) (Vec3, error) {
	var sum Vec3
	for taken := 0; taken < c.sampleCount; taken++ {
		select {
		case <-ctx.Done():
			return Vec3{}, ctx.Err()
		case reading, ok := <-readings:
			if !ok {
				return Vec3{}, errors.New("reading stream ended during calibration")
			}
			sum = sum.Add(reading.Acc)
		}
	}

	return sum.Scale(1 / float64(c.sampleCount)), nil
}

// NewCalibrator creates a Calibrator averaging sampleCount readings per measurement.
func NewCalibrator(sampleCount int) (*Calibrator, error) {
	if sampleCount <= 0 {
		return nil, errors.New("sample count must be greater than 0")
	}
	return &Calibrator{sampleCount: sampleCount}, nil
}
