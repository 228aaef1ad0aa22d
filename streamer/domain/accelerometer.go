package domain

import "context"

// Accelerometer is a data source of 3-axis acceleration samples.
type Accelerometer interface {
	// BringUp prepares the device for measurement.
	// It is called exactly once, before the first Read.
	BringUp(ctx context.Context) error

	// Read returns one acceleration sample.
	Read() (Sample, error)
}
