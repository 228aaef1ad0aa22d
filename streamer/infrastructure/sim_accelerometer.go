package infrastructure

import (
	"context"
	"math/rand"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
)

// SimulatedAccelerometer produces a gravity-like vector with a small random jitter.
// It stands in for the I2C device on machines without the hardware.
type SimulatedAccelerometer struct {
}

// BringUp always succeeds; there is no hardware to probe.
func (s SimulatedAccelerometer) BringUp(_ context.Context) error {
	return nil
}

// Read returns a sample close to one g on the Z axis.
func (s SimulatedAccelerometer) Read() (streamerDomain.Sample, error) {
	return streamerDomain.Sample{
		X: jitter(),
		Y: jitter(),
		Z: 1 + jitter(),
	}, nil
}

func jitter() float64 {
	return (rand.Float64() - 0.5) * 0.02
}
