package infrastructure

import (
	"context"
	"math"
	"testing"
)

func TestSimulatedAccelerometer(t *testing.T) {
	accel := SimulatedAccelerometer{}

	if err := accel.BringUp(context.Background()); err != nil {
		t.Fatalf("BringUp failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		sample, err := accel.Read()
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if math.Abs(sample.Z-1) > 0.01+1e-9 {
			t.Errorf("expected Z close to one g, got %v", sample.Z)
		}
		if math.Abs(sample.X) > 0.01+1e-9 || math.Abs(sample.Y) > 0.01+1e-9 {
			t.Errorf("expected X and Y close to zero, got %v, %v", sample.X, sample.Y)
		}
	}
}
