package domain

import (
	"context"
	"fmt"
)

// BringupDiagnostic is the single line written to the transport when accelerometer
// bring-up fails. Consumers watching the serial stream see it instead of sample lines.
const BringupDiagnostic = "no accelerometer detected, check wiring"

// Initializer performs the one-time accelerometer bring-up.
type Initializer struct {
	logger Logger
}

// BringUp attempts accelerometer bring-up exactly once. On failure it writes the fixed
// diagnostic line to the transport and returns an error wrapping ErrSensorUnavailable.
// No sample may be emitted after the diagnostic; the caller owns the halt decision.
func (i *Initializer) BringUp(ctx context.Context, accel Accelerometer, transport Transport) error {
	err := accel.BringUp(ctx)
	if err == nil {
		return nil
	}

	if sendErr := transport.Send(ctx, []byte(BringupDiagnostic)); sendErr != nil {
		i.logger.Error("error writing bring-up diagnostic: %s", sendErr.Error())
	}

	return fmt.Errorf("%w: %s", ErrSensorUnavailable, err.Error())
}

// NewInitializer creates an Initializer with the given logger.
func NewInitializer(logger Logger) *Initializer {
	return &Initializer{logger: logger}
}
