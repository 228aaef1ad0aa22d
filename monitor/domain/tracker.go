package domain

import "context"

// Rotator applies a display rotation.
type Rotator interface {
	Rotate(ctx context.Context, rotation Rotation) error
}

// RotationTracker watches the reading stream and rotates the display whenever the
// classified orientation changes.
type RotationTracker struct {
	orientations OrientationVectors
	rotator      Rotator
	logger       Logger
	current      Rotation
}

// Track consumes readings until the channel is closed. The rotator is invoked only on
// a transition. A rotator failure is logged and the tracked state is left unchanged,
// so the rotation is attempted again on the next reading.
func (t *RotationTracker) Track(ctx context.Context, readings <-chan *Reading) {
	for reading := range readings {
		rotation := t.orientations.Classify(reading.Acc)
		if rotation == t.current {
			continue
		}

		t.logger.Info("orientation changed to %s", rotation)
		if err := t.rotator.Rotate(ctx, rotation); err != nil {
			t.logger.Error("error rotating display: %s", err.Error())
			continue
		}
		t.current = rotation
	}
}

// NewRotationTracker creates a tracker starting from the unrotated state.
func NewRotationTracker(orientations OrientationVectors, rotator Rotator, logger Logger) *RotationTracker {
	return &RotationTracker{
		orientations: orientations,
		rotator:      rotator,
		logger:       logger,
		current:      RotationNone,
	}
}
