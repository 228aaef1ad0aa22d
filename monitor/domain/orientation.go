package domain

import (
	"errors"
	"math"
)

// Rotation is a display orientation, in the vocabulary kscreen-doctor expects.
type Rotation uint8

const (
	RotationNone Rotation = iota
	RotationRight
	RotationInverted
	RotationLeft
)

// String returns the rotation name kscreen-doctor accepts on the command line.
func (r Rotation) String() string {
	switch r {
	case RotationRight:
		return "right"
	case RotationInverted:
		return "inverted"
	case RotationLeft:
		return "left"
	default:
		return "none"
	}
}

// OrientationVectors maps each display rotation to the acceleration vector measured
// when the device rests in that orientation.
type OrientationVectors map[Rotation]Vec3

// NewOrientationVectors derives the four reference vectors from two calibration
// measurements: down is the acceleration at 0° rotation and left the acceleration at
// 90° clockwise. The left vector is replaced by its component orthogonal to down,
// rescaled to down's length, so an imprecise calibration still yields a symmetric set.
func NewOrientationVectors(down, left Vec3) (OrientationVectors, error) {
	if down.Length() == 0 {
		return nil, errors.New("down calibration vector must be non-zero")
	}

	leftOrthogonal := left.Reject(down)
	if leftOrthogonal.Length() == 0 {
		return nil, errors.New("left calibration vector must not be parallel to down")
	}
	leftFinal := leftOrthogonal.Normalize().Scale(down.Length())

	return OrientationVectors{
		RotationNone:     down,
		RotationInverted: down.Neg(),
		RotationLeft:     leftFinal,
		RotationRight:    leftFinal.Neg(),
	}, nil
}

// Classify returns the rotation whose reference vector is nearest to acc.
// Rotations are evaluated in declaration order so exact-distance ties resolve
// to the same rotation on every call.
func (o OrientationVectors) Classify(acc Vec3) Rotation {
	best := RotationNone
	bestDistance := math.Inf(1)

	for _, rotation := range []Rotation{RotationNone, RotationRight, RotationInverted, RotationLeft} {
		reference, ok := o[rotation]
		if !ok {
			continue
		}
		distance := reference.Sub(acc).Length()
		if distance < bestDistance {
			bestDistance = distance
			best = rotation
		}
	}

	return best
}
