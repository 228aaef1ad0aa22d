package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrientationVectors(t *testing.T) {
	down := Vec3{Y: -1}
	left := Vec3{X: -1}

	orientations, err := NewOrientationVectors(down, left)
	require.NoError(t, err)
	require.Len(t, orientations, 4)

	require.Equal(t, down, orientations[RotationNone])
	require.Equal(t, down.Neg(), orientations[RotationInverted])
	require.Equal(t, left, orientations[RotationLeft])
	require.Equal(t, left.Neg(), orientations[RotationRight])
}

func TestNewOrientationVectors_OrthogonalizesLeft(t *testing.T) {
	down := Vec3{Y: -2}
	// A sloppy calibration: left has a component along down.
	left := Vec3{X: -1, Y: -1}

	orientations, err := NewOrientationVectors(down, left)
	require.NoError(t, err)

	leftFinal := orientations[RotationLeft]
	require.InDelta(t, 0, leftFinal.Dot(down), 1e-9, "left must be orthogonal to down")
	require.InDelta(t, down.Length(), leftFinal.Length(), 1e-9, "left must match down's length")
}

func TestNewOrientationVectors_InvalidCalibration(t *testing.T) {
	_, err := NewOrientationVectors(Vec3{}, Vec3{X: -1})
	require.Error(t, err)

	_, err = NewOrientationVectors(Vec3{Y: -1}, Vec3{Y: 3})
	require.Error(t, err, "left parallel to down has no orthogonal component")
}

func TestOrientationVectors_Classify(t *testing.T) {
	orientations, err := NewOrientationVectors(Vec3{Y: -1}, Vec3{X: -1})
	require.NoError(t, err)

	cases := []struct {
		name     string
		acc      Vec3
		expected Rotation
	}{
		{"resting upright", Vec3{Y: -0.98, Z: 0.05}, RotationNone},
		{"upside down", Vec3{Y: 0.97, X: 0.1}, RotationInverted},
		{"tilted left", Vec3{X: -0.95, Y: -0.2}, RotationLeft},
		{"tilted right", Vec3{X: 1.02, Y: 0.1}, RotationRight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, orientations.Classify(tc.acc))
		})
	}
}

func TestOrientationVectors_Classify_TieIsDeterministic(t *testing.T) {
	orientations, err := NewOrientationVectors(Vec3{Y: -1}, Vec3{X: -1})
	require.NoError(t, err)

	// The zero vector is equidistant from all four references; the first rotation
	// in declaration order must win, on every call.
	for i := 0; i < 100; i++ {
		require.Equal(t, RotationNone, orientations.Classify(Vec3{}))
	}
}

func TestVec3_Helpers(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	require.Equal(t, 5.0, v.Length())
	require.InDelta(t, 1.0, v.Normalize().Length(), 1e-12)
	require.Equal(t, Vec3{}, Vec3{}.Normalize())

	require.True(t, v.IsFinite())
	require.False(t, Vec3{X: math.NaN()}.IsFinite())
	require.False(t, Vec3{Z: math.Inf(-1)}.IsFinite())
}
