package rotation

import (
	"errors"
	"fmt"
	"math"
)

// Axis identifies a principal coordinate axis
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ErrInvalidAxis reports a principal-axis selector outside X, Y and Z.
var ErrInvalidAxis = errors.New("rotation: invalid axis")

// About returns the elementary rotation matrix about a principal axis by
// angle radians, in the right-handed frame-rotation convention used in
// astrodynamics: About(Z, θ) applied to a vector expresses it in a frame
// rotated by +θ about Z. For the active rotation of a vector, take the
// transpose, or use AxisAngleMatrix with the axis unit vector.
func About(axis Axis, angle float64) (Mat3, error) {
	sin, cos := math.Sincos(angle)
	switch axis {
	case X:
		return Mat3{
			{1, 0, 0},
			{0, cos, sin},
			{0, -sin, cos},
		}, nil
	case Y:
		return Mat3{
			{cos, 0, -sin},
			{0, 1, 0},
			{sin, 0, cos},
		}, nil
	case Z:
		return Mat3{
			{cos, sin, 0},
			{-sin, cos, 0},
			{0, 0, 1},
		}, nil
	default:
		return Mat3{}, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
}

// AboutOrZero is About with the legacy fallback: an out-of-range axis yields
// the zero matrix instead of an error.
func AboutOrZero(axis Axis, angle float64) Mat3 {
	m, err := About(axis, angle)
	if err != nil {
		return Mat3{}
	}
	return m
}
