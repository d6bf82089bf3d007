// Package transform applies rotations to batches of vectors in parallel.
// Orbit sampling and frame conversion work on thousands of state vectors at
// a time; these helpers spread that work across cores while keeping the
// pure contract of the underlying primitives: inputs are never modified and
// the result depends only on the arguments.
package transform

import (
	"github.com/dgravesa/go-parallel/parallel"

	"astrokit/geometry/rotation"
	"astrokit/geometry/vector"
)

// ApplyAll returns m applied to every vector in vs
func ApplyAll(m rotation.Mat3, vs []vector.Vec3) []vector.Vec3 {
	out := make([]vector.Vec3, len(vs))
	parallel.For(len(vs), func(i, _ int) {
		out[i] = m.MulVec(vs[i])
	})
	return out
}

// RotateAll rotates every vector in vs about the axis k by theta radians.
// The rotation matrix is built once and applied per entry, so each result
// matches rotation.AxisAngle on that entry to floating-point rounding.
func RotateAll(vs []vector.Vec3, k vector.Vec3, theta float64) []vector.Vec3 {
	return ApplyAll(rotation.AxisAngleMatrix(k, theta), vs)
}
