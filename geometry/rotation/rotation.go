// Package rotation provides axis-angle and principal-axis rotations of 3D
// vectors.
//
// Two equivalent rotation paths are exposed: AxisAngle applies Rodrigues'
// rotation formula directly, and AxisAngleMatrix builds the corresponding
// rotation matrix. For any vector the two agree to floating-point rounding,
// which cmd/rotcheck verifies as a runtime diagnostic.
package rotation

import (
	"math"

	"astrokit/geometry/vector"
)

// AxisAngle rotates v about the axis k by theta radians using Rodrigues'
// rotation formula v cosθ + (k̂×v) sinθ + k̂ (k̂·v)(1−cosθ).
// A zero axis has no direction; the formula then degrades to v cosθ.
func AxisAngle(v, k vector.Vec3, theta float64) vector.Vec3 {
	sin, cos := math.Sincos(theta)
	khat := k.Normalize()
	return v.Mul(cos).
		Add(khat.Cross(v).Mul(sin)).
		Add(khat.Mul(khat.Dot(v) * (1 - cos)))
}

// CrossMatrix returns the skew-symmetric matrix of r: the matrix W with
// W.MulVec(v) equal to r.Cross(v) for every v.
func CrossMatrix(r vector.Vec3) Mat3 {
	return Mat3{
		{0, -r.Z, r.Y},
		{r.Z, 0, -r.X},
		{-r.Y, r.X, 0},
	}
}

// AxisAngleMatrix returns the matrix rotating vectors about k by theta
// radians, built as cosθ·I + sinθ·W + (1−cosθ)·k̂k̂ᵀ with W the cross matrix
// of the normalized axis k̂. For a nonzero axis this equals the familiar
// I + W sinθ + W²(1−cosθ); a zero axis reduces it to cosθ · I, matching the
// AxisAngle degeneracy.
func AxisAngleMatrix(k vector.Vec3, theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	khat := k.Normalize()
	outer := Mat3{
		{khat.X * khat.X, khat.X * khat.Y, khat.X * khat.Z},
		{khat.Y * khat.X, khat.Y * khat.Y, khat.Y * khat.Z},
		{khat.Z * khat.X, khat.Z * khat.Y, khat.Z * khat.Z},
	}
	return Identity().Scale(cos).
		Add(CrossMatrix(khat).Scale(sin)).
		Add(outer.Scale(1 - cos))
}
