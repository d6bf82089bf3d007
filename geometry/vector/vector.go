// Package vector provides 3D vector operations
package vector

import "math"

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D vector with float64 components
type Vec3 struct{ X, Y, Z float64 }

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Neg returns the vector with all components negated
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// NormSquared returns the squared magnitude
func (v Vec3) NormSquared() float64 { return v.Dot(v) }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool { return v == Vec3{} }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero-magnitude input yields the zero vector, not NaN.
func (v Vec3) Normalize() Vec3 {
	norm := v.Norm()
	if norm == 0 {
		return Vec3{}
	}
	return v.Mul(1 / norm)
}

// TryNormalize is Normalize with an explicit degeneracy flag: ok is false
// when the input has zero magnitude and the result is the zero vector.
func (v Vec3) TryNormalize() (Vec3, bool) {
	norm := v.Norm()
	if norm == 0 {
		return Vec3{}, false
	}
	return v.Mul(1 / norm), true
}

// UnitDeriv returns the time derivative of the unit vector of u, given u and
// its own derivative udot, via d(û)/dt = (udot − (û·udot)û) / |u|.
// The unit-vector map is singular at the origin; |u| == 0 yields the zero
// vector rather than a division by zero.
func UnitDeriv(u, udot Vec3) Vec3 {
	d, _ := TryUnitDeriv(u, udot)
	return d
}

// TryUnitDeriv is UnitDeriv with an explicit degeneracy flag: ok is false
// when |u| == 0 and the result is the zero vector.
func TryUnitDeriv(u, udot Vec3) (Vec3, bool) {
	norm := u.Norm()
	if norm == 0 {
		return Vec3{}, false
	}
	uhat := u.Mul(1 / norm)
	return udot.Sub(uhat.Mul(uhat.Dot(udot))).Mul(1 / norm), true
}

// UnitCross returns the unit vector of a × b.
// Parallel or zero inputs yield the zero vector.
func UnitCross(a, b Vec3) Vec3 { return a.Cross(b).Normalize() }

// BoxProduct returns the scalar triple product a · (b × c)
func BoxProduct(a, b, c Vec3) float64 { return a.Dot(b.Cross(c)) }
