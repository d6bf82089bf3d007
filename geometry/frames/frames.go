// Package frames converts between spherical and Cartesian coordinates
package frames

import (
	"math"

	"astrokit/geometry/vector"
)

// SphericalToCartesian converts a magnitude plus azimuth and elevation
// angles (radians) to Cartesian coordinates. Azimuth is measured in the
// XY plane from +X toward +Y, elevation from the XY plane toward +Z.
func SphericalToCartesian(r, azimuth, elevation float64) vector.Vec3 {
	sinAz, cosAz := math.Sincos(azimuth)
	sinEl, cosEl := math.Sincos(elevation)
	return vector.Vec3{
		X: r * cosAz * cosEl,
		Y: r * sinAz * cosEl,
		Z: r * sinEl,
	}
}

// CartesianToSpherical returns the magnitude, azimuth and elevation of v.
// The zero vector has no direction and maps to three zeros.
func CartesianToSpherical(v vector.Vec3) (r, azimuth, elevation float64) {
	r = v.Norm()
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Atan2(v.Y, v.X), math.Asin(v.Z / r)
}
