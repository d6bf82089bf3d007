package frames

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"astrokit/geometry/vector"
)

func TestSphericalToCartesian(t *testing.T) {
	table := []struct {
		name      string
		r, az, el float64
		want      vector.Vec3
	}{
		{"along x", 1, 0, 0, vector.NewVec3(1, 0, 0)},
		{"along y", 2, math.Pi / 2, 0, vector.NewVec3(0, 2, 0)},
		{"straight up", 3, 1.234, math.Pi / 2, vector.NewVec3(0, 0, 3)},
		{"zero radius", 0, 0.5, -0.5, vector.Vec3{}},
		{"negative elevation", 1, 0, -math.Pi / 2, vector.NewVec3(0, 0, -1)},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := SphericalToCartesian(tc.r, tc.az, tc.el)
			require.InDelta(t, tc.want.X, got.X, 1e-12)
			require.InDelta(t, tc.want.Y, got.Y, 1e-12)
			require.InDelta(t, tc.want.Z, got.Z, 1e-12)
		})
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	for _, v := range []vector.Vec3{
		vector.NewVec3(7000, 0, 0),
		vector.NewVec3(1.2, 3.0, -5.0),
		vector.NewVec3(-42, 0.001, 13),
	} {
		r, az, el := CartesianToSpherical(v)
		back := SphericalToCartesian(r, az, el)
		require.InDelta(t, v.X, back.X, 1e-9)
		require.InDelta(t, v.Y, back.Y, 1e-9)
		require.InDelta(t, v.Z, back.Z, 1e-9)
	}
}

func TestCartesianToSphericalDegenerate(t *testing.T) {
	r, az, el := CartesianToSpherical(vector.Vec3{})
	require.Zero(t, r)
	require.Zero(t, az)
	require.Zero(t, el)
}
