package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrokit/geometry/rotation"
	"astrokit/geometry/vector"
)

func TestRotateAllMatchesScalarPath(t *testing.T) {
	vs := []vector.Vec3{
		vector.NewVec3(1.2, 3.0, -5.0),
		vector.NewVec3(7000, 0, 0),
		vector.NewVec3(-0.5, 0.25, 9),
		vector.Vec3{},
	}
	k := vector.NewVec3(-0.1, 16.2, 2.1)
	theta := 0.123

	got := RotateAll(vs, k, theta)
	require.Len(t, got, len(vs))
	for i, v := range vs {
		want := rotation.AxisAngle(v, k, theta)
		assert.InDelta(t, want.X, got[i].X, 1e-12, "entry %d", i)
		assert.InDelta(t, want.Y, got[i].Y, 1e-12, "entry %d", i)
		assert.InDelta(t, want.Z, got[i].Z, 1e-12, "entry %d", i)
	}
}

func TestApplyAllPreservesInput(t *testing.T) {
	vs := []vector.Vec3{
		vector.NewVec3(1, 0, 0),
		vector.NewVec3(0, 1, 0),
	}
	orig := make([]vector.Vec3, len(vs))
	copy(orig, vs)

	m := rotation.AxisAngleMatrix(vector.NewVec3(0, 0, 1), math.Pi/2)
	out := ApplyAll(m, vs)

	require.Equal(t, orig, vs, "input slice must not be modified")
	require.Len(t, out, len(vs))
	assert.InDelta(t, 0, out[0].Sub(vector.NewVec3(0, 1, 0)).Norm(), 1e-12)
	assert.InDelta(t, 0, out[1].Sub(vector.NewVec3(-1, 0, 0)).Norm(), 1e-12)
}

func TestApplyAllEmpty(t *testing.T) {
	out := ApplyAll(rotation.Identity(), nil)
	require.Empty(t, out)
}
