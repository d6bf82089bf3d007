package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"astrokit/geometry/vector"
)

// Mat3 is a 3×3 matrix stored row-major. Matrices are defined by their
// action: MulVec applied to a vector yields the transformed vector.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec returns m × v
func (m Mat3) MulVec(v vector.Vec3) vector.Vec3 {
	return vector.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m × o
func (m Mat3) Mul(o Mat3) Mat3 {
	var p Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return p
}

// Add returns the componentwise sum m + o
func (m Mat3) Add(o Mat3) Mat3 {
	var s Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s[i][j] = m[i][j] + o[i][j]
		}
	}
	return s
}

// Sub returns the componentwise difference m − o
func (m Mat3) Sub(o Mat3) Mat3 {
	var s Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s[i][j] = m[i][j] - o[i][j]
		}
	}
	return s
}

// Scale returns the matrix with every entry multiplied by k
func (m Mat3) Scale(k float64) Mat3 {
	var s Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s[i][j] = m[i][j] * k
		}
	}
	return s
}

// Transpose returns mᵀ
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Norm returns the Frobenius norm
func (m Mat3) Norm() float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += m[i][j] * m[i][j]
		}
	}
	return math.Sqrt(sum)
}

// Dense returns a copy of m as a gonum dense matrix, for callers composing
// with general linear-algebra routines outside this package.
func (m Mat3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// Mat3FromDense converts a gonum matrix back to a Mat3.
// The input must be 3×3.
func Mat3FromDense(d mat.Matrix) (Mat3, error) {
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return Mat3{}, fmt.Errorf("rotation: want a 3×3 matrix, got %d×%d", r, c)
	}
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m, nil
}
