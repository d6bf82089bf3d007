package vector

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch reports operands of unequal length passed to a
// dimension-generic routine.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Outer returns the outer product a bᵀ as a len(a)×len(b) dense matrix.
// The operands need not have matching lengths.
func Outer(a, b []float64) *mat.Dense {
	m := mat.NewDense(len(a), len(b), nil)
	m.Outer(1, mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
	return m
}

// Project returns the orthogonal projection of b onto a, a (a·b)/(a·a).
// A zero projection target yields the zero vector of matching length.
func Project(a, b []float64) ([]float64, error) {
	p, _, err := TryProject(a, b)
	return p, err
}

// TryProject is Project with an explicit degeneracy flag: ok is false when
// a has zero magnitude and the result is the zero vector.
func TryProject(a, b []float64) ([]float64, bool, error) {
	if len(a) != len(b) {
		return nil, false, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	aa := floats.Dot(a, a)
	if aa == 0 {
		return out, false, nil
	}
	floats.ScaleTo(out, floats.Dot(a, b)/aa, a)
	return out, true, nil
}
