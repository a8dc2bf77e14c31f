package tridiag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolve_Identity(t *testing.T) {
	sub := []float64{0, 0, 0}
	main := []float64{1, 1, 1}
	super := []float64{0, 0, 0}
	rhs := []float64{5, 5, 5}

	x, err := Solve(sub, main, super, rhs)
	assert.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 5, 5}, x, 1e-12)
}

func TestSolveSymmetric_Tridiagonal(t *testing.T) {
	main := []float64{2, 2, 2}
	secondary := []float64{1, 1, 0}
	rhs := []float64{3, 4, 3}

	x, err := SolveSymmetric(main, secondary, rhs)
	assert.NoError(t, err)
	for i := range x {
		// verify by reconstructing the row equation
		var lhs float64
		if i > 0 {
			lhs += secondary[i-1] * x[i-1]
		}
		lhs += main[i] * x[i]
		if i < len(x)-1 {
			lhs += secondary[i] * x[i+1]
		}
		assert.InDelta(t, rhs[i], lhs, 1e-9)
	}
}

func TestSolveCyclicSymmetric_Identity(t *testing.T) {
	main := []float64{3, 3, 3, 3, 3}
	secondary := []float64{1, 1, 1, 1, 1}
	rhs := []float64{1, 1, 1, 1, 1}

	x, err := SolveCyclicSymmetric(main, secondary, rhs)
	assert.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.2, 0.2, 0.2, 0.2}, x, 1e-9)
}

func TestSolveCyclicSymmetric_Verify(t *testing.T) {
	main := []float64{4, 5, 6, 5}
	secondary := []float64{1, 2, 1, 1.5}
	rhs := []float64{1, 2, 3, 4}

	n := len(main)
	x, err := SolveCyclicSymmetric(main, secondary, rhs)
	assert.NoError(t, err)

	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		lhs := secondary[prev]*x[prev] + main[i]*x[i] + secondary[i]*x[next]
		assert.InDelta(t, rhs[i], lhs, 1e-7)
	}
}

func TestSolve_MismatchedLengths(t *testing.T) {
	_, err := Solve([]float64{0, 0}, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}
