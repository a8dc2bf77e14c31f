// Package tridiag solves symmetric and cyclic-symmetric tridiagonal linear
// systems, treated as a black-box linear solver consumed only by the
// natural cubic spline. Non-looping natural splines use the plain Thomas algorithm;
// looping natural splines use the Sherman-Morrison wraparound correction.
package tridiag

import (
	"errors"

	"github.com/splinekit/splinekit/vecmath"
)

// ErrMismatchedLengths is returned when the diagonal/rhs slices disagree in size.
var ErrMismatchedLengths = errors.New("tridiag: mismatched array lengths")

// ErrEmptySystem is returned for a zero-sized system.
var ErrEmptySystem = errors.New("tridiag: empty system")

// ErrSingular is returned when a zero pivot is encountered.
var ErrSingular = errors.New("tridiag: singular system")

// Solve solves A x = rhs for a tridiagonal A given by its sub-, main- and
// super-diagonals (sub[0] and super[n-1] are ignored). Used directly for
// symmetric systems by passing sub[i] == super[i-1].
func Solve[S vecmath.Scalar](sub, main, super, rhs []S) ([]S, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(sub) != n || len(super) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}

	cp := make([]S, n)
	dp := make([]S, n)
	if main[0] == 0 {
		return nil, ErrSingular
	}
	cp[0] = super[0] / main[0]
	dp[0] = rhs[0] / main[0]

	for i := 1; i < n; i++ {
		m := main[i] - sub[i]*cp[i-1]
		if m == 0 {
			return nil, ErrSingular
		}
		cp[i] = super[i] / m
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / m
	}

	x := make([]S, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, nil
}

// SolveSymmetric solves a symmetric tridiagonal system whose single
// off-diagonal array `secondary` (length n, secondary[n-1] unused) holds
// both matrix[i][i+1] and matrix[i+1][i].
func SolveSymmetric[S vecmath.Scalar](main, secondary, rhs []S) ([]S, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(secondary) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}
	sub := make([]S, n)
	super := make([]S, n)
	for i := 0; i < n; i++ {
		super[i] = secondary[i]
		if i > 0 {
			sub[i] = secondary[i-1]
		}
	}
	return Solve(sub, main, super, rhs)
}

// SolveCyclicSymmetric solves a cyclic-symmetric tridiagonal system: the
// same layout as SolveSymmetric, but row 0 additionally couples to x[n-1]
// and row n-1 additionally couples to x[0], both via secondary[n-1] (the
// wraparound gap). Solved via the Sherman-Morrison correction over two
// plain tridiagonal solves (Numerical Recipes).
func SolveCyclicSymmetric[S vecmath.Scalar](main, secondary, rhs []S) ([]S, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(secondary) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}
	if n < 3 {
		return nil, errors.New("tridiag: cyclic system needs at least 3 unknowns")
	}

	alpha := secondary[n-1] // corner (0, n-1)
	beta := secondary[n-1]  // corner (n-1, 0), symmetric => equal to alpha

	sub := make([]S, n)
	super := make([]S, n)
	for i := 0; i < n; i++ {
		super[i] = secondary[i]
		if i > 0 {
			sub[i] = secondary[i-1]
		}
	}
	super[n-1] = 0
	sub[0] = 0

	gamma := -main[0]
	if gamma == 0 {
		gamma = 1
	}
	modMain := make([]S, n)
	copy(modMain, main)
	modMain[0] = main[0] - gamma
	modMain[n-1] = main[n-1] - alpha*beta/gamma

	x, err := Solve(sub, modMain, super, rhs)
	if err != nil {
		return nil, err
	}

	u := make([]S, n)
	u[0] = gamma
	u[n-1] = alpha
	z, err := Solve(sub, modMain, super, u)
	if err != nil {
		return nil, err
	}

	fact := (x[0] + beta*x[n-1]/gamma) / (1 + z[0] + beta*z[n-1]/gamma)
	result := make([]S, n)
	for i := range result {
		result[i] = x[i] - fact*z[i]
	}
	return result, nil
}

// SolveV solves A x = rhs for a tridiagonal A with scalar coefficients but a
// vector-valued right-hand side, by running the same Thomas algorithm
// recurrence with V's scalar multiply/divide standing in for the scalar
// arithmetic. Used by the natural cubic spline, whose curvature system
// shares one coefficient matrix across every vector component.
func SolveV[S vecmath.Scalar, V vecmath.Vec[S, V]](sub, main, super []S, rhs []V) ([]V, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(sub) != n || len(super) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}

	cp := make([]S, n)
	dp := make([]V, n)
	if main[0] == 0 {
		return nil, ErrSingular
	}
	cp[0] = super[0] / main[0]
	dp[0] = rhs[0].DivideScalar(main[0])

	for i := 1; i < n; i++ {
		m := main[i] - sub[i]*cp[i-1]
		if m == 0 {
			return nil, ErrSingular
		}
		cp[i] = super[i] / m
		dp[i] = rhs[i].Sub(dp[i-1].MultiplyScalar(sub[i])).DivideScalar(m)
	}

	x := make([]V, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i].Sub(x[i+1].MultiplyScalar(cp[i]))
	}
	return x, nil
}

// SolveSymmetricV is SolveV's counterpart to SolveSymmetric.
func SolveSymmetricV[S vecmath.Scalar, V vecmath.Vec[S, V]](main, secondary []S, rhs []V) ([]V, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(secondary) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}
	sub := make([]S, n)
	super := make([]S, n)
	for i := 0; i < n; i++ {
		super[i] = secondary[i]
		if i > 0 {
			sub[i] = secondary[i-1]
		}
	}
	return SolveV[S, V](sub, main, super, rhs)
}

// SolveCyclicSymmetricV is SolveCyclicSymmetric's counterpart for a
// vector-valued right-hand side.
func SolveCyclicSymmetricV[S vecmath.Scalar, V vecmath.Vec[S, V]](main, secondary []S, rhs []V) ([]V, error) {
	n := len(main)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	if len(secondary) != n || len(rhs) != n {
		return nil, ErrMismatchedLengths
	}
	if n < 3 {
		return nil, errors.New("tridiag: cyclic system needs at least 3 unknowns")
	}

	alpha := secondary[n-1]
	beta := secondary[n-1]

	sub := make([]S, n)
	super := make([]S, n)
	for i := 0; i < n; i++ {
		super[i] = secondary[i]
		if i > 0 {
			sub[i] = secondary[i-1]
		}
	}
	super[n-1] = 0
	sub[0] = 0

	gamma := -main[0]
	if gamma == 0 {
		gamma = 1
	}
	modMain := make([]S, n)
	copy(modMain, main)
	modMain[0] = main[0] - gamma
	modMain[n-1] = main[n-1] - alpha*beta/gamma

	x, err := SolveV[S, V](sub, modMain, super, rhs)
	if err != nil {
		return nil, err
	}

	u := make([]S, n)
	u[0] = gamma
	u[n-1] = alpha
	z, err := Solve(sub, modMain, super, u)
	if err != nil {
		return nil, err
	}

	fact := (x[0].Add(x[n-1].MultiplyScalar(beta / gamma))).DivideScalar(1 + z[0] + beta*z[n-1]/gamma)
	result := make([]V, n)
	for i := range result {
		result[i] = x[i].Sub(fact.MultiplyScalar(z[i]))
	}
	return result, nil
}
