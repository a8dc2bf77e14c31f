// Package rootfind implements Brent's method for finding a root of a
// continuous scalar function over a bracketing interval. It backs
// both arc-length inversion (monotone f) and nearest-point refinement
// (sign change of the distance derivative).
package rootfind

import (
	"errors"

	"github.com/splinekit/splinekit/vecmath"
)

// ErrNotBracketed is returned when f(a) and f(b) have the same sign, so no
// root is guaranteed to exist in [a, b].
var ErrNotBracketed = errors.New("rootfind: function values at bracket endpoints have the same sign")

// ErrNoConvergence is returned when maxIter iterations elapse without
// meeting the tolerance. The best estimate found so far is still returned.
var ErrNoConvergence = errors.New("rootfind: exceeded maximum iterations")

// Func is a 1-D continuous scalar function.
type Func[S vecmath.Scalar] func(S) S

// Brent finds x in [a, b] such that f(x) ~= 0, given f(a) and f(b) have
// opposite signs (or one is already zero). tol bounds the final bracket
// width; maxIter bounds the iteration count.
func Brent[S vecmath.Scalar](f Func[S], a, b, tol S, maxIter int) (S, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if sameSign(fa, fb) {
		return b, ErrNotBracketed
	}

	if vecmath.Abs(fa) < vecmath.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	var d S
	mflag := true

	for i := 0; i < maxIter; i++ {
		if fb == 0 || vecmath.Abs(b-a) < tol {
			return b, nil
		}

		var s S
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant.
			s = b - fb*(b-a)/(fb-fa)
		}

		lowBound := (3*a + b) / 4
		cond1 := !between(s, lowBound, b)
		cond2 := mflag && vecmath.Abs(s-b) >= vecmath.Abs(b-c)/2
		cond3 := !mflag && vecmath.Abs(s-b) >= vecmath.Abs(c-d)/2
		cond4 := mflag && vecmath.Abs(b-c) < tol
		cond5 := !mflag && vecmath.Abs(c-d) < tol

		if cond1 || cond2 || cond3 || cond4 || cond5 {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb

		if sameSign(fa, fs) {
			a, fa = s, fs
		} else {
			b, fb = s, fs
		}

		if vecmath.Abs(fa) < vecmath.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, ErrNoConvergence
}

func sameSign[S vecmath.Scalar](a, b S) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// between reports whether s lies strictly between lo and hi (order-agnostic).
func between[S vecmath.Scalar](s, lo, hi S) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return s > lo && s < hi
}
