// Package segment locates, for a sorted knot vector and a query parameter,
// the half-open segment that contains it. Every spline family shares this
// lookup unchanged.
package segment

import (
	"math"

	"github.com/splinekit/splinekit/vecmath"
)

// Locate returns the index i such that knots[i] <= t < knots[i+1], clamping
// out-of-range t to the first or last segment. knots must hold at least 2
// ascending values (segmentCount+1 active knots).
//
// The search starts from the fast uniform-parameterization guess
// floor(t-knots[0]), then gallops outward with an exponentially growing
// stride until it brackets the answer, and finally bisects the bracket.
// Worst case O(log n); typical case O(1) when parameterization is uniform.
func Locate[S vecmath.Scalar](knots []S, t S) int {
	n := len(knots)
	lastSeg := n - 2
	if lastSeg < 0 {
		panic("segment: knots must contain at least 2 values")
	}
	if t <= knots[0] {
		return 0
	}
	if t >= knots[n-1] {
		return lastSeg
	}

	guess := int(math.Floor(float64(t - knots[0])))
	if guess < 0 {
		guess = 0
	}
	if guess > lastSeg {
		guess = lastSeg
	}
	if contains(knots, guess, t) {
		return guess
	}

	if t < knots[guess] {
		lo, hi := gallopLeft(knots, t, guess)
		return bisect(knots, t, lo, hi)
	}
	lo, hi := gallopRight(knots, t, guess, lastSeg)
	return bisect(knots, t, lo, hi)
}

// contains reports whether t lies in the half-open segment [knots[i], knots[i+1]).
func contains[S vecmath.Scalar](knots []S, i int, t S) bool {
	return knots[i] <= t && t < knots[i+1]
}

// gallopLeft searches downward from guess (known to overshoot: knots[guess] > t)
// with exponentially growing stride, returning a bracket [lo, hi] of segment
// indices guaranteed to contain the answer.
func gallopLeft[S vecmath.Scalar](knots []S, t S, guess int) (lo, hi int) {
	hi = guess
	stride := 1
	for {
		lo = hi - stride
		if lo <= 0 {
			lo = 0
			return
		}
		if knots[lo] <= t {
			return
		}
		hi = lo
		stride *= 2
	}
}

// gallopRight searches upward from guess (known to undershoot: knots[guess+1] <= t)
// with exponentially growing stride, returning a bracket [lo, hi] of segment
// indices guaranteed to contain the answer.
func gallopRight[S vecmath.Scalar](knots []S, t S, guess, lastSeg int) (lo, hi int) {
	lo = guess
	stride := 1
	for {
		hi = lo + stride
		if hi >= lastSeg {
			hi = lastSeg
			return
		}
		if knots[hi+1] > t {
			return
		}
		lo = hi
		stride *= 2
	}
}

// bisect narrows [lo, hi] (a bracket of segment indices known to contain the
// answer) down to the exact segment via binary search.
func bisect[S vecmath.Scalar](knots []S, t S, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if knots[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
