// Package arclen composes the per-family arc-length integral (which every
// spline already exposes) with Brent's method to invert it: "walk forward
// from a by length L, what parameter do you land on", and its equi-length
// partitioning built on top.
package arclen

import (
	"errors"

	"github.com/splinekit/splinekit/rootfind"
	"github.com/splinekit/splinekit/spline"
	"github.com/splinekit/splinekit/vecmath"
)

// ErrNegativeLength is returned when a requested length is negative.
var ErrNegativeLength = errors.New("arclen: length must be non-negative")

const brentTol = 1e-9
const brentMaxIter = 100

// SolveLength finds b >= a such that sp.ArcLength(a, b) == length, clamping
// to sp.MaxT() if length reaches or exceeds the remaining arc.
func SolveLength[S vecmath.Scalar, V vecmath.Vec[S, V]](sp spline.Spline[S, V], a, length S) (S, error) {
	if length < 0 {
		return 0, ErrNegativeLength
	}
	maxT := sp.MaxT()
	remaining := sp.ArcLength(a, maxT)
	if length >= remaining {
		return maxT, nil
	}

	f := func(x S) S { return sp.ArcLength(a, x) - length }

	segStart := sp.SegmentForT(a)
	segCount := sp.SegmentCount()
	accumulated := S(0)
	from := a

	for seg := segStart; seg < segCount; seg++ {
		_, segEnd := sp.SegmentT(seg)
		accumulated += sp.SegmentArcLength(seg, from, segEnd)
		if accumulated >= length {
			lo := from
			root, err := rootfind.Brent(f, lo, segEnd, S(brentTol), brentMaxIter)
			if err != nil && !errors.Is(err, rootfind.ErrNoConvergence) {
				return 0, err
			}
			return root, nil
		}
		from = segEnd
	}
	return maxT, nil
}

// SolveLengthCyclic is SolveLength's looping counterpart: length may exceed
// one full circumference, in which case the result wraps around the loop
// one or more times (cycles * MaxT() is added back into the returned b).
func SolveLengthCyclic[S vecmath.Scalar, V vecmath.Vec[S, V]](sp spline.LoopingSpline[S, V], a, length S) (S, error) {
	if length < 0 {
		return 0, ErrNegativeLength
	}
	maxT := sp.MaxT()
	circumference := sp.TotalLength()
	if circumference <= 0 {
		return a, nil
	}

	cycles := S(0)
	for length > circumference {
		length -= circumference
		cycles++
	}

	b, err := SolveLength[S, V](sp, a, length)
	if err != nil {
		return 0, err
	}
	return b + cycles*maxT, nil
}

// Partition returns the increasing sequence 0 = t[0] < t[1] < ... <= MaxT()
// such that ArcLength(t[i-1], t[i]) == pieceLength for every interior piece
// (the final piece may be shorter).
func Partition[S vecmath.Scalar, V vecmath.Vec[S, V]](sp spline.Spline[S, V], pieceLength S) ([]S, error) {
	if pieceLength <= 0 {
		return nil, ErrNegativeLength
	}
	maxT := sp.MaxT()
	const epsilon = 1e-6
	ts := []S{0}
	t := S(0)
	for maxT-t > S(epsilon) {
		next, err := SolveLength[S, V](sp, t, pieceLength)
		if err != nil {
			return nil, err
		}
		if next <= t {
			break
		}
		if maxT-next < S(epsilon) {
			next = maxT
		}
		ts = append(ts, next)
		t = next
	}
	return ts, nil
}

// PartitionN divides the spline's total length into n equal pieces.
func PartitionN[S vecmath.Scalar, V vecmath.Vec[S, V]](sp spline.Spline[S, V], n int) ([]S, error) {
	if n <= 0 {
		return nil, errors.New("arclen: n must be positive")
	}
	total := sp.TotalLength()
	return Partition[S, V](sp, total/S(n))
}
