// Package knot builds the global parameter ("knot") vector associated with
// a sequence of control points, per the parameterization rules shared by
// every spline family: alpha-weighted spacing, inner/outer padding, and the
// looping extension. See the spline package for how each family consumes it.
package knot

import (
	"errors"
	"fmt"

	"github.com/splinekit/splinekit/util/logger"
	"github.com/splinekit/splinekit/vecmath"
)

// log is this package's child logger for knot-construction diagnostics
// (near-coincident control points). It copies Default's level, enabled
// state and output once, at package initialization; it is unexported, and
// later changes to Default do not reach it.
var log = logger.New("KNOT", logger.Default)

// PaddingMode selects how a family's phantom/padding points are folded into
// the knot vector.
type PaddingMode int

const (
	// PaddingInner marks the first and last `padding` supplied points as
	// phantom: they contribute real spacing but fall outside [0, max_t].
	// Used by uniform Catmull-Rom, cubic/quintic Hermite in CR mode.
	PaddingInner PaddingMode = iota

	// PaddingOuter marks every supplied point as active and instead
	// extrapolates `padding` synthetic knots on each end by mirroring the
	// nearest real spacing. Used by the generic B-spline.
	PaddingOuter
)

// collapseDistSq is the squared-distance threshold below which two
// consecutive control points are treated as coincident.
const collapseDistSq = 1e-8

// Knots is the computed, rescaled knot vector for one spline instance.
// Indices may be negative (padding before the first active control point).
type Knots[S vecmath.Scalar] struct {
	vals         []S
	base         int // vals[i+base] holds the knot for control-point index i
	firstActive  int
	lastActive   int
	segmentCount int
	maxT         S
	looping      bool
}

// At returns the knot value for control-point index i (may be negative).
func (k *Knots[S]) At(i int) S {
	return k.vals[i+k.base]
}

// MaxT returns the parameter value at which the spline ends (or loops).
func (k *Knots[S]) MaxT() S {
	return k.maxT
}

// SegmentCount returns the number of interpolated segments.
func (k *Knots[S]) SegmentCount() int {
	return k.segmentCount
}

// FirstActive returns the control-point index of the first active knot.
func (k *Knots[S]) FirstActive() int {
	return k.firstActive
}

// LastActive returns the control-point index of the last active knot.
func (k *Knots[S]) LastActive() int {
	return k.lastActive
}

// IsLooping reports whether this knot vector was built for a looping spline.
func (k *Knots[S]) IsLooping() bool {
	return k.looping
}

// Active returns the slice of active knot values, length segmentCount+1, in
// ascending order from FirstActive to LastActive.
func (k *Knots[S]) Active() []S {
	return k.vals[k.firstActive+k.base : k.lastActive+k.base+1]
}

// rawSpacing computes ||b-a||^alpha using one power and no sqrt, collapsing
// near-coincident points to zero spacing.
func rawSpacing[S vecmath.Scalar, V vecmath.Vec[S, V]](a, b V, alpha S) S {
	if alpha == 0 {
		return 1
	}
	d2 := b.DistanceToSquared(a)
	if d2 < S(collapseDistSq) {
		log.Debug("collapsing near-coincident control points (dist^2=%v)", float64(d2))
		return 0
	}
	return vecmath.Pow(d2, alpha/2)
}

// Build constructs the knot vector for `points` under the given alpha,
// padding count, topology and padding mode. `points` already includes any
// phantom neighbors the family needs (PaddingInner) or is the full active
// set (PaddingOuter / looping).
func Build[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S, padding int, looping bool, mode PaddingMode) (*Knots[S], error) {
	n := len(points)
	if n < 2 {
		return nil, errors.New("knot: at least 2 points required")
	}

	var raw map[int]S
	var firstActive, lastActive, segmentCount int

	if looping {
		if padding < 0 {
			return nil, fmt.Errorf("knot: negative padding %d", padding)
		}
		steps := make([]S, n) // steps[i] = spacing from point i to point (i+1)%n
		for i := 0; i < n; i++ {
			steps[i] = rawSpacing[S](points[i], points[(i+1)%n], alpha)
		}
		raw = make(map[int]S, n+1+2*padding)
		raw[0] = 0
		for i := 1; i <= n; i++ {
			raw[i] = raw[i-1] + steps[i-1]
		}
		for kk := 1; kk <= padding; kk++ {
			leftStep := steps[((n-kk)%n+n)%n]
			raw[-kk] = raw[-kk+1] - leftStep
			rightStep := steps[(kk-1)%n]
			raw[n+kk] = raw[n+kk-1] + rightStep
		}
		firstActive, lastActive = 0, n
		segmentCount = n
	} else {
		raw = make(map[int]S, n+2*padding)
		raw[0] = 0
		for i := 1; i < n; i++ {
			raw[i] = raw[i-1] + rawSpacing[S](points[i-1], points[i], alpha)
		}
		switch mode {
		case PaddingInner:
			if n-1-2*padding < 1 {
				return nil, fmt.Errorf("knot: not enough points (%d) for padding %d", n, padding)
			}
			firstActive, lastActive = padding, n-1-padding
			segmentCount = lastActive - firstActive
		case PaddingOuter:
			firstActive, lastActive = 0, n-1
			segmentCount = n - 1
			if padding > 0 {
				leftStep := raw[1] - raw[0]
				for kk := 1; kk <= padding; kk++ {
					raw[-kk] = raw[-kk+1] - leftStep
				}
				rightStep := raw[n-1] - raw[n-2]
				for kk := 1; kk <= padding; kk++ {
					raw[n-1+kk] = raw[n-2+kk] + rightStep
				}
			}
		default:
			return nil, fmt.Errorf("knot: unknown padding mode %v", mode)
		}
	}

	rawFirst, rawLast := raw[firstActive], raw[lastActive]
	span := rawLast - rawFirst
	var factor S
	if span == 0 {
		factor = 1
	} else {
		factor = S(segmentCount) / span
	}

	minIdx, maxIdx := firstActive, lastActive
	for idx := range raw {
		if idx < minIdx {
			minIdx = idx
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	vals := make([]S, maxIdx-minIdx+1)
	for idx, r := range raw {
		vals[idx-minIdx] = (r - rawFirst) * factor
	}

	return &Knots[S]{
		vals:         vals,
		base:         -minIdx,
		firstActive:  firstActive,
		lastActive:   lastActive,
		segmentCount: segmentCount,
		maxT:         S(segmentCount),
		looping:      looping,
	}, nil
}
