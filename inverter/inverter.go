// Package inverter answers "nearest point on curve" queries: given an
// arbitrary query point, find the parameter t whose position on the spline
// is closest to it. It samples the spline once at construction,
// indexes the samples with a k-d tree, and refines the nearest sample with
// Brent's method against the sign change of the distance derivative.
package inverter

import (
	"errors"

	"github.com/splinekit/splinekit/kdtree"
	"github.com/splinekit/splinekit/rootfind"
	"github.com/splinekit/splinekit/spline"
	"github.com/splinekit/splinekit/vecmath"
)

// ErrEmptySpline is returned when the spline's domain is degenerate
// (MaxT() <= 0), so no samples can be taken.
var ErrEmptySpline = errors.New("inverter: spline has an empty parameter domain")

// DefaultSamplesPerT is used when NewInverter is given samplesPerT <= 0.
const DefaultSamplesPerT = 10

// slopeTolerance is the distance-derivative magnitude below which a sampled
// parameter is accepted as the answer without further refinement.
const slopeTolerance = 0.01

const brentTol = 1e-9
const brentMaxIter = 100

// point constrains the curve's value type to additionally support the
// per-axis access the k-d tree needs. vecmath.Vector2[S] and Vector3[S]
// both satisfy it.
type point[S vecmath.Scalar, V any] interface {
	vecmath.Vec[S, V]
	kdtree.Point[S]
}

// Inverter maps query points back to the closest parameter value on a
// spline it was built from. It borrows no mutable state from the spline and
// is safe for concurrent queries once constructed.
type Inverter[S vecmath.Scalar, V point[S, V]] struct {
	sp      spline.Spline[S, V]
	looping bool
	maxT    S
	step    S
	ts      []S
	tree    *kdtree.Tree[S, V]
}

// New builds an inverter over sp, sampling it at 1/samplesPerT spacing
// (samplesPerT <= 0 uses DefaultSamplesPerT).
func New[S vecmath.Scalar, V point[S, V]](sp spline.Spline[S, V], samplesPerT int) (*Inverter[S, V], error) {
	if samplesPerT <= 0 {
		samplesPerT = DefaultSamplesPerT
	}
	maxT := sp.MaxT()
	if maxT <= 0 {
		return nil, ErrEmptySpline
	}
	step := S(1) / S(samplesPerT)

	var ts []S
	for t := S(0); t < maxT; t += step {
		ts = append(ts, t)
	}
	if !sp.IsLooping() {
		last := ts[len(ts)-1]
		if absS(last/maxT-1) > 1e-4 {
			ts = append(ts, maxT)
		}
	}

	positions := make([]V, len(ts))
	for i, t := range ts {
		positions[i] = sp.GetPosition(t)
	}

	return &Inverter[S, V]{
		sp:      sp,
		looping: sp.IsLooping(),
		maxT:    maxT,
		step:    step,
		ts:      ts,
		tree:    kdtree.Build[S](positions),
	}, nil
}

// NearestT returns the parameter t such that sp.GetPosition(t) is (to
// within the sampling-density invariant) the closest point on the
// curve to query.
func (inv *Inverter[S, V]) NearestT(query V) S {
	idx, _ := inv.tree.Nearest(query)
	ts := inv.ts[idx]

	f := inv.distanceSlope(query)
	slope := f(ts)
	if absS(slope) < slopeTolerance {
		return ts
	}

	if !inv.looping {
		if absS(ts) < 1e-4 && slope > 0 {
			return ts
		}
		if absS(ts/inv.maxT-1) < 1e-4 && slope < 0 {
			return ts
		}
	}

	a := ts
	b := ts - inv.step*signS(slope)
	aVal := slope
	bVal := f(b)
	if sameSignS(aVal, bVal) {
		return ts
	}

	root, err := rootfind.Brent(f, a, b, S(brentTol), brentMaxIter)
	if err != nil {
		return ts
	}
	if inv.looping {
		return wrapT(root, inv.maxT)
	}
	return root
}

// distanceSlope returns f(t) = normalize(spline(t) - query) . tangent(t),
// the derivative of distance-to-query with respect to t. Its sign change
// brackets the closest point.
func (inv *Inverter[S, V]) distanceSlope(query V) rootfind.Func[S] {
	return func(t S) S {
		frame := inv.sp.GetTangent(t)
		displacement := frame.Position.Sub(query)
		d := displacement.Length()
		if d < S(1e-9) {
			var zero S
			return zero
		}
		return displacement.DivideScalar(d).Dot(frame.Tangent)
	}
}

func wrapT[S vecmath.Scalar](t, maxT S) S {
	m := t
	for m < 0 {
		m += maxT
	}
	for m >= maxT {
		m -= maxT
	}
	return m
}

func absS[S vecmath.Scalar](v S) S {
	if v < 0 {
		return -v
	}
	return v
}

func signS[S vecmath.Scalar](v S) S {
	if v < 0 {
		return -1
	}
	return 1
}

func sameSignS[S vecmath.Scalar](a, b S) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
