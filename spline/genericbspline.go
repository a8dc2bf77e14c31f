package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/segment"
	"github.com/splinekit/splinekit/vecmath"
)

// GenericBSpline is a B-spline of arbitrary degree, open or looping,
// evaluated with Cox-de Boor recursion. Derivatives are obtained the
// standard way: a degree-p B-spline's derivative is itself a degree-(p-1)
// B-spline over differenced control points, so tangent/curvature/wiggle are
// each backed by their own reduced-degree control polygon computed once at
// construction.
type GenericBSpline[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	knots   *knot.Knots[S]
	degree  int
	looping bool
	levels  [][]V // levels[0] = position control points (open curves: followed by `degree` copies of the last point); levels[L] = the L-th derivative's control points, degree-L, when degree-L >= 0
}

// NewGenericBSpline builds an open B-spline of the given degree (>= 1) over
// points, parameterized with the given alpha (0 = uniform knot spacing).
func NewGenericBSpline[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, degree int, alpha S) (*GenericBSpline[S, V], error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	if len(points) < degree+1 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, degree, false, knot.PaddingOuter)
	if err != nil {
		return nil, err
	}
	return &GenericBSpline[S, V]{knots: k, degree: degree, looping: false, levels: buildLevels[S](points, degree, false, k)}, nil
}

// NewGenericBSplineLoop builds a looping B-spline of the given degree (>= 1)
// through all of points; the last control point connects back to the first.
// The knot vector is built with the same cyclic padding `knot.Build` already
// gives `UniformCubicBSplineLoop`/`UniformCRLoop`, and the de Boor evaluator
// and derivative-differencing step both index their control polygons modulo
// len(points) instead of clamping at the ends.
func NewGenericBSplineLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, degree int, alpha S) (*GenericBSpline[S, V], error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	if len(points) < degree+1 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, degree, true, knot.PaddingOuter)
	if err != nil {
		return nil, err
	}
	return &GenericBSpline[S, V]{knots: k, degree: degree, looping: true, levels: buildLevels[S](points, degree, true, k)}, nil
}

// buildLevels computes the position control points plus up to 3 levels of
// derivative control polygons (wiggle needs none beyond that). For an open
// curve the position polygon is extended with `degree` copies of the last
// point, the same values the open-curve index clamp would read there, so the
// differenced polygons also cover the last spans.
func buildLevels[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, degree int, looping bool, k *knot.Knots[S]) [][]V {
	maxLevel := degree
	if maxLevel > 3 {
		maxLevel = 3
	}
	levels := make([][]V, maxLevel+1)
	levels[0] = clonePoints(points)
	if !looping {
		for j := 0; j < degree; j++ {
			levels[0] = append(levels[0], points[len(points)-1])
		}
	}
	for level := 1; level <= maxLevel; level++ {
		prevDegree := degree - level + 1
		levels[level] = bsplineDerivativeControlPoints[S](levels[level-1], prevDegree, looping, k)
	}
	return levels
}

// bsplineDerivativeControlPoints differences a degree-prevDegree B-spline's
// control points to get the control points of its derivative, a
// degree-(prevDegree-1) B-spline. Every level shares the original knot
// vector: difference i spans knots i+1-prevDegree .. i+1. For an open curve
// the derivative polygon has one fewer point than prev; for a looping curve
// it stays the same size, differencing cyclically.
func bsplineDerivativeControlPoints[S vecmath.Scalar, V vecmath.Vec[S, V]](prev []V, prevDegree int, looping bool, k *knot.Knots[S]) []V {
	n := len(prev)
	m := n
	if !looping {
		m = n - 1
	}
	out := make([]V, m)
	for i := 0; i < m; i++ {
		lo := k.At(i + 1 - prevDegree)
		hi := k.At(i + 1)
		denom := hi - lo
		if denom == 0 {
			denom = S(1e-8)
		}
		next := i + 1
		if looping {
			next = (i + 1) % n
		}
		out[i] = prev[next].Sub(prev[i]).MultiplyScalar(S(prevDegree)).DivideScalar(denom)
	}
	return out
}

// deBoorEval runs Cox-de Boor recursion for one derivative level: degree d,
// control points P indexed so that the segment starting at `span` is
// interpolated across P[span..span+d], a knot function localKnotAt(i)
// returning that level's own knot value at native point index i, and an
// index policy (wrap modulo len(points) for looping curves, clamp to the
// valid range for open ones).
func deBoorEval[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, degree, span int, localKnotAt func(int) S, t S, looping bool) V {
	n := len(points)
	last := n - 1
	wrapIdx := func(i int) int {
		if looping {
			return ((i % n) + n) % n
		}
		if i < 0 {
			return 0
		}
		if i > last {
			return last
		}
		return i
	}
	d := make([]V, degree+1)
	for j := 0; j <= degree; j++ {
		d[j] = points[wrapIdx(span+j)]
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			idx := span + j
			left := localKnotAt(idx - degree)
			right := localKnotAt(idx - r + 1)
			denom := right - left
			if denom == 0 {
				denom = S(1e-8)
			}
			alpha := (t - left) / denom
			d[j] = d[j-1].MultiplyScalar(1 - alpha).Add(d[j].MultiplyScalar(alpha))
		}
	}
	return d[degree]
}

// evalLevel evaluates the level-th derivative's reduced B-spline at t, given
// the original (level-0) knot span index.
func (g *GenericBSpline[S, V]) evalLevel(level, span int, t S) V {
	if level >= len(g.levels) {
		var zero V
		return zero
	}
	d := g.degree - level
	localKnotAt := func(i int) S { return g.knots.At(i) }
	return deBoorEval[S](g.levels[level], d, span, localKnotAt, t, g.looping)
}

func (g *GenericBSpline[S, V]) locate(t S) (span int, kt S) {
	if g.looping {
		kt = wrapT(t, g.knots.MaxT())
	} else {
		kt = clampOpenT(t, g.knots.At(g.knots.FirstActive()), g.knots.At(g.knots.LastActive()))
	}
	span = segment.Locate(g.knots.Active(), kt)
	return
}

// GetPosition implements Spline.
func (g *GenericBSpline[S, V]) GetPosition(t S) V {
	span, kt := g.locate(t)
	return g.evalLevel(0, span, kt)
}

// GetTangent implements Spline.
func (g *GenericBSpline[S, V]) GetTangent(t S) TangentFrame[S, V] {
	span, kt := g.locate(t)
	return TangentFrame[S, V]{Position: g.evalLevel(0, span, kt), Tangent: g.evalLevel(1, span, kt)}
}

// GetCurvature implements Spline.
func (g *GenericBSpline[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	span, kt := g.locate(t)
	return CurvatureFrame[S, V]{
		Position:  g.evalLevel(0, span, kt),
		Tangent:   g.evalLevel(1, span, kt),
		Curvature: g.evalLevel(2, span, kt),
	}
}

// GetWiggle implements Spline.
func (g *GenericBSpline[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	span, kt := g.locate(t)
	return WiggleFrame[S, V]{
		Position:  g.evalLevel(0, span, kt),
		Tangent:   g.evalLevel(1, span, kt),
		Curvature: g.evalLevel(2, span, kt),
		Wiggle:    g.evalLevel(3, span, kt),
	}
}

// SegmentArcLength implements Spline.
func (g *GenericBSpline[S, V]) SegmentArcLength(i int, a, b S) S {
	return integrateTangentMagnitude[S](func(t S) V { return g.GetTangent(t).Tangent }, a, b)
}

// ArcLength implements Spline.
func (g *GenericBSpline[S, V]) ArcLength(a, b S) S {
	return genericArcLength[S, V](g, a, b)
}

// CyclicArcLength implements LoopingSpline.
func (g *GenericBSpline[S, V]) CyclicArcLength(a, b S) S {
	return genericCyclicArcLength[S, V](g, a, b)
}

// TotalLength implements Spline.
func (g *GenericBSpline[S, V]) TotalLength() S {
	return g.ArcLength(0, g.MaxT())
}

// GetT implements Spline.
func (g *GenericBSpline[S, V]) GetT(index int) S { return g.knots.At(index) }

// MaxT implements Spline.
func (g *GenericBSpline[S, V]) MaxT() S { return g.knots.MaxT() }

// SegmentCount implements Spline.
func (g *GenericBSpline[S, V]) SegmentCount() int { return g.knots.SegmentCount() }

// SegmentForT implements Spline.
func (g *GenericBSpline[S, V]) SegmentForT(t S) int {
	span, _ := g.locate(t)
	return span
}

// SegmentT implements Spline.
func (g *GenericBSpline[S, V]) SegmentT(i int) (S, S) {
	return g.knots.At(i), g.knots.At(i + 1)
}

// IsLooping implements Spline.
func (g *GenericBSpline[S, V]) IsLooping() bool { return g.looping }

// Degree returns the spline's polynomial degree.
func (g *GenericBSpline[S, V]) Degree() int { return g.degree }
