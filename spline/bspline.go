package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/segment"
	"github.com/splinekit/splinekit/vecmath"
)

// UniformCubicBSpline is the classic fixed-degree-3, uniformly-knotted
// B-spline. Unlike the Catmull-Rom and Hermite families it does not
// interpolate its control points; it approximates them, which gives a
// curve with one more degree of continuity (C2 vs C1) at every knot.
type UniformCubicBSpline[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	points  []V
	knots   *knot.Knots[S]
	looping bool
}

// NewUniformCubicBSpline builds an open uniform cubic B-spline with
// len(points)-3 segments, each blending 4 consecutive points. The curve
// does not pass through points[0] or points[len(points)-1].
func NewUniformCubicBSpline[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V) (*UniformCubicBSpline[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, 0, 1, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &UniformCubicBSpline[S, V]{points: clonePoints(points), knots: k, looping: false}, nil
}

// NewUniformCubicBSplineLoop builds a looping uniform cubic B-spline.
func NewUniformCubicBSplineLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V) (*UniformCubicBSpline[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, 0, 0, true, knot.PaddingOuter)
	if err != nil {
		return nil, err
	}
	return &UniformCubicBSpline[S, V]{points: clonePoints(points), knots: k, looping: true}, nil
}

func (b *UniformCubicBSpline[S, V]) window(segIdx int) (v0, v1, v2, v3 V) {
	n := len(b.points)
	active := segIdx + b.knots.FirstActive()
	if b.looping {
		idx := func(i int) int { return ((i % n) + n) % n }
		return b.points[idx(active-1)], b.points[idx(active)], b.points[idx(active+1)], b.points[idx(active+2)]
	}
	return b.points[active-1], b.points[active], b.points[active+1], b.points[active+2]
}

func (b *UniformCubicBSpline[S, V]) locate(t S) (segIdx int, u, delta S) {
	var kt S
	if b.looping {
		kt = wrapT(t, b.knots.MaxT())
	} else {
		kt = clampOpenT(t, b.knots.At(b.knots.FirstActive()), b.knots.At(b.knots.LastActive()))
	}
	active := b.knots.Active()
	segIdx = segment.Locate(active, kt)
	first := b.knots.FirstActive()
	t0, t1 := b.knots.At(first+segIdx), b.knots.At(first+segIdx+1)
	delta = t1 - t0
	if delta == 0 {
		delta = S(1e-8)
	}
	u = (kt - t0) / delta
	return
}

// bsplineFrame evaluates the uniform cubic B-spline blending functions and
// their derivatives at local u, given the 4-point window.
func bsplineFrame[S vecmath.Scalar, V vecmath.Vec[S, V]](v0, v1, v2, v3 V, u, delta S) (pos, tan, curv, wig V) {
	u2 := u * u
	u3 := u2 * u
	six := S(6)

	b0 := (1 - 3*u + 3*u2 - u3) / six
	b1 := (4 - 6*u2 + 3*u3) / six
	b2 := (1 + 3*u + 3*u2 - 3*u3) / six
	b3 := u3 / six

	db0 := (-3 + 6*u - 3*u2) / six
	db1 := (-12*u + 9*u2) / six
	db2 := (3 + 6*u - 9*u2) / six
	db3 := (3 * u2) / six

	ddb0 := (6 - 6*u) / six
	ddb1 := (-12 + 18*u) / six
	ddb2 := (6 - 18*u) / six
	ddb3 := (6 * u) / six

	dddb0, dddb1, dddb2, dddb3 := S(-1), S(3), S(-3), S(1)

	pos = v0.MultiplyScalar(b0).Add(v1.MultiplyScalar(b1)).Add(v2.MultiplyScalar(b2)).Add(v3.MultiplyScalar(b3))
	tanU := v0.MultiplyScalar(db0).Add(v1.MultiplyScalar(db1)).Add(v2.MultiplyScalar(db2)).Add(v3.MultiplyScalar(db3))
	curvU := v0.MultiplyScalar(ddb0).Add(v1.MultiplyScalar(ddb1)).Add(v2.MultiplyScalar(ddb2)).Add(v3.MultiplyScalar(ddb3))
	wigU := v0.MultiplyScalar(dddb0).Add(v1.MultiplyScalar(dddb1)).Add(v2.MultiplyScalar(dddb2)).Add(v3.MultiplyScalar(dddb3))

	tan = tanU.DivideScalar(delta)
	curv = curvU.DivideScalar(delta * delta)
	wig = wigU.DivideScalar(delta * delta * delta)
	return
}

// GetPosition implements Spline.
func (b *UniformCubicBSpline[S, V]) GetPosition(t S) V {
	segIdx, u, delta := b.locate(t)
	v0, v1, v2, v3 := b.window(segIdx)
	pos, _, _, _ := bsplineFrame[S](v0, v1, v2, v3, u, delta)
	return pos
}

// GetTangent implements Spline.
func (b *UniformCubicBSpline[S, V]) GetTangent(t S) TangentFrame[S, V] {
	segIdx, u, delta := b.locate(t)
	v0, v1, v2, v3 := b.window(segIdx)
	pos, tan, _, _ := bsplineFrame[S](v0, v1, v2, v3, u, delta)
	return TangentFrame[S, V]{Position: pos, Tangent: tan}
}

// GetCurvature implements Spline.
func (b *UniformCubicBSpline[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	segIdx, u, delta := b.locate(t)
	v0, v1, v2, v3 := b.window(segIdx)
	pos, tan, curv, _ := bsplineFrame[S](v0, v1, v2, v3, u, delta)
	return CurvatureFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv}
}

// GetWiggle implements Spline.
func (b *UniformCubicBSpline[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	segIdx, u, delta := b.locate(t)
	v0, v1, v2, v3 := b.window(segIdx)
	pos, tan, curv, wig := bsplineFrame[S](v0, v1, v2, v3, u, delta)
	return WiggleFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv, Wiggle: wig}
}

// SegmentArcLength implements Spline.
func (b *UniformCubicBSpline[S, V]) SegmentArcLength(i int, a, c S) S {
	return integrateTangentMagnitude[S](func(t S) V { return b.GetTangent(t).Tangent }, a, c)
}

// ArcLength implements Spline.
func (b *UniformCubicBSpline[S, V]) ArcLength(a, c S) S {
	return genericArcLength[S, V](b, a, c)
}

// CyclicArcLength implements LoopingSpline.
func (b *UniformCubicBSpline[S, V]) CyclicArcLength(a, c S) S {
	return genericCyclicArcLength[S, V](b, a, c)
}

// TotalLength implements Spline.
func (b *UniformCubicBSpline[S, V]) TotalLength() S {
	return b.ArcLength(0, b.MaxT())
}

// GetT implements Spline.
func (b *UniformCubicBSpline[S, V]) GetT(index int) S { return b.knots.At(index) }

// MaxT implements Spline.
func (b *UniformCubicBSpline[S, V]) MaxT() S { return b.knots.MaxT() }

// SegmentCount implements Spline.
func (b *UniformCubicBSpline[S, V]) SegmentCount() int { return b.knots.SegmentCount() }

// SegmentForT implements Spline.
func (b *UniformCubicBSpline[S, V]) SegmentForT(t S) int {
	segIdx, _, _ := b.locate(t)
	return segIdx
}

// SegmentT implements Spline.
func (b *UniformCubicBSpline[S, V]) SegmentT(i int) (S, S) {
	active := i + b.knots.FirstActive()
	return b.knots.At(active), b.knots.At(active + 1)
}

// IsLooping implements Spline.
func (b *UniformCubicBSpline[S, V]) IsLooping() bool { return b.looping }
