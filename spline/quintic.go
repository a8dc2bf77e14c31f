package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/vecmath"
)

// QuinticHermite interpolates every control point with both a tangent and a
// curvature ("acceleration") at each one, giving C2 continuity.
// Tangents and curvatures can be derived from the points by iterating the
// Catmull-Rom formula (first on points to get tangents, then on tangents to
// get curvatures), or supplied directly.
type QuinticHermite[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	topology[S]
	points     []V
	tangents   []V
	curvatures []V
}

// NewQuinticHermiteCR builds an open quintic Hermite spline, deriving
// tangents and curvatures from points by iterating the Catmull-Rom formula.
// Two phantom points are required on each end: one to shape the boundary
// tangent, a second to shape the boundary curvature.
func NewQuinticHermiteCR[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S) (*QuinticHermite[S, V], error) {
	if len(points) < 6 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 2, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	first, last := k.FirstActive(), k.LastActive()

	tangentAt := func(i int) V {
		return crTangent[S](points[i-1], points[i], points[i+1], k.At(i-1), k.At(i), k.At(i+1))
	}
	tanLo, tanHi := first-1, last+1
	tangents := make([]V, tanHi-tanLo+1)
	for i := tanLo; i <= tanHi; i++ {
		tangents[i-tanLo] = tangentAt(i)
	}
	tangentAtIdx := func(i int) V { return tangents[i-tanLo] }

	n := last - first + 1
	active := make([]V, n)
	activeTangents := make([]V, n)
	curvatures := make([]V, n)
	for li := 0; li < n; li++ {
		i := first + li
		active[li] = points[i]
		activeTangents[li] = tangentAtIdx(i)
		curvatures[li] = crTangent[S](tangentAtIdx(i-1), tangentAtIdx(i), tangentAtIdx(i+1), k.At(i-1), k.At(i), k.At(i+1))
	}

	return &QuinticHermite[S, V]{
		topology:   topology[S]{knots: k, looping: false},
		points:     active,
		tangents:   activeTangents,
		curvatures: curvatures,
	}, nil
}

// NewQuinticHermiteCRLoop builds a looping quintic Hermite spline, deriving
// tangents and curvatures by iterating the Catmull-Rom formula around the
// loop; every knot index beyond the given points wraps via periodicity, so
// only the usual one-knot padding is required.
func NewQuinticHermiteCRLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S) (*QuinticHermite[S, V], error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 1, true, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	n := len(points)
	wrap := func(i int) int { return ((i % n) + n) % n }

	tangents := make([]V, n)
	for i := 0; i < n; i++ {
		tangents[i] = crTangent[S](points[wrap(i-1)], points[i], points[wrap(i+1)], k.At(i-1), k.At(i), k.At(i+1))
	}
	curvatures := make([]V, n)
	for i := 0; i < n; i++ {
		curvatures[i] = crTangent[S](tangents[wrap(i-1)], tangents[i], tangents[wrap(i+1)], k.At(i-1), k.At(i), k.At(i+1))
	}

	return &QuinticHermite[S, V]{
		topology:   topology[S]{knots: k, looping: true},
		points:     clonePoints(points),
		tangents:   tangents,
		curvatures: curvatures,
	}, nil
}

// NewQuinticHermiteWithTangentsAndCurvatures builds an open quintic Hermite
// spline from explicit per-point tangents and curvatures.
func NewQuinticHermiteWithTangentsAndCurvatures[S vecmath.Scalar, V vecmath.Vec[S, V]](points, tangents, curvatures []V) (*QuinticHermite[S, V], error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if len(points) != len(tangents) || len(points) != len(curvatures) {
		return nil, ErrLengthMismatch
	}
	k, err := knot.Build[S, V](points, 0, 0, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &QuinticHermite[S, V]{
		topology:   topology[S]{knots: k, looping: false},
		points:     clonePoints(points),
		tangents:   clonePoints(tangents),
		curvatures: clonePoints(curvatures),
	}, nil
}

// NewQuinticHermiteLoopWithTangentsAndCurvatures builds a looping quintic
// Hermite spline from explicit per-point tangents and curvatures.
func NewQuinticHermiteLoopWithTangentsAndCurvatures[S vecmath.Scalar, V vecmath.Vec[S, V]](points, tangents, curvatures []V) (*QuinticHermite[S, V], error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if len(points) != len(tangents) || len(points) != len(curvatures) {
		return nil, ErrLengthMismatch
	}
	k, err := knot.Build[S, V](points, 0, 0, true, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &QuinticHermite[S, V]{
		topology:   topology[S]{knots: k, looping: true},
		points:     clonePoints(points),
		tangents:   clonePoints(tangents),
		curvatures: clonePoints(curvatures),
	}, nil
}

func (q *QuinticHermite[S, V]) window(active int) (p0, p1, v0, v1, a0, a1 V) {
	n := len(q.points)
	if q.looping {
		idx := func(i int) int { return ((i % n) + n) % n }
		i0, i1 := idx(active), idx(active+1)
		return q.points[i0], q.points[i1], q.tangents[i0], q.tangents[i1], q.curvatures[i0], q.curvatures[i1]
	}
	li := active - q.knots.FirstActive()
	return q.points[li], q.points[li+1], q.tangents[li], q.tangents[li+1], q.curvatures[li], q.curvatures[li+1]
}

// quinticFrame evaluates the quintic Hermite basis and its derivatives
//: position uses the endpoints plus tangents scaled by delta and
// curvatures scaled by delta^2; derivatives divide back out to convert from
// local u to global t.
func quinticFrame[S vecmath.Scalar, V vecmath.Vec[S, V]](p0, p1, v0, v1, a0, a1 V, u, delta S) (pos, tan, curv, wig V) {
	u2 := u * u
	u3 := u2 * u
	u4 := u3 * u
	u5 := u4 * u

	h0 := 1 - 10*u3 + 15*u4 - 6*u5
	h1 := u - 6*u3 + 8*u4 - 3*u5
	h2 := S(0.5)*u2 - S(1.5)*u3 + S(1.5)*u4 - S(0.5)*u5
	h3 := S(0.5)*u3 - u4 + S(0.5)*u5
	h4 := -4*u3 + 7*u4 - 3*u5
	h5 := 10*u3 - 15*u4 + 6*u5

	dh0 := -30*u2 + 60*u3 - 30*u4
	dh1 := 1 - 18*u2 + 32*u3 - 15*u4
	dh2 := u - S(4.5)*u2 + 6*u3 - S(2.5)*u4
	dh3 := S(1.5)*u2 - 4*u3 + S(2.5)*u4
	dh4 := -12*u2 + 28*u3 - 15*u4
	dh5 := 30*u2 - 60*u3 + 30*u4

	ddh0 := -60*u + 180*u2 - 120*u3
	ddh1 := -36*u + 96*u2 - 60*u3
	ddh2 := 1 - 9*u + 18*u2 - 10*u3
	ddh3 := 3*u - 12*u2 + 10*u3
	ddh4 := -24*u + 84*u2 - 60*u3
	ddh5 := 60*u - 180*u2 + 120*u3

	dddh0 := -60 + 360*u - 360*u2
	dddh1 := -36 + 192*u - 180*u2
	dddh2 := -9 + 36*u - 30*u2
	dddh3 := 3 - 24*u + 30*u2
	dddh4 := -24 + 168*u - 180*u2
	dddh5 := 60 - 360*u + 360*u2

	scaledV0 := v0.MultiplyScalar(delta)
	scaledV1 := v1.MultiplyScalar(delta)
	scaledA0 := a0.MultiplyScalar(delta * delta)
	scaledA1 := a1.MultiplyScalar(delta * delta)

	sum := func(c0, c1, cv0, cv1, ca0, ca1 S) V {
		return p0.MultiplyScalar(c0).
			Add(p1.MultiplyScalar(c1)).
			Add(scaledV0.MultiplyScalar(cv0)).
			Add(scaledV1.MultiplyScalar(cv1)).
			Add(scaledA0.MultiplyScalar(ca0)).
			Add(scaledA1.MultiplyScalar(ca1))
	}

	pos = sum(h0, h5, h1, h4, h2, h3)
	tanU := sum(dh0, dh5, dh1, dh4, dh2, dh3)
	curvU := sum(ddh0, ddh5, ddh1, ddh4, ddh2, ddh3)
	wigU := sum(dddh0, dddh5, dddh1, dddh4, dddh2, dddh3)

	tan = tanU.DivideScalar(delta)
	curv = curvU.DivideScalar(delta * delta)
	wig = wigU.DivideScalar(delta * delta * delta)
	return
}

// GetPosition implements Spline.
func (q *QuinticHermite[S, V]) GetPosition(t S) V {
	_, active, _, _, u, delta := q.locate(t)
	p0, p1, v0, v1, a0, a1 := q.window(active)
	pos, _, _, _ := quinticFrame[S](p0, p1, v0, v1, a0, a1, u, delta)
	return pos
}

// GetTangent implements Spline.
func (q *QuinticHermite[S, V]) GetTangent(t S) TangentFrame[S, V] {
	_, active, _, _, u, delta := q.locate(t)
	p0, p1, v0, v1, a0, a1 := q.window(active)
	pos, tan, _, _ := quinticFrame[S](p0, p1, v0, v1, a0, a1, u, delta)
	return TangentFrame[S, V]{Position: pos, Tangent: tan}
}

// GetCurvature implements Spline.
func (q *QuinticHermite[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	_, active, _, _, u, delta := q.locate(t)
	p0, p1, v0, v1, a0, a1 := q.window(active)
	pos, tan, curv, _ := quinticFrame[S](p0, p1, v0, v1, a0, a1, u, delta)
	return CurvatureFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv}
}

// GetWiggle implements Spline.
func (q *QuinticHermite[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	_, active, _, _, u, delta := q.locate(t)
	p0, p1, v0, v1, a0, a1 := q.window(active)
	pos, tan, curv, wig := quinticFrame[S](p0, p1, v0, v1, a0, a1, u, delta)
	return WiggleFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv, Wiggle: wig}
}

// SegmentArcLength implements Spline.
func (q *QuinticHermite[S, V]) SegmentArcLength(i int, a, b S) S {
	return integrateTangentMagnitude[S](func(t S) V { return q.GetTangent(t).Tangent }, a, b)
}

// ArcLength implements Spline.
func (q *QuinticHermite[S, V]) ArcLength(a, b S) S {
	return genericArcLength[S, V](q, a, b)
}

// CyclicArcLength implements LoopingSpline.
func (q *QuinticHermite[S, V]) CyclicArcLength(a, b S) S {
	return genericCyclicArcLength[S, V](q, a, b)
}

// TotalLength implements Spline.
func (q *QuinticHermite[S, V]) TotalLength() S {
	return q.ArcLength(0, q.MaxT())
}

// GetT implements Spline.
func (q *QuinticHermite[S, V]) GetT(index int) S { return q.knots.At(index) }

// MaxT implements Spline.
func (q *QuinticHermite[S, V]) MaxT() S { return q.knots.MaxT() }

// SegmentCount implements Spline.
func (q *QuinticHermite[S, V]) SegmentCount() int { return q.knots.SegmentCount() }

// SegmentForT implements Spline.
func (q *QuinticHermite[S, V]) SegmentForT(t S) int {
	segIdx, _, _, _, _, _ := q.locate(t)
	return segIdx
}

// SegmentT implements Spline.
func (q *QuinticHermite[S, V]) SegmentT(i int) (S, S) {
	return q.topology.segmentT(i)
}

// IsLooping implements Spline.
func (q *QuinticHermite[S, V]) IsLooping() bool { return q.looping }
