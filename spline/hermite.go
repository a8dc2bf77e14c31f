package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/vecmath"
)

// CubicHermite interpolates every control point with an independently
// specified tangent at each one. Tangents can be derived from the
// points themselves via the alpha-aware Catmull-Rom formula, or supplied
// directly by the caller.
type CubicHermite[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	topology[S]
	points   []V
	tangents []V
}

// NewCubicHermite builds an open cubic Hermite spline, deriving tangents
// from points via the Catmull-Rom formula at the given alpha. points[0] and
// points[len(points)-1] are phantom, shaping the end tangents only.
func NewCubicHermite[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S) (*CubicHermite[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 1, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	active, tangents := derivedTangentsOpen[S, V](points, k)
	return &CubicHermite[S, V]{
		topology: topology[S]{knots: k, looping: false},
		points:   active,
		tangents: tangents,
	}, nil
}

// NewCubicHermiteLoop builds a looping cubic Hermite spline, deriving
// tangents from points via the Catmull-Rom formula at the given alpha.
func NewCubicHermiteLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S) (*CubicHermite[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 1, true, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	tangents := derivedTangentsLoop[S, V](points, k)
	return &CubicHermite[S, V]{
		topology: topology[S]{knots: k, looping: true},
		points:   clonePoints(points),
		tangents: tangents,
	}, nil
}

// NewCubicHermiteWithTangents builds an open cubic Hermite spline from
// explicit per-point tangents; every point (including the first and last)
// is interpolated.
func NewCubicHermiteWithTangents[S vecmath.Scalar, V vecmath.Vec[S, V]](points, tangents []V) (*CubicHermite[S, V], error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if len(points) != len(tangents) {
		return nil, ErrLengthMismatch
	}
	k, err := knot.Build[S, V](points, 0, 0, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &CubicHermite[S, V]{
		topology: topology[S]{knots: k, looping: false},
		points:   clonePoints(points),
		tangents: clonePoints(tangents),
	}, nil
}

// NewCubicHermiteLoopWithTangents builds a looping cubic Hermite spline from
// explicit per-point tangents.
func NewCubicHermiteLoopWithTangents[S vecmath.Scalar, V vecmath.Vec[S, V]](points, tangents []V) (*CubicHermite[S, V], error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if len(points) != len(tangents) {
		return nil, ErrLengthMismatch
	}
	k, err := knot.Build[S, V](points, 0, 0, true, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &CubicHermite[S, V]{
		topology: topology[S]{knots: k, looping: true},
		points:   clonePoints(points),
		tangents: clonePoints(tangents),
	}, nil
}

// derivedTangentsOpen returns the trimmed active points (padding stripped)
// alongside one Catmull-Rom tangent per active point. padded must include
// one phantom point on each side, as knot.PaddingInner requires.
func derivedTangentsOpen[S vecmath.Scalar, V vecmath.Vec[S, V]](padded []V, k *knot.Knots[S]) ([]V, []V) {
	first, last := k.FirstActive(), k.LastActive()
	n := last - first + 1
	active := make([]V, n)
	tangents := make([]V, n)
	for li := 0; li < n; li++ {
		i := first + li
		active[li] = padded[i]
		tangents[li] = crTangent[S](padded[i-1], padded[i], padded[i+1], k.At(i-1), k.At(i), k.At(i+1))
	}
	return active, tangents
}

// derivedTangentsLoop returns one Catmull-Rom tangent per given point,
// wrapping neighbor point lookups modulo len(points) while keeping knot
// indices unwrapped (padding knots already extend past the active range).
func derivedTangentsLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, k *knot.Knots[S]) []V {
	n := len(points)
	wrap := func(i int) int { return ((i % n) + n) % n }
	tangents := make([]V, n)
	for i := 0; i < n; i++ {
		tangents[i] = crTangent[S](points[wrap(i-1)], points[i], points[wrap(i+1)], k.At(i-1), k.At(i), k.At(i+1))
	}
	return tangents
}

func (h *CubicHermite[S, V]) window(active int) (p0, p1, m0, m1 V) {
	n := len(h.points)
	if h.looping {
		idx := func(i int) int { return ((i % n) + n) % n }
		return h.points[idx(active)], h.points[idx(active+1)], h.tangents[idx(active)], h.tangents[idx(active+1)]
	}
	li := active - h.knots.FirstActive()
	return h.points[li], h.points[li+1], h.tangents[li], h.tangents[li+1]
}

// hermiteFrame evaluates the standard cubic Hermite basis and its
// derivatives: position uses p0, p1 and the tangents scaled by the
// segment's parameter span; derivatives divide back out by delta, delta^2,
// delta^3 to convert from local u to global t.
func hermiteFrame[S vecmath.Scalar, V vecmath.Vec[S, V]](p0, p1, m0, m1 V, u, delta S) (pos, tan, curv, wig V) {
	u2 := u * u
	u3 := u2 * u

	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	dh00 := 6*u2 - 6*u
	dh10 := 3*u2 - 4*u + 1
	dh01 := -6*u2 + 6*u
	dh11 := 3*u2 - 2*u

	ddh00 := 12*u - 6
	ddh10 := 6*u - 4
	ddh01 := -12*u + 6
	ddh11 := 6*u - 2

	dddh00, dddh10, dddh01, dddh11 := S(12), S(6), S(-12), S(6)

	scaledM0 := m0.MultiplyScalar(delta)
	scaledM1 := m1.MultiplyScalar(delta)

	pos = p0.MultiplyScalar(h00).Add(scaledM0.MultiplyScalar(h10)).Add(scaledM1.MultiplyScalar(h11)).Add(p1.MultiplyScalar(h01))
	tanU := p0.MultiplyScalar(dh00).Add(scaledM0.MultiplyScalar(dh10)).Add(scaledM1.MultiplyScalar(dh11)).Add(p1.MultiplyScalar(dh01))
	curvU := p0.MultiplyScalar(ddh00).Add(scaledM0.MultiplyScalar(ddh10)).Add(scaledM1.MultiplyScalar(ddh11)).Add(p1.MultiplyScalar(ddh01))
	wigU := p0.MultiplyScalar(dddh00).Add(scaledM0.MultiplyScalar(dddh10)).Add(scaledM1.MultiplyScalar(dddh11)).Add(p1.MultiplyScalar(dddh01))

	tan = tanU.DivideScalar(delta)
	curv = curvU.DivideScalar(delta * delta)
	wig = wigU.DivideScalar(delta * delta * delta)
	return
}

// GetPosition implements Spline.
func (h *CubicHermite[S, V]) GetPosition(t S) V {
	_, active, _, _, u, delta := h.locate(t)
	p0, p1, m0, m1 := h.window(active)
	pos, _, _, _ := hermiteFrame[S](p0, p1, m0, m1, u, delta)
	return pos
}

// GetTangent implements Spline.
func (h *CubicHermite[S, V]) GetTangent(t S) TangentFrame[S, V] {
	_, active, _, _, u, delta := h.locate(t)
	p0, p1, m0, m1 := h.window(active)
	pos, tan, _, _ := hermiteFrame[S](p0, p1, m0, m1, u, delta)
	return TangentFrame[S, V]{Position: pos, Tangent: tan}
}

// GetCurvature implements Spline.
func (h *CubicHermite[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	_, active, _, _, u, delta := h.locate(t)
	p0, p1, m0, m1 := h.window(active)
	pos, tan, curv, _ := hermiteFrame[S](p0, p1, m0, m1, u, delta)
	return CurvatureFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv}
}

// GetWiggle implements Spline.
func (h *CubicHermite[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	_, active, _, _, u, delta := h.locate(t)
	p0, p1, m0, m1 := h.window(active)
	pos, tan, curv, wig := hermiteFrame[S](p0, p1, m0, m1, u, delta)
	return WiggleFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv, Wiggle: wig}
}

// SegmentArcLength implements Spline.
func (h *CubicHermite[S, V]) SegmentArcLength(i int, a, b S) S {
	return integrateTangentMagnitude[S](func(t S) V { return h.GetTangent(t).Tangent }, a, b)
}

// ArcLength implements Spline.
func (h *CubicHermite[S, V]) ArcLength(a, b S) S {
	return genericArcLength[S, V](h, a, b)
}

// CyclicArcLength implements LoopingSpline.
func (h *CubicHermite[S, V]) CyclicArcLength(a, b S) S {
	return genericCyclicArcLength[S, V](h, a, b)
}

// TotalLength implements Spline.
func (h *CubicHermite[S, V]) TotalLength() S {
	return h.ArcLength(0, h.MaxT())
}

// GetT implements Spline.
func (h *CubicHermite[S, V]) GetT(index int) S { return h.knots.At(index) }

// MaxT implements Spline.
func (h *CubicHermite[S, V]) MaxT() S { return h.knots.MaxT() }

// SegmentCount implements Spline.
func (h *CubicHermite[S, V]) SegmentCount() int { return h.knots.SegmentCount() }

// SegmentForT implements Spline.
func (h *CubicHermite[S, V]) SegmentForT(t S) int {
	segIdx, _, _, _, _, _ := h.locate(t)
	return segIdx
}

// SegmentT implements Spline.
func (h *CubicHermite[S, V]) SegmentT(i int) (S, S) {
	return h.topology.segmentT(i)
}

// IsLooping implements Spline.
func (h *CubicHermite[S, V]) IsLooping() bool { return h.looping }
