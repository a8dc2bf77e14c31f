package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/tridiag"
	"github.com/splinekit/splinekit/vecmath"
)

// EndCondition selects the boundary condition used to close a non-looping
// natural cubic spline's curvature system.
type EndCondition int

const (
	// Natural pins the curvature to zero at both endpoints.
	Natural EndCondition = iota
	// NotAKnot instead forces the third derivative to be continuous across
	// the second and second-to-last knots, letting the endpoints curve more
	// like the interior. Only meaningful for open (non-looping) splines.
	NotAKnot
)

// NaturalSpline interpolates every control point with a globally-solved
// curvature (second derivative), giving C2 continuity everywhere.
// Solving for the curvatures requires one tridiagonal system across every
// control point (symmetric except for the not-a-knot end rows), which is why, unlike the other families, it
// cannot be evaluated from purely local, per-segment data.
type NaturalSpline[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	topology[S]
	points     []V
	curvatures []V
}

// NewNaturalSpline builds an open natural cubic spline through points,
// parameterized with the given alpha, under the given end condition.
func NewNaturalSpline[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S, end EndCondition) (*NaturalSpline[S, V], error) {
	minPoints := 3
	if end == NotAKnot {
		minPoints = 5
	}
	if len(points) < minPoints {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 0, false, knot.PaddingOuter)
	if err != nil {
		return nil, err
	}
	n := len(points)
	h := make([]S, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = k.At(i+1) - k.At(i)
	}

	curvatures, err := solveOpenCurvatures[S](points, h, end)
	if err != nil {
		return nil, err
	}
	return &NaturalSpline[S, V]{
		topology:   topology[S]{knots: k, looping: false},
		points:     clonePoints(points),
		curvatures: curvatures,
	}, nil
}

// NewNaturalSplineLoop builds a looping natural cubic spline through points.
func NewNaturalSplineLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, alpha S) (*NaturalSpline[S, V], error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S, V](points, alpha, 1, true, knot.PaddingOuter)
	if err != nil {
		return nil, err
	}
	n := len(points)
	h := make([]S, n)
	for i := 0; i < n; i++ {
		h[i] = k.At(i+1) - k.At(i)
	}

	main := make([]S, n)
	secondary := make([]S, n)
	rhs := make([]V, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		main[i] = 2 * (h[prev] + h[i])
		secondary[i] = h[i]
		rhs[i] = points[next].Sub(points[i]).DivideScalar(h[i]).
			Sub(points[i].Sub(points[prev]).DivideScalar(h[prev])).
			MultiplyScalar(6)
	}
	curvatures, err := tridiag.SolveCyclicSymmetricV[S, V](main, secondary, rhs)
	if err != nil {
		return nil, err
	}

	return &NaturalSpline[S, V]{
		topology:   topology[S]{knots: k, looping: true},
		points:     clonePoints(points),
		curvatures: curvatures,
	}, nil
}

// solveOpenCurvatures solves the open-spline curvature system and returns
// one curvature per point (length n), folding in the chosen end condition.
func solveOpenCurvatures[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V, h []S, end EndCondition) ([]V, error) {
	n := len(points)
	m := n - 2 // number of interior unknowns, M_1..M_{n-2}

	main := make([]S, m)
	secondary := make([]S, m)
	rhs := make([]V, m)
	for j := 0; j < m; j++ {
		i := j + 1
		main[j] = 2 * (h[i-1] + h[i])
		if j < m-1 {
			secondary[j] = h[i]
		}
		rhs[j] = points[i+1].Sub(points[i]).DivideScalar(h[i]).
			Sub(points[i].Sub(points[i-1]).DivideScalar(h[i-1])).
			MultiplyScalar(6)
	}

	sub := make([]S, m)
	super := make([]S, m)
	for j := 0; j < m-1; j++ {
		super[j] = secondary[j]
		sub[j+1] = secondary[j]
	}
	if end == NotAKnot {
		h0, h1 := h[0], h[1]
		main[0] = 3*h0 + 2*h1 + h0*h0/h1
		super[0] = h1 - h0*h0/h1

		hLast, hPrevLast := h[n-2], h[n-3]
		main[m-1] = 3*hLast + 2*hPrevLast + hLast*hLast/hPrevLast
		sub[m-1] = hPrevLast - hLast*hLast/hPrevLast
	}

	interior, err := tridiag.SolveV[S, V](sub, main, super, rhs)
	if err != nil {
		return nil, err
	}

	curvatures := make([]V, n)
	for j, mv := range interior {
		curvatures[j+1] = mv
	}
	if end == NotAKnot {
		h0, h1 := h[0], h[1]
		curvatures[0] = curvatures[1].MultiplyScalar(1 + h0/h1).Sub(curvatures[2].MultiplyScalar(h0 / h1))
		hLast, hPrevLast := h[n-2], h[n-3]
		curvatures[n-1] = curvatures[n-2].MultiplyScalar(1 + hLast/hPrevLast).Sub(curvatures[n-3].MultiplyScalar(hLast / hPrevLast))
	}
	return curvatures, nil
}

func (ns *NaturalSpline[S, V]) window(active int) (p0, p1, m0, m1 V) {
	n := len(ns.points)
	if ns.looping {
		idx := func(i int) int { return ((i % n) + n) % n }
		return ns.points[idx(active)], ns.points[idx(active+1)], ns.curvatures[idx(active)], ns.curvatures[idx(active+1)]
	}
	li := active - ns.knots.FirstActive()
	return ns.points[li], ns.points[li+1], ns.curvatures[li], ns.curvatures[li+1]
}

// naturalFrame evaluates the natural cubic spline's closed-form segment
// polynomial and its derivatives, given the two endpoints and their
// solved curvatures.
func naturalFrame[S vecmath.Scalar, V vecmath.Vec[S, V]](p0, p1, m0, m1 V, u, h S) (pos, tan, curv, wig V) {
	a := 1 - u
	b := u
	h2 := h * h
	sixth := S(1) / 6

	cubicTerm := m0.MultiplyScalar(a*a*a - a).Add(m1.MultiplyScalar(b*b*b - b)).MultiplyScalar(h2 * sixth)
	pos = p0.MultiplyScalar(a).Add(p1.MultiplyScalar(b)).Add(cubicTerm)

	tan = p1.Sub(p0).DivideScalar(h).
		Sub(m0.MultiplyScalar(h * sixth * (3*a*a - 1))).
		Add(m1.MultiplyScalar(h * sixth * (3*b*b - 1)))

	curv = m0.MultiplyScalar(a).Add(m1.MultiplyScalar(b))

	wig = m1.Sub(m0).DivideScalar(h)
	return
}

// GetPosition implements Spline.
func (ns *NaturalSpline[S, V]) GetPosition(t S) V {
	_, active, _, _, u, delta := ns.locate(t)
	p0, p1, m0, m1 := ns.window(active)
	pos, _, _, _ := naturalFrame[S](p0, p1, m0, m1, u, delta)
	return pos
}

// GetTangent implements Spline.
func (ns *NaturalSpline[S, V]) GetTangent(t S) TangentFrame[S, V] {
	_, active, _, _, u, delta := ns.locate(t)
	p0, p1, m0, m1 := ns.window(active)
	pos, tan, _, _ := naturalFrame[S](p0, p1, m0, m1, u, delta)
	return TangentFrame[S, V]{Position: pos, Tangent: tan}
}

// GetCurvature implements Spline.
func (ns *NaturalSpline[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	_, active, _, _, u, delta := ns.locate(t)
	p0, p1, m0, m1 := ns.window(active)
	pos, tan, curv, _ := naturalFrame[S](p0, p1, m0, m1, u, delta)
	return CurvatureFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv}
}

// GetWiggle implements Spline.
func (ns *NaturalSpline[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	_, active, _, _, u, delta := ns.locate(t)
	p0, p1, m0, m1 := ns.window(active)
	pos, tan, curv, wig := naturalFrame[S](p0, p1, m0, m1, u, delta)
	return WiggleFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv, Wiggle: wig}
}

// SegmentArcLength implements Spline.
func (ns *NaturalSpline[S, V]) SegmentArcLength(i int, a, b S) S {
	return integrateTangentMagnitude[S](func(t S) V { return ns.GetTangent(t).Tangent }, a, b)
}

// ArcLength implements Spline.
func (ns *NaturalSpline[S, V]) ArcLength(a, b S) S {
	return genericArcLength[S, V](ns, a, b)
}

// CyclicArcLength implements LoopingSpline.
func (ns *NaturalSpline[S, V]) CyclicArcLength(a, b S) S {
	return genericCyclicArcLength[S, V](ns, a, b)
}

// TotalLength implements Spline.
func (ns *NaturalSpline[S, V]) TotalLength() S {
	return ns.ArcLength(0, ns.MaxT())
}

// GetT implements Spline.
func (ns *NaturalSpline[S, V]) GetT(index int) S { return ns.knots.At(index) }

// MaxT implements Spline.
func (ns *NaturalSpline[S, V]) MaxT() S { return ns.knots.MaxT() }

// SegmentCount implements Spline.
func (ns *NaturalSpline[S, V]) SegmentCount() int { return ns.knots.SegmentCount() }

// SegmentForT implements Spline.
func (ns *NaturalSpline[S, V]) SegmentForT(t S) int {
	segIdx, _, _, _, _, _ := ns.locate(t)
	return segIdx
}

// SegmentT implements Spline.
func (ns *NaturalSpline[S, V]) SegmentT(i int) (S, S) {
	return ns.topology.segmentT(i)
}

// IsLooping implements Spline.
func (ns *NaturalSpline[S, V]) IsLooping() bool { return ns.looping }
