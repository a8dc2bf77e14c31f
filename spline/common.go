package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/quadrature"
	"github.com/splinekit/splinekit/segment"
	"github.com/splinekit/splinekit/vecmath"
)

// topology bundles a knot vector with its looping flag and provides the
// shared segment-lookup every family uses to turn a global t into a
// (segment index, active control-point index, local u) triple.
type topology[S vecmath.Scalar] struct {
	knots   *knot.Knots[S]
	looping bool
}

// locate wraps (looping) or clamps (open) t into the spline's domain, finds
// its segment, and returns everything the polynomial evaluators need.
func (tp topology[S]) locate(t S) (segIdx, active int, t0, t1, u, delta S) {
	if tp.looping {
		t = wrapT(t, tp.knots.MaxT())
	} else {
		t = clampOpenT(t, tp.knots.At(tp.knots.FirstActive()), tp.knots.At(tp.knots.LastActive()))
	}
	segIdx = segment.Locate(tp.knots.Active(), t)
	active = tp.knots.FirstActive() + segIdx
	t0, t1 = tp.knots.At(active), tp.knots.At(active+1)
	delta = t1 - t0
	if delta == 0 {
		delta = S(1e-8)
	}
	u = (t - t0) / delta
	return
}

func (tp topology[S]) segmentT(i int) (S, S) {
	active := tp.knots.FirstActive() + i
	return tp.knots.At(active), tp.knots.At(active + 1)
}

// wrapT maps t into [0, maxT) the way a looping spline's queries do.
func wrapT[S vecmath.Scalar](t, maxT S) S {
	if maxT == 0 {
		return 0
	}
	m := vecmath.Mod(t, maxT)
	if m < 0 {
		m += maxT
	}
	return m
}

// integrateTangentMagnitude integrates ||tangent(t)|| over [a, b] using the
// fixed 13-point Gauss-Legendre rule. tangent must already be the
// family's closed-form derivative, not a finite-difference approximation.
func integrateTangentMagnitude[S vecmath.Scalar, V vecmath.Vec[S, V]](tangent func(S) V, a, b S) S {
	f := func(t S) S {
		return tangent(t).Length()
	}
	return quadrature.Integrate13(f, a, b)
}

// clampOpenT clamps t into the active knot range of an open spline.
func clampOpenT[S vecmath.Scalar](t, first, last S) S {
	return vecmath.Clamp(t, first, last)
}

// forwardArcLength sums per-segment arc length from a to b, assuming
// 0 <= a <= b <= sp.MaxT() already.
func forwardArcLength[S vecmath.Scalar, V vecmath.Vec[S, V]](sp Spline[S, V], a, b S) S {
	if a == b {
		return 0
	}
	segA := sp.SegmentForT(a)
	segB := sp.SegmentForT(b)
	if segA == segB {
		return sp.SegmentArcLength(segA, a, b)
	}
	_, endA := sp.SegmentT(segA)
	total := sp.SegmentArcLength(segA, a, endA)
	for i := segA + 1; i < segB; i++ {
		s0, s1 := sp.SegmentT(i)
		total += sp.SegmentArcLength(i, s0, s1)
	}
	startB, _ := sp.SegmentT(segB)
	total += sp.SegmentArcLength(segB, startB, b)
	return total
}

// genericArcLength implements the open-spline ArcLength contract (swap if
// a > b, clamp into the spline's domain) shared by every family.
func genericArcLength[S vecmath.Scalar, V vecmath.Vec[S, V]](sp Spline[S, V], a, b S) S {
	if a > b {
		a, b = b, a
	}
	maxT := sp.MaxT()
	a = vecmath.Clamp(a, 0, maxT)
	b = vecmath.Clamp(b, 0, maxT)
	return forwardArcLength[S, V](sp, a, b)
}

// genericCyclicArcLength implements the looping-spline CyclicArcLength
// contract: walk forward from a to b, wrapping around the loop once if b
// lands "before" a after both are wrapped into [0, MaxT()).
func genericCyclicArcLength[S vecmath.Scalar, V vecmath.Vec[S, V]](sp Spline[S, V], a, b S) S {
	maxT := sp.MaxT()
	wa := wrapT(a, maxT)
	wb := wrapT(b, maxT)
	if wb >= wa {
		return forwardArcLength[S, V](sp, wa, wb)
	}
	return forwardArcLength[S, V](sp, wa, maxT) + forwardArcLength[S, V](sp, 0, wb)
}
