package spline

import (
	"github.com/splinekit/splinekit/knot"
	"github.com/splinekit/splinekit/segment"
	"github.com/splinekit/splinekit/vecmath"
)

// UniformCR is the classic fixed alpha=0 Catmull-Rom spline, evaluated with
// the closed-form 4-point matrix basis (the cubic term-by-term basis) rather
// than via the general alpha-aware Hermite-tangent formula CubicHermite uses.
type UniformCR[S vecmath.Scalar, V vecmath.Vec[S, V]] struct {
	points  []V
	knots   *knot.Knots[S]
	looping bool
}

// NewUniformCR builds an open uniform Catmull-Rom spline. points[0] and
// points[len(points)-1] are phantom: they shape the tangents at the curve's
// endpoints but are not themselves interpolated.
func NewUniformCR[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V) (*UniformCR[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S](points, 0, 1, false, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &UniformCR[S, V]{points: clonePoints(points), knots: k, looping: false}, nil
}

// NewUniformCRLoop builds a looping uniform Catmull-Rom spline through all
// of points; the last point connects back to the first.
func NewUniformCRLoop[S vecmath.Scalar, V vecmath.Vec[S, V]](points []V) (*UniformCR[S, V], error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	k, err := knot.Build[S](points, 0, 1, true, knot.PaddingInner)
	if err != nil {
		return nil, err
	}
	return &UniformCR[S, V]{points: clonePoints(points), knots: k, looping: true}, nil
}

func (c *UniformCR[S, V]) window(activeIdx int) (v0, v1, v2, v3 V) {
	n := len(c.points)
	if c.looping {
		idx := func(i int) int { return ((i % n) + n) % n }
		return c.points[idx(activeIdx-1)], c.points[idx(activeIdx)], c.points[idx(activeIdx+1)], c.points[idx(activeIdx+2)]
	}
	return c.points[activeIdx-1], c.points[activeIdx], c.points[activeIdx+1], c.points[activeIdx+2]
}

func (c *UniformCR[S, V]) segmentIndexToActive(i int) int {
	return c.knots.FirstActive() + i
}

func (c *UniformCR[S, V]) locate(t S) (segIdx int, u S, delta S) {
	if c.looping {
		t = wrapT(t, c.knots.MaxT())
	} else {
		t = clampOpenT(t, c.knots.At(c.knots.FirstActive()), c.knots.At(c.knots.LastActive()))
	}
	segIdx = segment.Locate(c.knots.Active(), t)
	active := c.segmentIndexToActive(segIdx)
	t0, t1 := c.knots.At(active), c.knots.At(active+1)
	delta = t1 - t0
	if delta == 0 {
		delta = S(1e-8)
	}
	u = (t - t0) / delta
	return
}

// crFrame evaluates the Catmull-Rom cubic basis and its derivatives at local
// u, given the 4-point window and the governing segment's parameter span.
func crFrame[S vecmath.Scalar, V vecmath.Vec[S, V]](v0, v1, v2, v3 V, u, delta S) (pos, tan, curv, wig V) {
	a := v2.Sub(v0)
	b := v0.MultiplyScalar(2).Sub(v1.MultiplyScalar(5)).Add(v2.MultiplyScalar(4)).Sub(v3)
	cc := v0.MultiplyScalar(-1).Add(v1.MultiplyScalar(3)).Sub(v2.MultiplyScalar(3)).Add(v3)

	half := S(0.5)
	pos = v1.MultiplyScalar(2).Add(a.MultiplyScalar(u)).Add(b.MultiplyScalar(u * u)).Add(cc.MultiplyScalar(u * u * u)).MultiplyScalar(half)
	tanU := a.Add(b.MultiplyScalar(2 * u)).Add(cc.MultiplyScalar(3 * u * u)).MultiplyScalar(half)
	curvU := b.MultiplyScalar(2).Add(cc.MultiplyScalar(6 * u)).MultiplyScalar(half)
	wigU := cc.MultiplyScalar(3)

	tan = tanU.DivideScalar(delta)
	curv = curvU.DivideScalar(delta * delta)
	wig = wigU.DivideScalar(delta * delta * delta)
	return
}

// GetPosition implements Spline.
func (c *UniformCR[S, V]) GetPosition(t S) V {
	segIdx, u, delta := c.locate(t)
	active := c.segmentIndexToActive(segIdx)
	v0, v1, v2, v3 := c.window(active)
	pos, _, _, _ := crFrame[S](v0, v1, v2, v3, u, delta)
	return pos
}

// GetTangent implements Spline.
func (c *UniformCR[S, V]) GetTangent(t S) TangentFrame[S, V] {
	segIdx, u, delta := c.locate(t)
	active := c.segmentIndexToActive(segIdx)
	v0, v1, v2, v3 := c.window(active)
	pos, tan, _, _ := crFrame[S](v0, v1, v2, v3, u, delta)
	return TangentFrame[S, V]{Position: pos, Tangent: tan}
}

// GetCurvature implements Spline.
func (c *UniformCR[S, V]) GetCurvature(t S) CurvatureFrame[S, V] {
	segIdx, u, delta := c.locate(t)
	active := c.segmentIndexToActive(segIdx)
	v0, v1, v2, v3 := c.window(active)
	pos, tan, curv, _ := crFrame[S](v0, v1, v2, v3, u, delta)
	return CurvatureFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv}
}

// GetWiggle implements Spline.
func (c *UniformCR[S, V]) GetWiggle(t S) WiggleFrame[S, V] {
	segIdx, u, delta := c.locate(t)
	active := c.segmentIndexToActive(segIdx)
	v0, v1, v2, v3 := c.window(active)
	pos, tan, curv, wig := crFrame[S](v0, v1, v2, v3, u, delta)
	return WiggleFrame[S, V]{Position: pos, Tangent: tan, Curvature: curv, Wiggle: wig}
}

func (c *UniformCR[S, V]) tangentAt(t S) V {
	segIdx, u, delta := c.locate(t)
	active := c.segmentIndexToActive(segIdx)
	v0, v1, v2, v3 := c.window(active)
	_, tan, _, _ := crFrame[S](v0, v1, v2, v3, u, delta)
	return tan
}

// SegmentArcLength implements Spline.
func (c *UniformCR[S, V]) SegmentArcLength(i int, a, b S) S {
	return integrateTangentMagnitude[S](func(t S) V { return c.tangentAt(t) }, a, b)
}

// ArcLength implements Spline.
func (c *UniformCR[S, V]) ArcLength(a, b S) S {
	return genericArcLength[S, V](c, a, b)
}

// CyclicArcLength implements LoopingSpline.
func (c *UniformCR[S, V]) CyclicArcLength(a, b S) S {
	return genericCyclicArcLength[S, V](c, a, b)
}

// TotalLength implements Spline.
func (c *UniformCR[S, V]) TotalLength() S {
	return c.ArcLength(0, c.MaxT())
}

// GetT implements Spline.
func (c *UniformCR[S, V]) GetT(index int) S { return c.knots.At(index) }

// MaxT implements Spline.
func (c *UniformCR[S, V]) MaxT() S { return c.knots.MaxT() }

// SegmentCount implements Spline.
func (c *UniformCR[S, V]) SegmentCount() int { return c.knots.SegmentCount() }

// SegmentForT implements Spline.
func (c *UniformCR[S, V]) SegmentForT(t S) int {
	segIdx, _, _ := c.locate(t)
	return segIdx
}

// SegmentT implements Spline.
func (c *UniformCR[S, V]) SegmentT(i int) (S, S) {
	active := c.segmentIndexToActive(i)
	return c.knots.At(active), c.knots.At(active + 1)
}

// IsLooping implements Spline.
func (c *UniformCR[S, V]) IsLooping() bool { return c.looping }

func clonePoints[V any](points []V) []V {
	out := make([]V, len(points))
	copy(out, points)
	return out
}
