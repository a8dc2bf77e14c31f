package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splinekit/splinekit/vecmath"
)

func TestCubicHermite_StraightLine_EndpointsAndLength(t *testing.T) {
	pts := straightLinePoints(10)
	sp, err := NewCubicHermite[float64](pts, 0)
	assert.NoError(t, err)

	assert.True(t, sp.GetPosition(0).AlmostEquals(pts[1], 1e-9))
	assert.True(t, sp.GetPosition(sp.MaxT()).AlmostEquals(pts[8], 1e-9))

	want := pts[1].DistanceTo(pts[8])
	got := sp.ArcLength(0, sp.MaxT())
	assert.InDelta(t, want, got, 1e-4)
}

func TestCubicHermite_TooFewPoints(t *testing.T) {
	pts := straightLinePoints(3)
	_, err := NewCubicHermite[float64](pts, 0)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestCubicHermite_Determinism(t *testing.T) {
	pts := straightLinePoints(10)
	sp, _ := NewCubicHermite[float64](pts, 0)
	a := sp.GetPosition(3.3)
	b := sp.GetPosition(3.3)
	assert.Equal(t, a, b)
}

func TestCubicHermite_Loop_ClosesAndWraps(t *testing.T) {
	pts := circlePoints(8, 1.0)
	sp, err := NewCubicHermiteLoop[float64](pts, 0)
	assert.NoError(t, err)

	assert.InDelta(t, 8.0, sp.MaxT(), 1e-9)
	assert.True(t, sp.GetPosition(0).AlmostEquals(sp.GetPosition(sp.MaxT()), 1e-6))

	for _, tv := range []float64{0.3, 2.7, 5.5} {
		a := sp.GetPosition(tv)
		b := sp.GetPosition(tv + sp.MaxT())
		assert.True(t, a.AlmostEquals(b, 1e-6), "t=%v", tv)
	}
}

func TestCubicHermite_WithTangents_InterpolatesEveryPoint(t *testing.T) {
	pts := []vecmath.Vector2[float64]{
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(1.0, 2.0),
		vecmath.NewVector2(2.0, 0.0),
	}
	tangents := []vecmath.Vector2[float64]{
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(1.0, 0.0),
	}
	sp, err := NewCubicHermiteWithTangents[float64](pts, tangents)
	assert.NoError(t, err)
	assert.Equal(t, 2, sp.SegmentCount())

	assert.True(t, sp.GetPosition(0).AlmostEquals(pts[0], 1e-9))
	assert.True(t, sp.GetPosition(1).AlmostEquals(pts[1], 1e-9))
	assert.True(t, sp.GetPosition(2).AlmostEquals(pts[2], 1e-9))
}

func TestCubicHermite_WithTangents_LengthMismatch(t *testing.T) {
	pts := []vecmath.Vector2[float64]{vecmath.NewVector2(0.0, 0.0), vecmath.NewVector2(1.0, 1.0)}
	tangents := []vecmath.Vector2[float64]{vecmath.NewVector2(1.0, 0.0)}
	_, err := NewCubicHermiteWithTangents[float64](pts, tangents)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCubicHermite_DerivativeIntegration(t *testing.T) {
	pts := circlePoints(8, 2.0)
	sp, err := NewCubicHermiteLoop[float64](pts, 0.5)
	assert.NoError(t, err)

	for seg := 0; seg < sp.SegmentCount(); seg++ {
		t0, t1 := sp.SegmentT(seg)
		p0 := sp.GetPosition(t0)
		p1 := sp.GetPosition(t1)
		integral := integrateVectorOverSegment(func(tt float64) vecmath.Vector2[float64] {
			return sp.GetTangent(tt).Tangent
		}, t0, t1)
		delta := p1.Sub(p0)
		assert.InDelta(t, delta.X, integral.X, 1e-3)
		assert.InDelta(t, delta.Y, integral.Y, 1e-3)
	}
}
