package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splinekit/splinekit/vecmath"
)

func triangleNumber(i int) float64 {
	return float64(i*(i+1)) / 2
}

func straightLinePoints(n int) []vecmath.Vector2[float64] {
	pts := make([]vecmath.Vector2[float64], n)
	for i := range pts {
		tn := triangleNumber(i)
		pts[i] = vecmath.NewVector2(tn, tn)
	}
	return pts
}

func TestUniformCR_StraightLine_MaxTAndArcLength(t *testing.T) {
	pts := straightLinePoints(10)
	sp, err := NewUniformCR[float64](pts)
	assert.NoError(t, err)

	assert.InDelta(t, 7.0, sp.MaxT(), 1e-9)

	want := pts[1].DistanceTo(pts[8])
	got := sp.ArcLength(0, sp.MaxT())
	assert.InDelta(t, want, got, 1e-4)
}

func TestUniformCR_EndpointIncidence(t *testing.T) {
	pts := straightLinePoints(10)
	sp, err := NewUniformCR[float64](pts)
	assert.NoError(t, err)

	assert.True(t, sp.GetPosition(0).AlmostEquals(pts[1], 1e-9))
	assert.True(t, sp.GetPosition(sp.MaxT()).AlmostEquals(pts[8], 1e-9))
}

func TestUniformCR_Determinism(t *testing.T) {
	pts := straightLinePoints(10)
	sp, _ := NewUniformCR[float64](pts)
	a := sp.GetPosition(3.3)
	b := sp.GetPosition(3.3)
	assert.Equal(t, a, b)
}

func TestUniformCR_TooFewPoints(t *testing.T) {
	pts := straightLinePoints(3)
	_, err := NewUniformCR[float64](pts)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func circlePoints(n int, radius float64) []vecmath.Vector2[float64] {
	pts := make([]vecmath.Vector2[float64], n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vecmath.NewVector2(radius*math.Cos(theta), radius*math.Sin(theta))
	}
	return pts
}

func TestUniformCR_Loop_ClosesAndWraps(t *testing.T) {
	pts := circlePoints(8, 1.0)
	sp, err := NewUniformCRLoop[float64](pts)
	assert.NoError(t, err)

	assert.InDelta(t, 8.0, sp.MaxT(), 1e-9)
	assert.True(t, sp.GetPosition(0).AlmostEquals(sp.GetPosition(sp.MaxT()), 1e-6))

	for _, tv := range []float64{0.3, 2.7, 5.5} {
		a := sp.GetPosition(tv)
		b := sp.GetPosition(tv + sp.MaxT())
		assert.True(t, a.AlmostEquals(b, 1e-6), "t=%v", tv)
	}
}

func TestUniformCR_DerivativeIntegration(t *testing.T) {
	pts := circlePoints(8, 2.0)
	sp, err := NewUniformCRLoop[float64](pts)
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

// integrateVectorOverSegment is a 64-interval composite midpoint rule
// used purely by tests to check derivative consistency,
// independent of the production 13-point rule.
func integrateVectorOverSegment(f func(float64) vecmath.Vector2[float64], a, b float64) vecmath.Vector2[float64] {
	const n = 64
	h := (b - a) / n
	sum := vecmath.NewVector2(0.0, 0.0)
	for i := 0; i < n; i++ {
		mid := a + h*(float64(i)+0.5)
		sum = sum.Add(f(mid).MultiplyScalar(h))
	}
	return sum
}
