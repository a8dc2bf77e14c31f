package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformCubicBSpline_StraightLine_StaysOnLine(t *testing.T) {
	pts := straightLinePoints(8)
	sp, err := NewUniformCubicBSpline[float64](pts)
	assert.NoError(t, err)

	for _, tv := range []float64{0, 1.25, 2.5, 3.75, sp.MaxT()} {
		p := sp.GetPosition(tv)
		assert.InDelta(t, p.X, p.Y, 1e-9, "control polygon is the diagonal, curve must stay on it")
	}
}

func TestUniformCubicBSpline_TooFewPoints(t *testing.T) {
	pts := straightLinePoints(3)
	_, err := NewUniformCubicBSpline[float64](pts)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestUniformCubicBSpline_Determinism(t *testing.T) {
	pts := straightLinePoints(8)
	sp, _ := NewUniformCubicBSpline[float64](pts)
	a := sp.GetPosition(2.2)
	b := sp.GetPosition(2.2)
	assert.Equal(t, a, b)
}

func TestUniformCubicBSplineLoop_ClosesAndWraps(t *testing.T) {
	pts := circlePoints(10, 1.0)
	sp, err := NewUniformCubicBSplineLoop[float64](pts)
	assert.NoError(t, err)

	assert.InDelta(t, 10.0, sp.MaxT(), 1e-9)
	assert.True(t, sp.GetPosition(0).AlmostEquals(sp.GetPosition(sp.MaxT()), 1e-6))

	for _, tv := range []float64{0.4, 3.1, 6.9} {
		a := sp.GetPosition(tv)
		b := sp.GetPosition(tv + sp.MaxT())
		assert.True(t, a.AlmostEquals(b, 1e-6), "t=%v", tv)
	}
}
