package arclen

import (
	"testing"

	"github.com/splinekit/splinekit/spline"
	"github.com/splinekit/splinekit/vecmath"
	"github.com/stretchr/testify/assert"
)

func straightLine(n int) []vecmath.Vector2[float64] {
	pts := make([]vecmath.Vector2[float64], n)
	for i := range pts {
		pts[i] = vecmath.NewVector2(float64(i), 0)
	}
	return pts
}

func TestSolveLength_StraightLine(t *testing.T) {
	pts := straightLine(6)
	sp, err := spline.NewNaturalSpline[float64](pts, 0, spline.Natural)
	assert.NoError(t, err)

	b, err := SolveLength[float64, vecmath.Vector2[float64]](sp, 0, 2.5)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, b, 1e-6)
}

func TestSolveLength_PastEndClampsToMaxT(t *testing.T) {
	pts := straightLine(6)
	sp, err := spline.NewNaturalSpline[float64](pts, 0, spline.Natural)
	assert.NoError(t, err)

	b, err := SolveLength[float64, vecmath.Vector2[float64]](sp, 0, 1000)
	assert.NoError(t, err)
	assert.InDelta(t, sp.MaxT(), b, 1e-9)
}

func TestSolveLength_NegativeLengthErrors(t *testing.T) {
	pts := straightLine(6)
	sp, err := spline.NewNaturalSpline[float64](pts, 0, spline.Natural)
	assert.NoError(t, err)

	_, err = SolveLength[float64, vecmath.Vector2[float64]](sp, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestPartitionN_EqualPieces(t *testing.T) {
	pts := straightLine(6)
	sp, err := spline.NewNaturalSpline[float64](pts, 0, spline.Natural)
	assert.NoError(t, err)

	ts, err := PartitionN[float64, vecmath.Vector2[float64]](sp, 5)
	assert.NoError(t, err)
	assert.Len(t, ts, 6)
	assert.InDelta(t, 0, ts[0], 1e-9)
	assert.InDelta(t, sp.MaxT(), ts[len(ts)-1], 1e-6)

	pieceLen := sp.TotalLength() / 5
	for i := 1; i < len(ts); i++ {
		got := sp.ArcLength(ts[i-1], ts[i])
		assert.InDelta(t, pieceLen, got, 1e-6)
	}
}

func TestSolveLengthCyclic_WrapsAroundLoop(t *testing.T) {
	pts := []vecmath.Vector2[float64]{
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(0.0, 1.0),
		vecmath.NewVector2(-1.0, 0.0),
		vecmath.NewVector2(0.0, -1.0),
	}
	sp, err := spline.NewNaturalSplineLoop[float64](pts, 0)
	assert.NoError(t, err)

	circumference := sp.TotalLength()
	b, err := SolveLengthCyclic[float64, vecmath.Vector2[float64]](sp, 0, circumference*1.5)
	assert.NoError(t, err)
	assert.Greater(t, b, sp.MaxT())
}
