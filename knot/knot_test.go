package knot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splinekit/splinekit/vecmath"
)

func triangle(i int) float64 {
	return float64(i * (i + 1) / 2)
}

func TestBuild_InnerUniform_StraightLine(t *testing.T) {
	points := make([]vecmath.Vector3[float64], 10)
	for i := range points {
		tn := triangle(i)
		points[i] = vecmath.NewVector3(tn, tn, 0.0)
	}
	k, err := Build[float64](points, 0, 1, false, PaddingInner)
	assert.NoError(t, err)
	assert.Equal(t, 7, k.SegmentCount())
	assert.InDelta(t, 7.0, k.MaxT(), 1e-9)
	assert.Equal(t, 1, k.FirstActive())
	assert.Equal(t, 8, k.LastActive())
	assert.InDelta(t, 0.0, k.At(1), 1e-9)
	assert.InDelta(t, 7.0, k.At(8), 1e-9)
	assert.Less(t, k.At(0), k.At(1))
	assert.Greater(t, k.At(9), k.At(8))
}

func TestBuild_Outer_AllActive(t *testing.T) {
	points := []vecmath.Vector2[float64]{
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(2.0, 0.0),
		vecmath.NewVector2(3.0, 0.0),
	}
	k, err := Build[float64](points, 0, 2, false, PaddingOuter)
	assert.NoError(t, err)
	assert.Equal(t, 3, k.SegmentCount())
	assert.Equal(t, 0, k.FirstActive())
	assert.Equal(t, 3, k.LastActive())
	// padding knots extrapolate by mirroring spacing
	assert.InDelta(t, -1.0, k.At(-1), 1e-9)
	assert.InDelta(t, -2.0, k.At(-2), 1e-9)
	assert.InDelta(t, 4.0, k.At(4), 1e-9)
	assert.InDelta(t, 5.0, k.At(5), 1e-9)
}

func TestBuild_Looping_ClosesAtN(t *testing.T) {
	points := []vecmath.Vector2[float64]{
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(0.0, 1.0),
		vecmath.NewVector2(-1.0, 0.0),
		vecmath.NewVector2(0.0, -1.0),
	}
	k, err := Build[float64](points, 0, 1, true, PaddingInner)
	assert.NoError(t, err)
	assert.Equal(t, 4, k.SegmentCount())
	assert.InDelta(t, 4.0, k.MaxT(), 1e-9)
	assert.InDelta(t, 0.0, k.At(0), 1e-9)
	assert.InDelta(t, 4.0, k.At(4), 1e-9)
	// one padding knot on each side continues the cyclic spacing
	assert.InDelta(t, k.At(4)+(k.At(1)-k.At(0)), k.At(5), 1e-9)
}

func TestBuild_CollapsedPointsGiveZeroSpacing(t *testing.T) {
	points := []vecmath.Vector2[float64]{
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(2.0, 0.0),
	}
	k, err := Build[float64](points, 0.5, 1, false, PaddingInner)
	assert.NoError(t, err)
	assert.InDelta(t, k.At(0), k.At(1), 1e-9)
}

func TestBuild_CollapsedPointsStillUnitSpacingWhenAlphaZero(t *testing.T) {
	points := []vecmath.Vector2[float64]{
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(0.0, 0.0),
		vecmath.NewVector2(1.0, 0.0),
		vecmath.NewVector2(2.0, 0.0),
	}
	k, err := Build[float64](points, 0, 1, false, PaddingInner)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, k.At(1)-k.At(0), 1e-9)
}

func TestBuild_TooFewPoints(t *testing.T) {
	points := []vecmath.Vector2[float64]{vecmath.NewVector2(0.0, 0.0), vecmath.NewVector2(1.0, 0.0)}
	_, err := Build[float64](points, 0, 1, false, PaddingInner)
	assert.Error(t, err)
}
