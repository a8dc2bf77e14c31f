package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3_Add(t *testing.T) {
	tests := []struct {
		a, b, expected Vector3[float64]
	}{
		{NewVector3(0.0, 0.0, 0.0), NewVector3(0.0, 0.0, 0.0), NewVector3(0.0, 0.0, 0.0)},
		{NewVector3(1.0, 2.0, 3.0), NewVector3(4.0, 5.0, 6.0), NewVector3(5.0, 7.0, 9.0)},
	}
	for i, test := range tests {
		actual := test.a.Add(test.b)
		assert.Equalf(t, test.expected, actual, "Failed test %v", i)
	}
}

func TestVector3_LengthAndNormalize(t *testing.T) {
	v := NewVector3(3.0, 4.0, 0.0)
	assert.InDelta(t, 5.0, v.Length(), 1e-12)

	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	zero := NewVector3(0.0, 0.0, 0.0)
	assert.Equal(t, NewVector3(0.0, 0.0, 0.0), zero.Normalize())

	tiny := NewVector3(1e-5, 0.0, 0.0)
	assert.Equal(t, NewVector3(0.0, 0.0, 0.0), tiny.Normalize())
}

func TestVector3_DistanceTo(t *testing.T) {
	a := NewVector3(0.0, 0.0, 0.0)
	b := NewVector3(1.0, 1.0, 1.0)
	assert.InDelta(t, 3.0, a.DistanceToSquared(b), 1e-12)
}

func TestVector3_Cross(t *testing.T) {
	x := NewVector3(1.0, 0.0, 0.0)
	y := NewVector3(0.0, 1.0, 0.0)
	assert.Equal(t, NewVector3(0.0, 0.0, 1.0), x.Cross(y))
}

func TestVector3_Lerp(t *testing.T) {
	a := NewVector3(0.0, 0.0, 0.0)
	b := NewVector3(10.0, 10.0, 10.0)
	assert.Equal(t, NewVector3(5.0, 5.0, 5.0), a.Lerp(b, 0.5))
}

func TestVector3_Float32Instantiation(t *testing.T) {
	v := NewVector3[float32](3, 4, 0)
	assert.InDelta(t, float32(5), v.Length(), 1e-5)
}
