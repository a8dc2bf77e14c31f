package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_Add(t *testing.T) {
	a := NewVector2(1.0, 2.0)
	b := NewVector2(3.0, 4.0)
	assert.Equal(t, NewVector2(4.0, 6.0), a.Add(b))
}

func TestVector2_Normalize(t *testing.T) {
	v := NewVector2(3.0, 4.0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestVector2_AlmostEquals(t *testing.T) {
	a := NewVector2(1.0, 1.0)
	b := NewVector2(1.0000001, 1.0)
	assert.True(t, a.AlmostEquals(b, 1e-4))
	assert.False(t, a.AlmostEquals(b, 1e-9))
}
