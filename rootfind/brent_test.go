package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrent_PolynomialRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	root, err := Brent(f, 0.0, 2.0, 1e-12, 100)
	assert.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

func TestBrent_Cosine(t *testing.T) {
	f := math.Cos
	root, err := Brent[float64](f, 0.0, 2.0, 1e-12, 100)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-9)
}

func TestBrent_NotBracketed(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := Brent(f, -1.0, 1.0, 1e-9, 100)
	assert.ErrorIs(t, err, ErrNotBracketed)
}

func TestBrent_MonotoneCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	root, err := Brent(f, 1.0, 2.0, 1e-12, 100)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, f(root), 1e-9)
}

func TestBrent_RootAtEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	root, err := Brent(f, 1.0, 5.0, 1e-9, 50)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, root)
}
