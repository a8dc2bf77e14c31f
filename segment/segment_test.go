package segment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate_Uniform(t *testing.T) {
	knots := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, 0, Locate(knots, -1.0))
	assert.Equal(t, 0, Locate(knots, 0.0))
	assert.Equal(t, 0, Locate(knots, 0.5))
	assert.Equal(t, 3, Locate(knots, 3.999))
	assert.Equal(t, 6, Locate(knots, 7.0))
	assert.Equal(t, 6, Locate(knots, 100.0))
}

func TestLocate_NonUniform(t *testing.T) {
	knots := []float64{0, 0.1, 0.5, 4.0, 4.2, 10.0}
	for i := 0; i < len(knots)-1; i++ {
		mid := (knots[i] + knots[i+1]) / 2
		assert.Equal(t, i, Locate(knots, mid), "segment for midpoint of [%d,%d)", i, i+1)
	}
}

func TestLocate_RandomAgainstLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	knots := make([]float64, 50)
	acc := 0.0
	for i := range knots {
		acc += r.Float64()*3 + 0.01
		knots[i] = acc
	}
	for i := 0; i < 500; i++ {
		t0 := knots[0] + r.Float64()*(knots[len(knots)-1]-knots[0])
		want := linearLocate(knots, t0)
		got := Locate(knots, t0)
		assert.Equal(t, want, got)
	}
}

func linearLocate(knots []float64, t float64) int {
	for i := 0; i < len(knots)-2; i++ {
		if t < knots[i+1] {
			return i
		}
	}
	return len(knots) - 2
}
