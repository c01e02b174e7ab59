package custommath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloor(t *testing.T) {
	t.Run("Sweep", func(t *testing.T) {
		for _, x := range sweep(-1000, 1000, 0.25) {
			assert.Equal(t, math.Floor(x), Floor(x), "floor(%v)", x)
		}
	})

	t.Run("Large magnitudes", func(t *testing.T) {
		for _, x := range []float64{1e300, -1e300, 4503599627370495.5, -4503599627370495.5, 1 << 62, -(1 << 63)} {
			assert.Equal(t, math.Floor(x), Floor(x), "floor(%v)", x)
		}
	})

	t.Run("Special values", func(t *testing.T) {
		assert.Equal(t, math.Inf(1), Floor(math.Inf(1)))
		assert.Equal(t, math.Inf(-1), Floor(math.Inf(-1)))
		assertNaN(t, Floor(math.NaN()))
	})
}

func TestCeil(t *testing.T) {
	t.Run("Sweep", func(t *testing.T) {
		for _, x := range sweep(-1000, 1000, 0.25) {
			assert.Equal(t, math.Ceil(x), Ceil(x), "ceil(%v)", x)
		}
	})

	t.Run("Large magnitudes", func(t *testing.T) {
		for _, x := range []float64{1e300, -1e300, 4503599627370495.5, -4503599627370495.5} {
			assert.Equal(t, math.Ceil(x), Ceil(x), "ceil(%v)", x)
		}
	})

	t.Run("Special values", func(t *testing.T) {
		assert.Equal(t, math.Inf(1), Ceil(math.Inf(1)))
		assert.Equal(t, math.Inf(-1), Ceil(math.Inf(-1)))
		assertNaN(t, Ceil(math.NaN()))
	})
}

func TestFmod(t *testing.T) {
	t.Run("Grid matches truncating remainder", func(t *testing.T) {
		for _, x := range sweep(-100, 100, 0.25) {
			for _, y := range sweep(-50, 50, 0.25) {
				got := Fmod(x, y)
				if y == 0 {
					assertNaN(t, got, "fmod(%v, 0)", x)
					continue
				}
				assert.Equal(t, math.Mod(x, y), got, "fmod(%v, %v)", x, y)
			}
		}
	})

	t.Run("Sign follows dividend", func(t *testing.T) {
		assert.Equal(t, -1.0, Fmod(-7, 2))
		assert.Equal(t, 1.0, Fmod(7, -2))
		assert.Equal(t, -1.0, Fmod(-7, -2))
		assert.Equal(t, 1.5, Fmod(5.5, 2))
		assert.True(t, math.Signbit(Fmod(-4, 2)))
		assert.True(t, math.Signbit(Fmod(math.Copysign(0, -1), 3)))
	})

	t.Run("Large quotients stay exact", func(t *testing.T) {
		pairs := [][2]float64{
			{1e300, 1e-300},
			{1e18, twoPi},
			{1e17, twoPi},
			{-1e300, Pi},
			{math.MaxFloat64, 3},
			{0x1p53, 3},
			{1e308, math.SmallestNonzeroFloat64},
			{0x1p1000, -7.25},
		}
		for _, p := range pairs {
			x, y := p[0], p[1]
			got := Fmod(x, y)
			assert.Equal(t, math.Mod(x, y), got, "fmod(%v, %v)", x, y)
			assert.Less(t, math.Abs(got), math.Abs(y), "fmod(%v, %v)", x, y)
		}
	})

	t.Run("Special values", func(t *testing.T) {
		assertNaN(t, Fmod(1, 0))
		assertNaN(t, Fmod(math.Inf(1), 2))
		assertNaN(t, Fmod(math.NaN(), 2))
		assertNaN(t, Fmod(2, math.NaN()))
		assert.Equal(t, 3.0, Fmod(3, math.Inf(1)))
		assert.Equal(t, -3.0, Fmod(-3, math.Inf(-1)))
	})
}
