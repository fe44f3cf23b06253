package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
)

// TestBisect_Table covers the boundary rules.
func TestBisect_Table(t *testing.T) {
	arr := []float64{0, 1, 2, 3, 4}
	cases := []struct {
		target float64
		want   int
	}{
		{-5, 0}, {0, 0}, {0.3, 0}, {1, 1}, {1.99, 1},
		{2, 2}, {3.5, 3}, {4, 4}, {10, 4},
	}
	for _, tc := range cases {
		if got := grid.Bisect(arr, tc.target); got != tc.want {
			t.Errorf("Bisect(%v) = %d; want %d", tc.target, got, tc.want)
		}
	}
	assert.Equal(t, 0, grid.Bisect([]float64{7}, 3))
	assert.Equal(t, 0, grid.Bisect([]float64{7}, 9))
}

// TestBisect_NaN keeps a NaN target inside the index range.
func TestBisect_NaN(t *testing.T) {
	assert.Equal(t, 0, grid.Bisect([]float64{0, 1, 2}, math.NaN()))
	assert.Equal(t, 0, grid.Bisect([]float64{5}, math.NaN()))
}

// TestBracket checks clamping, fractions and the NaN fallback.
func TestBracket(t *testing.T) {
	g, err := grid.New(span(0, 0.5, 5), span(0, 1, 1), span(-1, 1, 3), grid.Cartesian)
	require.NoError(t, err)

	cases := []struct {
		name   string
		axis   int
		x      float64
		lo, hi int
		frac   float64
	}{
		{"Interior", grid.AxisR, 0.6, 1, 2, 0.2},
		{"Below", grid.AxisR, -3, 0, 1, 0},
		{"Above", grid.AxisR, 9, 4, 4, 0},
		{"NaN", grid.AxisP, math.NaN(), 0, 1, 0},
		{"SingleNode", grid.AxisT, 0.7, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, frac := g.Bracket(tc.axis, tc.x)
			assert.Equal(t, [2]int{tc.lo, tc.hi}, [2]int{lo, hi})
			assert.InDelta(t, tc.frac, frac, 1e-12)
		})
	}
}

// TestBisect_Bracket checks arr[i] <= x < arr[i+1] for random interior targets.
func TestBisect_Bracket(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	arr := make([]float64, 37)
	for i := range arr {
		arr[i] = -3 + 0.37*float64(i)
	}
	lo, hi := arr[0], arr[len(arr)-1]
	for k := 0; k < 2000; k++ {
		x := lo + rng.Float64()*(hi-lo)
		i := grid.Bisect(arr, x)
		require.LessOrEqual(t, arr[i], x)
		if i < len(arr)-1 {
			require.Less(t, x, arr[i+1])
		}
	}
}

// TestCellAndNearest checks the pull-back at the upper edge and rounding.
func TestCellAndNearest(t *testing.T) {
	g, err := grid.New(span(0, 1, 4), span(0, 1, 4), span(0, 1, 1), grid.Cartesian)
	require.NoError(t, err)

	ir, it, ip := g.Locate(r3.Vec{X: 3, Y: 1.2})
	assert.Equal(t, [3]int{3, 1, 0}, [3]int{ir, it, ip})

	ir, it, ip = g.Cell(r3.Vec{X: 3, Y: 1.2})
	assert.Equal(t, [3]int{2, 1, 0}, [3]int{ir, it, ip})

	ir, it, ip = g.Nearest(r3.Vec{X: 1.6, Y: 1.4})
	assert.Equal(t, [3]int{2, 1, 0}, [3]int{ir, it, ip})
}
