package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
)

func span(lo, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed axes.
func TestNew_Errors(t *testing.T) {
	ok := []float64{0, 1, 2}
	cases := []struct {
		name    string
		r, t, p []float64
		coord   grid.CoordSystem
		err     error
	}{
		{"EmptyR", nil, ok, ok, grid.Cartesian, grid.ErrEmptyAxis},
		{"EmptyP", ok, ok, []float64{}, grid.Cartesian, grid.ErrEmptyAxis},
		{"Descending", ok, []float64{2, 1, 0}, ok, grid.Cartesian, grid.ErrNotAscending},
		{"Repeated", ok, ok, []float64{0, 0, 1}, grid.Cartesian, grid.ErrNotAscending},
		{"NonUniform", []float64{0, 1, 3}, ok, ok, grid.Cartesian, grid.ErrNonUniformAxis},
		{"ZeroRadius", ok, ok, ok, grid.Spherical, grid.ErrBadRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.r, tc.t, tc.p, tc.coord)
			if !errors.Is(err, tc.err) {
				t.Errorf("New error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_CopiesAxes checks that the grid does not alias caller slices.
func TestNew_CopiesAxes(t *testing.T) {
	r := []float64{0, 1, 2}
	g, err := grid.New(r, []float64{0}, []float64{0, 0.5}, grid.Cartesian)
	require.NoError(t, err)
	r[0] = 42
	assert.Equal(t, []float64{0, 1, 2}, g.Axis(grid.AxisR))

	// Copies handed out by Axis do not alias the grid either.
	g.Axis(grid.AxisR)[1] = 42
	assert.Equal(t, r3.Vec{X: 1}, g.Node(g.Index(1, 0, 0)))
	assert.Equal(t, grid.Cartesian, g.Coord())

	nr, nt, np := g.Shape()
	assert.Equal(t, [3]int{3, 1, 2}, [3]int{nr, nt, np})
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, [3]float64{1, 0, 0.5}, g.Spacing())
	assert.Equal(t, [3]int{2, 2, 1}, g.Strides())
}

//----------------------------------------------------------------------------//
// Index Tests
//----------------------------------------------------------------------------//

// TestIndexRoundTrip checks Ravel/Unravel over every node of a small grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New(span(0, 1, 4), span(0, 1, 3), span(0, 1, 5), grid.Cartesian)
	require.NoError(t, err)

	seen := make([]bool, g.Len())
	for ir := 0; ir < 4; ir++ {
		for it := 0; it < 3; it++ {
			for ip := 0; ip < 5; ip++ {
				idx := g.Index(ir, it, ip)
				require.Equal(t, grid.Ravel(ir, it, ip, 3, 5), idx)
				require.False(t, seen[idx], "index %d produced twice", idx)
				seen[idx] = true

				a, b, c := g.Unravel(idx)
				require.Equal(t, [3]int{ir, it, ip}, [3]int{a, b, c})
				assert.Equal(t, r3.Vec{X: float64(ir), Y: float64(it), Z: float64(ip)}, g.Node(idx))
			}
		}
	}
}

// TestInBounds checks InBounds and Contains on the edges of the box.
func TestInBounds(t *testing.T) {
	g, err := grid.New(span(0, 1, 3), span(0, 1, 2), span(0, 1, 2), grid.Cartesian)
	require.NoError(t, err)

	assert.True(t, g.InBounds(0, 0, 0))
	assert.True(t, g.InBounds(2, 1, 1))
	assert.False(t, g.InBounds(3, 0, 0))
	assert.False(t, g.InBounds(0, -1, 0))
	assert.False(t, g.InBounds(0, 0, 2))

	assert.True(t, g.Contains(r3.Vec{X: 2, Y: 1, Z: 0}))
	assert.True(t, g.Contains(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}))
	assert.False(t, g.Contains(r3.Vec{X: -0.1, Y: 0, Z: 0}))
	assert.False(t, g.Contains(r3.Vec{X: 0, Y: 0, Z: 1.01}))
}

// TestCheckField verifies the length check names the field.
func TestCheckField(t *testing.T) {
	g, err := grid.New(span(0, 1, 2), span(0, 1, 2), span(0, 1, 2), grid.Cartesian)
	require.NoError(t, err)

	require.NoError(t, g.CheckField("tt", make([]float64, 8)))
	err = g.CheckField("slowness", make([]float64, 7))
	require.ErrorIs(t, err, grid.ErrFieldSize)
	assert.Contains(t, err.Error(), "slowness")
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestSphericalToCartesian checks the axis conventions.
func TestSphericalToCartesian(t *testing.T) {
	cases := []struct {
		name    string
		r, t, p float64
		want    r3.Vec
	}{
		{"NorthPole", 2, 0, 0, r3.Vec{Z: 2}},
		{"EquatorX", 1, math.Pi / 2, 0, r3.Vec{X: 1}},
		{"EquatorY", 3, math.Pi / 2, math.Pi / 2, r3.Vec{Y: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := grid.SphericalToCartesian(tc.r, tc.t, tc.p)
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-12)
		})
	}
}

// TestDistance compares Cartesian and spherical distances.
func TestDistance(t *testing.T) {
	cg, err := grid.New(span(0, 1, 2), span(0, 1, 2), span(0, 1, 2), grid.Cartesian)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), cg.Distance(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}), 1e-12)

	sg, err := grid.New(span(1, 1, 2), span(0.5, 0.5, 3), span(0, 0.5, 3), grid.Spherical)
	require.NoError(t, err)
	a := r3.Vec{X: 1, Y: math.Pi / 2, Z: 0}
	b := r3.Vec{X: 1, Y: math.Pi / 2, Z: math.Pi / 2}
	assert.InDelta(t, math.Sqrt2, sg.Distance(a, b), 1e-12)
}

// TestSteps checks the physical step lengths in both coordinate systems.
func TestSteps(t *testing.T) {
	cg, err := grid.New(span(0, 0.5, 3), span(0, 0.25, 3), span(0, 2, 3), grid.Cartesian)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.5, 0.25, 2}, cg.Steps(1, 1))

	sg, err := grid.New(span(2, 1, 3), span(0, math.Pi/4, 3), span(0, 0.1, 3), grid.Spherical)
	require.NoError(t, err)
	h := sg.Steps(1, 2) // r = 3, θ = π/2
	assert.InDelta(t, 1, h[0], 1e-12)
	assert.InDelta(t, 3*math.Pi/4, h[1], 1e-12)
	assert.InDelta(t, 0.3, h[2], 1e-12)

	// At the pole the azimuthal step is floored, never zero.
	assert.Greater(t, sg.Steps(0, 0)[2], 0.0)
	assert.InEpsilon(t, 0.1*2*grid.SinFloor(0), sg.Steps(0, 0)[2], 1e-9)
}

// TestSinFloor checks the pole floor and the plain |sin θ| elsewhere.
func TestSinFloor(t *testing.T) {
	assert.Equal(t, 1e-12, grid.SinFloor(0))
	assert.Greater(t, grid.SinFloor(math.Pi), 0.0)
	assert.InDelta(t, 1, grid.SinFloor(-math.Pi/2), 1e-15)
	assert.InDelta(t, math.Sin(0.3), grid.SinFloor(0.3), 1e-15)
}

//----------------------------------------------------------------------------//
// Refine Tests
//----------------------------------------------------------------------------//

// TestRefine_Window checks clamping and the coarse-to-fine node mapping.
func TestRefine_Window(t *testing.T) {
	g, err := grid.New(span(0, 1, 6), span(0, 1, 6), span(0, 1, 1), grid.Cartesian)
	require.NoError(t, err)

	fine, w, err := g.Refine([3]int{1, 3, 0}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 1, 0}, w.Lo)
	assert.Equal(t, [3]int{3, 5, 0}, w.Hi)
	assert.Equal(t, 4, w.Factor)

	nr, nt, np := fine.Shape()
	assert.Equal(t, [3]int{13, 17, 1}, [3]int{nr, nt, np})
	assert.InDelta(t, 0.25, fine.Spacing()[0], 1e-12)
	// Coarse node (2,4,0) is fine node ((2-0)*4, (4-1)*4, 0).
	assert.InDelta(t, g.Axis(grid.AxisR)[2], fine.Axis(grid.AxisR)[8], 1e-12)
	assert.InDelta(t, g.Axis(grid.AxisT)[4], fine.Axis(grid.AxisT)[12], 1e-12)

	touch := w.Touches(g)
	assert.True(t, touch[grid.RMin])
	assert.False(t, touch[grid.RMax])
	assert.False(t, touch[grid.TMin])
	assert.True(t, touch[grid.TMax])
	assert.True(t, touch[grid.PMin])
	assert.True(t, touch[grid.PMax])
}

// TestRefine_BadArgs rejects invalid factor and radius.
func TestRefine_BadArgs(t *testing.T) {
	g, err := grid.New(span(0, 1, 3), span(0, 1, 3), span(0, 1, 3), grid.Cartesian)
	require.NoError(t, err)
	_, _, err = g.Refine([3]int{1, 1, 1}, 1, 2)
	assert.ErrorIs(t, err, grid.ErrBadRefinement)
	_, _, err = g.Refine([3]int{1, 1, 1}, 2, 0)
	assert.ErrorIs(t, err, grid.ErrBadRefinement)
}
