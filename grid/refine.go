package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Refine builds the fine sub-grid used around a point source. The coarse
// window spans center±radius nodes on each axis, clamped to the grid. Each
// window axis is resampled with factor times more intervals, so every coarse
// node inside the window is also a sub-grid node: coarse (i,j,k) maps to sub
// ((i-Lo)*factor, (j-Lo)*factor, (k-Lo)*factor).
//
// A single-node window axis stays single-node.
// Complexity: O(factor·radius) per axis.
func (g *Grid) Refine(center [3]int, factor, radius int) (*Grid, Window, error) {
	if factor < 2 || radius < 1 {
		return nil, Window{}, fmt.Errorf("%w: factor=%d radius=%d", ErrBadRefinement, factor, radius)
	}

	w := Window{Factor: factor}
	axes := [3][]float64{g.r, g.t, g.p}
	var sub [3][]float64
	for a := 0; a < 3; a++ {
		w.Lo[a] = max(center[a]-radius, 0)
		w.Hi[a] = min(center[a]+radius, g.n[a]-1)
		if w.Hi[a] == w.Lo[a] {
			sub[a] = []float64{axes[a][w.Lo[a]]}
			continue
		}
		sub[a] = make([]float64, (w.Hi[a]-w.Lo[a])*factor+1)
		floats.Span(sub[a], axes[a][w.Lo[a]], axes[a][w.Hi[a]])
	}

	fine, err := New(sub[AxisR], sub[AxisT], sub[AxisP], g.coord)
	if err != nil {
		return nil, Window{}, fmt.Errorf("grid: refine: %w", err)
	}
	return fine, w, nil
}

// Touches reports, per face, whether the window reaches that face of the
// coarse grid.
func (w Window) Touches(g *Grid) Faces {
	return Faces{
		RMin: w.Lo[AxisR] == 0,
		RMax: w.Hi[AxisR] == g.n[AxisR]-1,
		TMin: w.Lo[AxisT] == 0,
		TMax: w.Hi[AxisT] == g.n[AxisT]-1,
		PMin: w.Lo[AxisP] == 0,
		PMax: w.Hi[AxisP] == g.n[AxisP]-1,
	}
}
