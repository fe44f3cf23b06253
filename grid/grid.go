package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// New constructs a Grid from three axes. It deep-copies the input so later
// changes to the caller's slices cannot move the geometry under a solve.
// Every axis must be non-empty, strictly ascending and uniformly spaced; in
// Spherical mode every radius must be positive.
// Complexity: O(nr + nt + np).
func New(r, t, p []float64, coord CoordSystem) (*Grid, error) {
	axes := [3][]float64{r, t, p}
	names := [3]string{"r", "t", "p"}
	g := &Grid{coord: coord}
	for a, axis := range axes {
		if err := checkAxis(axis); err != nil {
			return nil, fmt.Errorf("%w (axis %s)", err, names[a])
		}
		g.n[a] = len(axis)
		if len(axis) > 1 {
			g.spacing[a] = axis[1] - axis[0]
		}
	}
	if coord == Spherical && r[0] <= 0 {
		return nil, fmt.Errorf("%w: r[0]=%g", ErrBadRadius, r[0])
	}

	g.r = append([]float64(nil), r...)
	g.t = append([]float64(nil), t...)
	g.p = append([]float64(nil), p...)
	g.ntp = g.n[AxisT] * g.n[AxisP]

	if coord == Spherical {
		g.sinT = make([]float64, len(t))
		for i, th := range t {
			g.sinT[i] = SinFloor(th)
		}
	}

	return g, nil
}

// checkAxis validates a single axis.
func checkAxis(axis []float64) error {
	if len(axis) == 0 {
		return ErrEmptyAxis
	}
	if len(axis) == 1 {
		return nil
	}
	d := axis[1] - axis[0]
	if !(d > 0) {
		return ErrNotAscending
	}
	for i := 2; i < len(axis); i++ {
		step := axis[i] - axis[i-1]
		if !(step > 0) {
			return ErrNotAscending
		}
		if math.Abs(step-d) > uniformTol*d {
			return fmt.Errorf("%w: step %d is %g, expected %g", ErrNonUniformAxis, i, step, d)
		}
	}
	return nil
}

// Coord returns the coordinate system of the grid.
func (g *Grid) Coord() CoordSystem {
	return g.coord
}

// Axis returns a copy of the coordinates along axis a (AxisR, AxisT or AxisP).
func (g *Grid) Axis(a int) []float64 {
	return append([]float64(nil), g.axis(a)...)
}

func (g *Grid) axis(a int) []float64 {
	switch a {
	case AxisR:
		return g.r
	case AxisT:
		return g.t
	}
	return g.p
}

// Shape returns the number of nodes along each axis.
func (g *Grid) Shape() (nr, nt, np int) {
	return g.n[AxisR], g.n[AxisT], g.n[AxisP]
}

// Dims returns the axis sizes as an array, indexed by AxisR/AxisT/AxisP.
func (g *Grid) Dims() [3]int {
	return g.n
}

// Len returns the total number of nodes.
func (g *Grid) Len() int {
	return g.n[AxisR] * g.ntp
}

// Spacing returns the constant coordinate spacing of each axis.
// A single-node axis has zero spacing.
func (g *Grid) Spacing() [3]float64 {
	return g.spacing
}

// Strides returns the flat-index distance between neighbors along each axis.
func (g *Grid) Strides() [3]int {
	return [3]int{g.ntp, g.n[AxisP], 1}
}

// Index maps (ir,it,ip) to the flat node index.
// Complexity: O(1).
func (g *Grid) Index(ir, it, ip int) int {
	return ir*g.ntp + it*g.n[AxisP] + ip
}

// Unravel converts a flat node index back to (ir,it,ip).
// Complexity: O(1).
func (g *Grid) Unravel(idx int) (ir, it, ip int) {
	return Unravel(idx, g.n[AxisT], g.n[AxisP])
}

// InBounds reports whether (ir,it,ip) addresses a node of the grid.
func (g *Grid) InBounds(ir, it, ip int) bool {
	return ir >= 0 && ir < g.n[AxisR] &&
		it >= 0 && it < g.n[AxisT] &&
		ip >= 0 && ip < g.n[AxisP]
}

// Contains reports whether a point lies inside the closed grid box.
func (g *Grid) Contains(pt r3.Vec) bool {
	return pt.X >= g.r[0] && pt.X <= g.r[len(g.r)-1] &&
		pt.Y >= g.t[0] && pt.Y <= g.t[len(g.t)-1] &&
		pt.Z >= g.p[0] && pt.Z <= g.p[len(g.p)-1]
}

// Node returns the grid coordinates of the node at idx.
func (g *Grid) Node(idx int) r3.Vec {
	ir, it, ip := g.Unravel(idx)
	return r3.Vec{X: g.r[ir], Y: g.t[it], Z: g.p[ip]}
}

// Steps returns the physical length of one index step along each axis at
// node (ir,it). In spherical mode the θ step is scaled by r and the φ step by
// r·|sinθ|, with |sinθ| floored at 1e-12.
func (g *Grid) Steps(ir, it int) [3]float64 {
	h := g.spacing
	if g.coord == Spherical {
		r := g.r[ir]
		h[AxisT] *= r
		h[AxisP] *= r * g.sinT[it]
	}
	return h
}

// SinFloor returns |sin θ|, raised by 1e-12 when it would fall below that,
// so r·sinθ never vanishes at the poles.
func SinFloor(theta float64) float64 {
	s := math.Abs(math.Sin(theta))
	if s < minSin {
		s += minSin
	}
	return s
}

// OnFace reports whether node (ir,it,ip) lies on face f.
func (g *Grid) OnFace(f Face, ir, it, ip int) bool {
	switch f {
	case RMin:
		return ir == 0
	case RMax:
		return ir == g.n[AxisR]-1
	case TMin:
		return it == 0
	case TMax:
		return it == g.n[AxisT]-1
	case PMin:
		return ip == 0
	case PMax:
		return ip == g.n[AxisP]-1
	}
	return false
}

// CheckField returns ErrFieldSize (naming the field) when f does not hold
// exactly one value per node.
func (g *Grid) CheckField(name string, f []float64) error {
	if len(f) != g.Len() {
		return fmt.Errorf("%w: %s has %d values, grid has %d nodes", ErrFieldSize, name, len(f), g.Len())
	}
	return nil
}
