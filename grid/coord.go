package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SphericalToCartesian converts (r, θ, φ) to (x, y, z), θ being colatitude.
func SphericalToCartesian(r, t, p float64) r3.Vec {
	st, ct := math.Sincos(t)
	sp, cp := math.Sincos(p)
	return r3.Vec{X: r * st * cp, Y: r * st * sp, Z: r * ct}
}

// Cartesian returns the physical position of a point given in grid
// coordinates. It is the identity for Cartesian grids.
func (g *Grid) Cartesian(pt r3.Vec) r3.Vec {
	if g.coord == Spherical {
		return SphericalToCartesian(pt.X, pt.Y, pt.Z)
	}
	return pt
}

// Distance returns the straight-line distance between two points given in
// grid coordinates.
func (g *Grid) Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(g.Cartesian(a), g.Cartesian(b)))
}
