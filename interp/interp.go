package interp

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
)

// Weights holds the bracketing node indices and the trilinear weights of one
// query point. W[i][j][k] is the weight of corner (Lo/Hi[0], Lo/Hi[1], Lo/Hi[2])
// with 0 selecting Lo and 1 selecting Hi.
type Weights struct {
	Lo, Hi [3]int
	W      [2][2][2]float64
}

// Factorize locates pt on g and computes its trilinear weights.
// The point is first clamped into the grid box; a NaN coordinate clamps to
// the first node of its axis.
func Factorize(g *grid.Grid, pt r3.Vec) Weights {
	var w Weights
	var frac [3]float64
	coords := [3]float64{pt.X, pt.Y, pt.Z}
	for a := range coords {
		w.Lo[a], w.Hi[a], frac[a] = g.Bracket(a, coords[a])
	}

	for i := 0; i < 2; i++ {
		fi := 1 - frac[0]
		if i == 1 {
			fi = frac[0]
		}
		for j := 0; j < 2; j++ {
			fj := 1 - frac[1]
			if j == 1 {
				fj = frac[1]
			}
			for k := 0; k < 2; k++ {
				fk := 1 - frac[2]
				if k == 1 {
					fk = frac[2]
				}
				w.W[i][j][k] = fi * fj * fk
			}
		}
	}
	return w
}

// corner returns the node index of corner (i,j,k).
func (w *Weights) corner(i, j, k int) (ir, it, ip int) {
	ir, it, ip = w.Lo[0], w.Lo[1], w.Lo[2]
	if i == 1 {
		ir = w.Hi[0]
	}
	if j == 1 {
		it = w.Hi[1]
	}
	if k == 1 {
		ip = w.Hi[2]
	}
	return ir, it, ip
}

// Value returns the interpolated value of field at the factorized point.
func (w Weights) Value(g *grid.Grid, field []float64) float64 {
	var v float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				ir, it, ip := w.corner(i, j, k)
				v += w.W[i][j][k] * field[g.Index(ir, it, ip)]
			}
		}
	}
	return v
}

// Gradient returns the interpolated gradient (∂/∂r, ∂/∂θ, ∂/∂φ in grid
// coordinates) of field at the factorized point.
func (w Weights) Gradient(g *grid.Grid, field []float64) r3.Vec {
	var d [3]float64
	n := g.Dims()
	strides := g.Strides()
	spacing := g.Spacing()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				c := w.W[i][j][k]
				if c == 0 {
					continue
				}
				ir, it, ip := w.corner(i, j, k)
				idx := g.Index(ir, it, ip)
				node := [3]int{ir, it, ip}
				for a := 0; a < 3; a++ {
					d[a] += c * nodeDerivative(field, idx, node[a], n[a], strides[a])
				}
			}
		}
	}
	for a := 0; a < 3; a++ {
		if spacing[a] == 0 {
			d[a] = 0
			continue
		}
		d[a] /= spacing[a]
	}
	return r3.Vec{X: d[0], Y: d[1], Z: d[2]}
}

// Evaluate returns both the value and the gradient.
func (w Weights) Evaluate(g *grid.Grid, field []float64) (float64, r3.Vec) {
	return w.Value(g, field), w.Gradient(g, field)
}

// nodeDerivative is the per-index-step derivative of field at node idx along
// one axis, where i is the node's position on that axis.
func nodeDerivative(field []float64, idx, i, n, stride int) float64 {
	switch {
	case n < 2:
		return 0
	case i == 0:
		return field[idx+stride] - field[idx]
	case i == n-1:
		return field[idx] - field[idx-stride]
	default:
		return (field[idx+stride] - field[idx-stride]) / 2
	}
}

// At interpolates field at pt.
func At(g *grid.Grid, field []float64, pt r3.Vec) float64 {
	return Factorize(g, pt).Value(g, field)
}

// AtWithGradient interpolates field and its gradient at pt.
func AtWithGradient(g *grid.Grid, field []float64, pt r3.Vec) (float64, r3.Vec) {
	return Factorize(g, pt).Evaluate(g, field)
}
