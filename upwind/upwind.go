package upwind

import (
	"math"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/stencil"
)

// Status is the marching state of a node.
type Status int8

const (
	Far   Status = -1
	Close Status = 0
	Alive Status = 1
)

// String returns the lower-case state name.
func (s Status) String() string {
	switch s {
	case Far:
		return "far"
	case Close:
		return "close"
	case Alive:
		return "alive"
	}
	return "unknown"
}

// Unreached is the travel time of a node no front has reached.
// It is finite so interpolation over unreached corners stays NaN-free.
const Unreached = 9.9e30

// degenerate bounds |A| and |B| below which the quadratic is rejected.
const degenerate = 1e-10

// Reached reports whether t is a real travel time rather than the sentinel.
func Reached(t float64) bool {
	return t < Unreached
}

// Solve returns the high-order upwind estimate at node idx for slowness s
// and physical steps h, or false when the local quadratic is degenerate.
// tt[idx] is read as the current value at the node; callers that want the
// stencil centred on a tentative value set tt[idx] before the call.
//
// maxOrder must be in [1, stencil.MaxOrder].
func Solve(g *grid.Grid, tt []float64, status []Status, idx, maxOrder int, s float64, h [3]float64) (float64, bool) {
	node := [3]int{}
	node[0], node[1], node[2] = g.Unravel(idx)
	n := g.Dims()
	strides := g.Strides()

	A, B, C := 0.0, 0.0, -s*s
	var neg, pos [stencil.MaxOrder + 1]float64
	neg[0], pos[0] = tt[idx], tt[idx]
	for a := 0; a < 3; a++ {
		stride := strides[a]

		// 1) Walk backwards while neighbors are Alive and strictly decreasing.
		kn := 0
		for ; kn < maxOrder; kn++ {
			if node[a]-kn < 1 {
				break
			}
			j := idx - (kn+1)*stride
			if status[j] != Alive || tt[j] >= tt[j+stride] {
				break
			}
			neg[kn+1] = tt[j]
		}

		// 2) Same walk forwards.
		kp := 0
		for ; kp < maxOrder; kp++ {
			if node[a]+kp+1 > n[a]-1 {
				break
			}
			j := idx + (kp+1)*stride
			if status[j] != Alive || tt[j] >= tt[j-stride] {
				break
			}
			pos[kp+1] = tt[j]
		}

		// 3) Keep the side with the larger derivative; ties go backwards.
		na, nb, nd := stencil.Coefficients(kn, neg[:], h[a])
		pa, pb, pd := stencil.Coefficients(kp, pos[:], h[a])
		ca, cb, cd := na, nb, nd
		if nd < pd {
			ca, cb, cd = pa, pb, pd
		}
		if cd < 0 {
			ca, cb = 0, 0
		}

		A += ca * ca
		B += 2 * ca * cb
		C += cb * cb
	}

	// 4) Larger root of A·T² − B·T + C = 0.
	if math.Abs(A) < degenerate || math.Abs(B) < degenerate {
		return 0, false
	}
	disc := B*B - 4*A*C
	if disc <= 0 {
		return 0, false
	}
	return (B + math.Sqrt(disc)) / (2 * A), true
}
