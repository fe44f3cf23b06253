package fsm

import (
	"math"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/upwind"
)

// Traversal directions of the 8 sweeps; true means increasing index.
var (
	forwardR = [8]bool{true, false, false, true, true, false, false, true}
	forwardT = [8]bool{true, true, false, false, true, true, false, false}
	forwardP = [8]bool{true, true, true, true, false, false, false, false}
)

// sweeper holds the read-only inputs shared by every sweep.
type sweeper struct {
	g        *grid.Grid
	slowness []float64
	fixed    []bool
	maxOrder int
}

// bounds returns the loop start, end (exclusive) and step along an axis of n nodes.
func bounds(n int, forward bool) (begin, end, step int) {
	if forward {
		return 0, n, 1
	}
	return n - 1, -1, -1
}

// sweep runs sweep number dir in place over tt and status and returns the
// largest change it made.
func (sw *sweeper) sweep(dir int, tt []float64, status []upwind.Status) float64 {
	nr, nt, np := sw.g.Shape()
	br, er, sr := bounds(nr, forwardR[dir])
	bt, et, st := bounds(nt, forwardT[dir])
	bp, ep, sp := bounds(np, forwardP[dir])

	var maxUpdate float64
	for ir := br; ir != er; ir += sr {
		for it := bt; it != et; it += st {
			h := sw.g.Steps(ir, it)
			for ip := bp; ip != ep; ip += sp {
				idx := sw.g.Index(ir, it, ip)
				if sw.fixed[idx] {
					continue
				}
				if d := sw.update(idx, ir, it, ip, h, tt, status); d > maxUpdate {
					maxUpdate = d
				}
			}
		}
	}
	return maxUpdate
}

// update re-estimates one node and returns the decrease applied to it.
func (sw *sweeper) update(idx, ir, it, ip int, h [3]float64, tt []float64, status []upwind.Status) float64 {
	s := sw.slowness[idx]

	// 1) Lazy candidate from every reached neighbor; reached neighbors
	//    become usable stencil points.
	lazy := math.Inf(1)
	for k, off := range grid.Offsets {
		jr, jt, jp := ir+off[0], it+off[1], ip+off[2]
		if !sw.g.InBounds(jr, jt, jp) {
			continue
		}
		j := sw.g.Index(jr, jt, jp)
		if status[j] == upwind.Far {
			continue
		}
		status[j] = upwind.Alive
		lazy = min(lazy, tt[j]+h[k/2]*s)
	}
	if math.IsInf(lazy, 1) {
		return 0
	}

	// 2) High-order candidate centred on the better estimate.
	prev := tt[idx]
	if lazy < prev {
		tt[idx] = lazy
	}
	t, ok := upwind.Solve(sw.g, tt, status, idx, sw.maxOrder, s, h)
	tt[idx] = prev
	if ok && t > 0 {
		t = min(t, lazy)
	} else {
		t = lazy
	}

	// 3) Keep improvements only.
	if t >= prev {
		return 0
	}
	tt[idx] = t
	status[idx] = upwind.Alive
	return prev - t
}
