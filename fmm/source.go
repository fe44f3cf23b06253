package fmm

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/interp"
	"github.com/katalvlaran/eikonal/upwind"
)

// InitSource seeds the front around a point source with straight-line times.
//
// The corners of the cell holding src get distance·slowness and become
// CLOSE; the earliest corner is then made ALIVE and every FAR node of its
// 3×3×3 neighborhood gets a straight-line time and becomes CLOSE.
// status must hold upwind.Far for untouched nodes. The returned ids are the
// nodes left CLOSE, ready to be queued.
func InitSource(g *grid.Grid, slowness, tt []float64, status []upwind.Status, src r3.Vec) []int {
	ir, it, ip := g.Cell(src)

	// 1) Cell corners.
	corners := make([]int, 0, 8)
	times := make([]float64, 0, 8)
	for kr := 0; kr < 2; kr++ {
		for kt := 0; kt < 2; kt++ {
			for kp := 0; kp < 2; kp++ {
				jr, jt, jp := ir+kr, it+kt, ip+kp
				if !g.InBounds(jr, jt, jp) {
					continue
				}
				j := g.Index(jr, jt, jp)
				tt[j] = g.Distance(src, g.Node(j)) * slowness[j]
				status[j] = upwind.Close
				corners = append(corners, j)
				times = append(times, tt[j])
			}
		}
	}

	// 2) The earliest corner is final.
	m := floats.MinIdx(times)
	origin := corners[m]
	status[origin] = upwind.Alive
	closeIDs := make([]int, 0, 27+len(corners))
	closeIDs = append(closeIDs, corners[:m]...)
	closeIDs = append(closeIDs, corners[m+1:]...)

	// 3) Its 3x3x3 neighborhood.
	mr, mt, mp := g.Unravel(origin)
	for dr := -1; dr <= 1; dr++ {
		for dt := -1; dt <= 1; dt++ {
			for dp := -1; dp <= 1; dp++ {
				jr, jt, jp := mr+dr, mt+dt, mp+dp
				if !g.InBounds(jr, jt, jp) {
					continue
				}
				j := g.Index(jr, jt, jp)
				if status[j] != upwind.Far {
					continue
				}
				tt[j] = g.Distance(src, g.Node(j)) * slowness[j]
				status[j] = upwind.Close
				closeIDs = append(closeIDs, j)
			}
		}
	}

	return closeIDs
}

// InitSourceRefined seeds the front by solving on a finer sub-grid first.
//
// The sub-grid spans radius coarse cells around the coarse node nearest to
// src, resampled factor times finer, with slowness interpolated from the
// coarse field. It is seeded with InitSource and marched until the front
// touches a sub-grid face that is not also a coarse-grid face. Every reached
// sub-grid node that coincides with a coarse node is copied back as ALIVE,
// except the first and last of each φ scanline, which are returned as CLOSE.
//
// status must hold upwind.Far for untouched nodes. The sub-grid is discarded
// before returning.
func InitSourceRefined(
	g *grid.Grid,
	slowness, tt []float64,
	status []upwind.Status,
	src r3.Vec,
	maxOrder, factor, radius int,
	logger *slog.Logger,
) ([]int, error) {
	if logger == nil {
		logger = discardLogger()
	}

	// 1) Build the sub-grid around the nearest coarse node.
	cr, ct, cp := g.Nearest(src)
	fine, w, err := g.Refine([3]int{cr, ct, cp}, factor, radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRefinement, err)
	}
	n := fine.Len()
	subSlow := make([]float64, n)
	subTT := make([]float64, n)
	subStatus := make([]upwind.Status, n)
	for i := range subSlow {
		subSlow[i] = interp.At(g, slowness, fine.Node(i))
		subTT[i] = upwind.Unreached
		subStatus[i] = upwind.Far
	}
	logger.Debug("fmm: refined source grid",
		"lo", w.Lo, "hi", w.Hi, "factor", factor, "nodes", n)

	// 2) Seed and march; faces shared with the coarse grid never stop the pass.
	ids := InitSource(fine, subSlow, subTT, subStatus, src)
	stop := grid.AllFaces
	for f, touches := range w.Touches(g) {
		if touches {
			stop[f] = false
		}
	}
	m := newMarcher(fine, subSlow, subTT, subStatus, ids, maxOrder, logger)
	m.stop = &stop
	m.process()

	// 3) Copy the coarse-aligned nodes back.
	var closeIDs []int
	for jr := w.Lo[grid.AxisR]; jr <= w.Hi[grid.AxisR]; jr++ {
		fr := (jr - w.Lo[grid.AxisR]) * factor
		for jt := w.Lo[grid.AxisT]; jt <= w.Hi[grid.AxisT]; jt++ {
			ft := (jt - w.Lo[grid.AxisT]) * factor
			first, last := -1, -1
			for jp := w.Lo[grid.AxisP]; jp <= w.Hi[grid.AxisP]; jp++ {
				fp := (jp - w.Lo[grid.AxisP]) * factor
				fidx := fine.Index(fr, ft, fp)
				if subStatus[fidx] == upwind.Far {
					continue
				}
				idx := g.Index(jr, jt, jp)
				if first < 0 {
					first = idx
				}
				last = idx
				tt[idx] = subTT[fidx]
				status[idx] = upwind.Alive
			}
			if first >= 0 {
				status[first] = upwind.Close
				closeIDs = append(closeIDs, first)
			}
			if last >= 0 && last != first {
				status[last] = upwind.Close
				closeIDs = append(closeIDs, last)
			}
		}
	}

	if len(closeIDs) == 0 {
		logger.Debug("fmm: refined pass reached no coarse node, seeding on the coarse grid")
		return InitSource(g, slowness, tt, status, src), nil
	}
	return closeIDs, nil
}
