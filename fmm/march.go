package fmm

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/pqueue"
	"github.com/katalvlaran/eikonal/upwind"
)

// marcher holds the mutable state of one Fast Marching pass. The same type
// drives the main solve and the bounded pass on a refined sub-grid.
type marcher struct {
	g        *grid.Grid
	slowness []float64
	tt       []float64
	status   []upwind.Status
	q        *pqueue.Queue[float64]
	maxOrder int

	// stop, when non-nil, ends the pass as soon as a node on a flagged face is finalized.
	stop *grid.Faces

	far     int // nodes still FAR
	total   int
	percent int

	maxTime    float64
	progress   func(int)
	onFinalize func(int, float64)
	logger     *slog.Logger
}

// newMarcher builds a marcher over fields the caller already seeded, and
// queues the CLOSE ids.
func newMarcher(g *grid.Grid, slowness, tt []float64, status []upwind.Status, closeIDs []int, maxOrder int, logger *slog.Logger) *marcher {
	nr, nt, np := g.Shape()
	m := &marcher{
		g:        g,
		slowness: slowness,
		tt:       tt,
		status:   status,
		maxOrder: maxOrder,
		total:    g.Len(),
		maxTime:  math.Inf(-1),
		logger:   logger,
	}
	m.q = pqueue.New(g.Len(), nr*nt+nt*np+nr*np, func(id int) float64 { return m.tt[id] })
	m.q.Build(closeIDs)
	for _, st := range status {
		if st == upwind.Far {
			m.far++
		}
	}
	return m
}

// process pops nodes until the heap is empty or an early-exit face is reached.
func (m *marcher) process() {
	for m.q.Len() > 0 {
		// 1) Finalize the earliest CLOSE node.
		idx := m.q.Pop()
		m.status[idx] = upwind.Alive
		t0 := m.tt[idx]
		if m.onFinalize != nil {
			m.onFinalize(idx, t0)
		}

		// 2) Early exit on a flagged face.
		if m.stop != nil && m.onStopFace(idx) {
			m.logger.Debug("fmm: front reached sub-grid boundary", "node", idx, "time", t0)
			break
		}

		// 3) Track the front; a pop below the maximum means the local solve
		//    produced an out-of-order estimate.
		if t0 > m.maxTime {
			m.maxTime = t0
		} else if t0 < m.maxTime {
			m.logger.Debug("fmm: finalized time below front", "node", idx, "time", t0, "max", m.maxTime)
		}

		// 4) Re-estimate the neighbors.
		m.relax(idx, t0)
		m.report()
	}
}

// onStopFace reports whether idx lies on a face flagged in m.stop.
func (m *marcher) onStopFace(idx int) bool {
	ir, it, ip := m.g.Unravel(idx)
	for f := grid.RMin; f <= grid.PMax; f++ {
		if m.stop[f] && m.g.OnFace(f, ir, it, ip) {
			return true
		}
	}
	return false
}

// relax updates every non-ALIVE neighbor of the node just finalized at idx0.
func (m *marcher) relax(idx0 int, t0 float64) {
	ir0, it0, ip0 := m.g.Unravel(idx0)
	for k, off := range grid.Offsets {
		ir, it, ip := ir0+off[0], it0+off[1], ip0+off[2]
		if !m.g.InBounds(ir, it, ip) {
			continue
		}
		idx := m.g.Index(ir, it, ip)
		if m.status[idx] == upwind.Alive {
			continue
		}

		// 1) Lazy candidate along the edge just crossed.
		h := m.g.Steps(ir, it)
		s := m.slowness[idx]
		lazy := t0 + h[k/2]*s

		// 2) High-order candidate, centred on the better of the two.
		prev := m.tt[idx]
		if lazy < prev {
			m.tt[idx] = lazy
		}
		t, ok := upwind.Solve(m.g, m.tt, m.status, idx, m.maxOrder, s, h)
		m.tt[idx] = prev
		if !ok || t < 0 {
			t = lazy
		}

		// 3) Forced causality.
		if t < m.maxTime {
			t = m.maxTime
		}

		// 4) Keep improvements only.
		if t >= prev {
			continue
		}
		m.tt[idx] = t
		switch m.status[idx] {
		case upwind.Close:
			m.q.Fix(idx)
		case upwind.Far:
			m.q.Push(idx)
			m.status[idx] = upwind.Close
			m.far--
		}
	}
}

// report emits the completion percentage when it changes.
func (m *marcher) report() {
	if m.progress == nil {
		return
	}
	p := 100 - m.far*100/m.total
	if p != m.percent {
		m.percent = p
		m.progress(p)
	}
}
