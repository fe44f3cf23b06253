package fsm

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eikonal/fmm"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/upwind"
)

// Solve fills tt with first-arrival travel times by fast sweeping.
//
// Validation follows fmm.Solve. Seeding uses fmm.InitSource, or
// fmm.InitSourceRefined when WithRefinement is given; seeded nodes keep the
// caller's tt value. Iteration stops after a cycle whose largest update is
// at most Epsilon, or after MaxCycles cycles.
func Solve(g *grid.Grid, slowness, tt []float64, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	seeded, err := validate(g, slowness, tt, &cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	// 3) Seed; everything ALIVE now stays fixed.
	n := g.Len()
	status := make([]upwind.Status, n)
	for i := range tt {
		if seeded && cfg.Seeds[i] {
			status[i] = upwind.Alive
			continue
		}
		tt[i] = upwind.Unreached
		status[i] = upwind.Far
	}
	if !seeded {
		if cfg.RefineFactor > 1 {
			if _, err := fmm.InitSourceRefined(g, slowness, tt, status, cfg.Source,
				cfg.MaxOrder, cfg.RefineFactor, cfg.RefineRadius, cfg.Logger); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadRefinement, err)
			}
		} else {
			fmm.InitSource(g, slowness, tt, status, cfg.Source)
		}
	}
	fixed := make([]bool, n)
	for i, st := range status {
		fixed[i] = st == upwind.Alive
	}

	// 4) Iterate.
	sw := &sweeper{g: g, slowness: slowness, fixed: fixed, maxOrder: cfg.MaxOrder}
	var run func() float64
	if cfg.Workers > 1 {
		p := newParallel(sw, cfg.Workers, n)
		run = func() float64 { return p.cycle(tt, status) }
	} else {
		run = func() float64 { return sequentialCycle(sw, tt, status) }
	}

	res := &Result{}
	percent := 0
	for res.Cycles < cfg.MaxCycles {
		res.MaxUpdate = run()
		res.Cycles++
		res.Sweeps += 8
		promote(tt, status)
		cfg.Logger.Debug("fsm: cycle finished", "cycle", res.Cycles, "max_update", res.MaxUpdate)

		converged := cfg.Epsilon > 0 && res.MaxUpdate <= cfg.Epsilon
		if cfg.Progress != nil {
			p := res.Cycles * 100 / cfg.MaxCycles
			if converged {
				p = 100
			}
			if p != percent {
				percent = p
				cfg.Progress(p)
			}
		}
		if converged {
			break
		}
	}

	if cfg.ReturnStatus {
		res.Status = status
	}
	cfg.Logger.Debug("fsm: solve finished",
		"nodes", n, "cycles", res.Cycles, "sweeps", res.Sweeps,
		"parallel", cfg.Workers > 1, "runtime", time.Since(start))

	return res, nil
}

// sequentialCycle runs the 8 sweeps in place and returns the largest update
// over the whole cycle.
func sequentialCycle(sw *sweeper, tt []float64, status []upwind.Status) float64 {
	var maxUpdate float64
	for dir := 0; dir < 8; dir++ {
		maxUpdate = max(maxUpdate, sw.sweep(dir, tt, status))
	}
	return maxUpdate
}

// parallel owns the private per-sweep buffers, reused across cycles.
type parallel struct {
	sw      *sweeper
	workers int
	tt      [8][]float64
	status  [8][]upwind.Status
}

func newParallel(sw *sweeper, workers, n int) *parallel {
	p := &parallel{sw: sw, workers: workers}
	for k := 0; k < 8; k++ {
		p.tt[k] = make([]float64, n)
		p.status[k] = make([]upwind.Status, n)
	}
	return p
}

// cycle copies the shared field into 8 buffers, sweeps them concurrently,
// then merges with an element-wise minimum and returns the largest change.
func (p *parallel) cycle(tt []float64, status []upwind.Status) float64 {
	// 1) Private copies; every reached node is usable by every sweep.
	for k := 0; k < 8; k++ {
		copy(p.tt[k], tt)
		for i, st := range status {
			if st == upwind.Far {
				p.status[k][i] = upwind.Far
			} else {
				p.status[k][i] = upwind.Alive
			}
		}
	}

	// 2) Fan out.
	var eg errgroup.Group
	eg.SetLimit(p.workers)
	for dir := 0; dir < 8; dir++ {
		dir := dir
		eg.Go(func() error {
			p.sw.sweep(dir, p.tt[dir], p.status[dir])
			return nil
		})
	}
	_ = eg.Wait()

	// 3) Merge.
	var maxUpdate float64
	for i := range tt {
		m := tt[i]
		for k := 0; k < 8; k++ {
			m = min(m, p.tt[k][i])
		}
		if m < tt[i] {
			maxUpdate = max(maxUpdate, tt[i]-m)
			tt[i] = m
		}
	}
	return maxUpdate
}

// promote marks every reached node ALIVE so the next cycle can use it.
func promote(tt []float64, status []upwind.Status) {
	for i, t := range tt {
		if upwind.Reached(t) {
			status[i] = upwind.Alive
		}
	}
}

// validate checks the inputs of Solve and reports whether a non-empty seed
// mask was given.
func validate(g *grid.Grid, slowness, tt []float64, cfg *Options) (bool, error) {
	if g == nil {
		return false, ErrNilGrid
	}
	if err := g.CheckField("slowness", slowness); err != nil {
		return false, fmt.Errorf("%w: %w", ErrFieldSize, err)
	}
	if err := g.CheckField("tt", tt); err != nil {
		return false, fmt.Errorf("%w: %w", ErrFieldSize, err)
	}
	for i, v := range slowness {
		if !(v > 0) || math.IsInf(v, 0) {
			return false, fmt.Errorf("%w: slowness[%d]=%g", ErrNonPositiveSlowness, i, v)
		}
	}

	if cfg.Seeds != nil {
		if len(cfg.Seeds) != g.Len() {
			return false, fmt.Errorf("%w: seeds has %d values, grid has %d nodes", ErrFieldSize, len(cfg.Seeds), g.Len())
		}
		for _, s := range cfg.Seeds {
			if s {
				return true, nil
			}
		}
	}

	if !cfg.HasSource {
		return false, ErrNoSource
	}
	if !g.Contains(cfg.Source) {
		return false, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	return false, nil
}
