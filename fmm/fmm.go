package fmm

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/upwind"
)

// Solve fills tt with first-arrival travel times for the given slowness field.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. slowness and tt must have g.Len() values (ErrFieldSize).
//  3. every slowness must be positive and finite (ErrNonPositiveSlowness).
//  4. a seed mask, if given, must have g.Len() values (ErrFieldSize).
//  5. without seeds a source is required (ErrNoSource) and must lie inside
//     the grid box (ErrSourceOutOfBounds).
//
// On success every node reachable from the seeds holds its travel time and
// the rest hold upwind.Unreached. tt is overwritten except at seeded nodes.
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

	// 3) Seed the front.
	n := g.Len()
	status := make([]upwind.Status, n)
	var closeIDs []int
	if seeded {
		for i := range tt {
			if cfg.Seeds[i] {
				status[i] = upwind.Close
				closeIDs = append(closeIDs, i)
				continue
			}
			tt[i] = upwind.Unreached
			status[i] = upwind.Far
		}
	} else {
		for i := range tt {
			tt[i] = upwind.Unreached
			status[i] = upwind.Far
		}
		if cfg.RefineFactor > 1 {
			closeIDs, err = InitSourceRefined(g, slowness, tt, status, cfg.Source,
				cfg.MaxOrder, cfg.RefineFactor, cfg.RefineRadius, cfg.Logger)
			if err != nil {
				return nil, err
			}
		} else {
			closeIDs = InitSource(g, slowness, tt, status, cfg.Source)
		}
	}

	// 4) March.
	m := newMarcher(g, slowness, tt, status, closeIDs, cfg.MaxOrder, cfg.Logger)
	m.progress = cfg.Progress
	m.onFinalize = cfg.OnFinalize
	m.process()

	// 5) Summarize.
	res := &Result{}
	for i, st := range status {
		if st == upwind.Alive {
			res.Alive++
			res.MaxTime = max(res.MaxTime, tt[i])
		}
	}
	if cfg.ReturnStatus {
		res.Status = status
	}
	cfg.Logger.Debug("fmm: solve finished",
		"nodes", n, "alive", res.Alive, "max_time", res.MaxTime, "runtime", time.Since(start))

	return res, nil
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
	if i, ok := checkSlowness(slowness); !ok {
		return false, fmt.Errorf("%w: slowness[%d]=%g", ErrNonPositiveSlowness, i, slowness[i])
	}

	seeded := false
	if cfg.Seeds != nil {
		if len(cfg.Seeds) != g.Len() {
			return false, fmt.Errorf("%w: seeds has %d values, grid has %d nodes", ErrFieldSize, len(cfg.Seeds), g.Len())
		}
		for _, s := range cfg.Seeds {
			if s {
				seeded = true
				break
			}
		}
	}
	if seeded {
		return true, nil
	}

	if !cfg.HasSource {
		return false, ErrNoSource
	}
	if !g.Contains(cfg.Source) {
		return false, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	return false, nil
}

// checkSlowness returns the first index whose value is not a positive finite number.
func checkSlowness(s []float64) (int, bool) {
	for i, v := range s {
		if !(v > 0) || math.IsInf(v, 0) {
			return i, false
		}
	}
	return 0, true
}
