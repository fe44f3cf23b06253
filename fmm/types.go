package fmm

import (
	"errors"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/stencil"
	"github.com/katalvlaran/eikonal/upwind"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("fmm: grid is nil")

	// ErrFieldSize indicates a slowness, travel-time or seed array whose
	// length differs from the number of grid nodes.
	ErrFieldSize = errors.New("fmm: field size does not match grid")

	// ErrNonPositiveSlowness indicates a slowness value that is not a
	// positive finite number.
	ErrNonPositiveSlowness = errors.New("fmm: slowness must be positive and finite")

	// ErrNoSource indicates that neither WithSource nor a non-empty seed mask was given.
	ErrNoSource = errors.New("fmm: no source and no seeded nodes")

	// ErrSourceOutOfBounds indicates a source point outside the grid box.
	ErrSourceOutOfBounds = errors.New("fmm: source outside grid")

	// ErrBadMaxOrder indicates WithMaxOrder outside [1, 3].
	ErrBadMaxOrder = errors.New("fmm: max order must be in [1, 3]")

	// ErrBadRefinement indicates WithRefinement with factor < 2 or radius < 1.
	ErrBadRefinement = errors.New("fmm: refinement needs factor >= 2 and radius >= 1")
)

// DefaultMaxOrder is the upwind order used when WithMaxOrder is not given.
const DefaultMaxOrder = 2

// Options configures a Fast Marching solve.
//
// Source/HasSource – point source in grid coordinates (r, θ, φ or x, y, z).
// Seeds           – per-node mask of pre-seeded nodes; nil or all-false means none.
// MaxOrder        – highest upwind stencil order, 1..3.
// RefineFactor    – sub-grid refinement factor; 0 disables refinement.
// RefineRadius    – sub-grid half-width in coarse cells.
// Progress        – percentage callback (0..100), called when the value changes.
// OnFinalize      – called once per node as it becomes ALIVE in the main march.
// ReturnStatus    – keep the final status array in Result.Status.
// Logger          – debug logger; never nil after DefaultOptions.
type Options struct {
	Source       r3.Vec
	HasSource    bool
	Seeds        []bool
	MaxOrder     int
	RefineFactor int
	RefineRadius int
	Progress     func(percent int)
	OnFinalize   func(idx int, t float64)
	ReturnStatus bool
	Logger       *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithSource sets the point source.
func WithSource(pt r3.Vec) Option {
	return func(o *Options) {
		o.Source = pt
		o.HasSource = true
	}
}

// WithSeeds marks nodes whose tt value is already known. The mask is read,
// never modified. When any entry is true the source is ignored.
func WithSeeds(mask []bool) Option {
	return func(o *Options) {
		o.Seeds = mask
	}
}

// SeedsFromNonZero returns a mask that is true wherever tt is non-zero.
func SeedsFromNonZero(tt []float64) []bool {
	mask := make([]bool, len(tt))
	for i, t := range tt {
		mask[i] = t != 0
	}
	return mask
}

// WithMaxOrder sets the highest upwind stencil order.
// Panics with ErrBadMaxOrder outside [1, 3].
func WithMaxOrder(k int) Option {
	return func(o *Options) {
		if k < 1 || k > stencil.MaxOrder {
			panic(ErrBadMaxOrder.Error())
		}
		o.MaxOrder = k
	}
}

// WithRefinement enables near-source grid refinement.
// Panics with ErrBadRefinement when factor < 2 or radius < 1.
func WithRefinement(factor, radius int) Option {
	return func(o *Options) {
		if factor < 2 || radius < 1 {
			panic(ErrBadRefinement.Error())
		}
		o.RefineFactor = factor
		o.RefineRadius = radius
	}
}

// WithProgress installs a progress callback. It runs on the solving
// goroutine and must not block.
func WithProgress(fn func(percent int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithOnFinalize installs a callback fired for every node popped from the heap.
func WithOnFinalize(fn func(idx int, t float64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithReturnStatus keeps the final status array in the result.
func WithReturnStatus() Option {
	return func(o *Options) {
		o.ReturnStatus = true
	}
}

// WithLogger sets the logger for debug output. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the configuration used before options are applied.
//
// Defaults:
//   - no source, no seeds
//   - MaxOrder: 2
//   - refinement disabled
//   - no callbacks, status not returned
//   - Logger discards everything
func DefaultOptions() Options {
	return Options{
		MaxOrder: DefaultMaxOrder,
		Logger:   discardLogger(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result summarizes a finished solve. Travel times are written to the tt
// slice given to Solve.
type Result struct {
	// Status is the final per-node state; nil unless WithReturnStatus was given.
	Status []upwind.Status
	// Alive is the number of finalized nodes.
	Alive int
	// MaxTime is the largest travel time among ALIVE nodes.
	MaxTime float64
}
