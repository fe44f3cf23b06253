package fsm

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/stencil"
	"github.com/katalvlaran/eikonal/upwind"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("fsm: grid is nil")
	// ErrFieldSize indicates a slowness, travel-time or seed array of the wrong length.
	ErrFieldSize = errors.New("fsm: field size does not match grid")
	// ErrNonPositiveSlowness indicates a slowness value that is not a positive finite number.
	ErrNonPositiveSlowness = errors.New("fsm: slowness must be positive and finite")
	// ErrNoSource indicates that neither WithSource nor a non-empty seed mask was given.
	ErrNoSource = errors.New("fsm: no source and no seeded nodes")
	// ErrSourceOutOfBounds indicates a source point outside the grid box.
	ErrSourceOutOfBounds = errors.New("fsm: source outside grid")
	// ErrBadMaxOrder indicates WithMaxOrder outside [1, 3].
	ErrBadMaxOrder = errors.New("fsm: max order must be in [1, 3]")
	// ErrBadRefinement indicates WithRefinement with factor < 2 or radius < 1.
	ErrBadRefinement = errors.New("fsm: refinement needs factor >= 2 and radius >= 1")
	// ErrBadMaxCycles indicates WithMaxCycles below 1.
	ErrBadMaxCycles = errors.New("fsm: max cycles must be at least 1")
)

// Defaults.
const (
	DefaultMaxOrder  = 2
	DefaultEpsilon   = 1e-6
	DefaultMaxCycles = 20
)

// Options configures a Fast Sweeping solve.
type Options struct {
	Source       r3.Vec
	HasSource    bool
	Seeds        []bool
	MaxOrder     int
	RefineFactor int
	RefineRadius int

	// Epsilon stops iteration once a cycle changes no node by more than it.
	// Zero or negative disables the early stop.
	Epsilon   float64
	MaxCycles int

	// Workers bounds the concurrent sweeps in parallel mode; 1 means sequential.
	Workers int

	Progress     func(percent int)
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

// WithSeeds marks nodes whose tt value is fixed. See fmm.SeedsFromNonZero
// for building a mask from the "non-zero means known" convention.
func WithSeeds(mask []bool) Option {
	return func(o *Options) {
		o.Seeds = mask
	}
}

// WithMaxOrder sets the highest upwind stencil order (1..3).
func WithMaxOrder(k int) Option {
	return func(o *Options) {
		if k < 1 || k > stencil.MaxOrder {
			panic(ErrBadMaxOrder.Error())
		}
		o.MaxOrder = k
	}
}

// WithRefinement seeds the source through fmm.InitSourceRefined.
func WithRefinement(factor, radius int) Option {
	return func(o *Options) {
		if factor < 2 || radius < 1 {
			panic(ErrBadRefinement.Error())
		}
		o.RefineFactor = factor
		o.RefineRadius = radius
	}
}

// WithEpsilon sets the convergence tolerance; eps <= 0 runs every cycle.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxCycles caps the number of 8-sweep cycles.
func WithMaxCycles(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxCycles.Error())
		}
		o.MaxCycles = n
	}
}

// WithParallel runs the 8 sweeps of each cycle concurrently on private
// copies, at most workers at a time. workers <= 0 uses GOMAXPROCS;
// workers == 1 is the sequential mode.
func WithParallel(workers int) Option {
	return func(o *Options) {
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.Workers = workers
	}
}

// WithProgress installs a callback reporting the share of the cycle budget
// used; it reports 100 once iteration stops. It always runs on the goroutine
// that called Solve.
func WithProgress(fn func(percent int)) Option {
	return func(o *Options) {
		o.Progress = fn
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

// DefaultOptions returns sequential sweeping at order 2, epsilon 1e-6 and
// 20 cycles, with a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxOrder:  DefaultMaxOrder,
		Epsilon:   DefaultEpsilon,
		MaxCycles: DefaultMaxCycles,
		Workers:   1,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result summarizes a finished solve.
type Result struct {
	// Sweeps is the number of directional sweeps executed (8 per cycle).
	Sweeps int
	// Cycles is the number of completed cycles.
	Cycles int
	// MaxUpdate is the largest single-node change of the last cycle.
	MaxUpdate float64
	// Status is the final per-node state; nil unless WithReturnStatus was given.
	Status []upwind.Status
}
