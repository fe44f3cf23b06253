package raytrace

import (
	"errors"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by Trace.
var (
	ErrNilGrid     = errors.New("raytrace: grid is nil")
	ErrFieldSize   = errors.New("raytrace: travel-time field size does not match grid")
	ErrBadSegment  = errors.New("raytrace: segment length must be positive")
	ErrBadCapacity = errors.New("raytrace: point budget must be at least 2")
	ErrOutOfBounds = errors.New("raytrace: point outside grid")
)

// Defaults.
const (
	DefaultSegmentFactor = 3
	DefaultMaxPoints     = 10000
)

// Options configures Trace.
//
// SegmentLength – arc length of one step (required, > 0).
// SegmentFactor – the ray snaps to the source within max(cell diagonal, SegmentFactor·SegmentLength).
// MaxPoints     – upper bound on the number of returned points, source included.
type Options struct {
	SegmentLength float64
	SegmentFactor float64
	MaxPoints     int
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Trace.
type Option func(*Options)

// WithSegmentLength sets the step length. Panics with ErrBadSegment when l <= 0.
func WithSegmentLength(l float64) Option {
	return func(o *Options) {
		if !(l > 0) {
			panic(ErrBadSegment.Error())
		}
		o.SegmentLength = l
	}
}

// WithSegmentFactor sets the near-source snap factor. Negative values are treated as 0.
func WithSegmentFactor(f float64) Option {
	return func(o *Options) {
		o.SegmentFactor = max(f, 0)
	}
}

// WithMaxPoints sets the point budget. Panics with ErrBadCapacity when n < 2.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		if n < 2 {
			panic(ErrBadCapacity.Error())
		}
		o.MaxPoints = n
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

// DefaultOptions returns factor 3 and a 10000-point budget; the segment
// length has no default.
func DefaultOptions() Options {
	return Options{
		SegmentFactor: DefaultSegmentFactor,
		MaxPoints:     DefaultMaxPoints,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Path is a traced ray, ordered from receiver to source.
type Path struct {
	Points []r3.Vec
	// Time is the travel time interpolated at the receiver.
	Time float64
}
