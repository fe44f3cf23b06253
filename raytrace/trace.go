package raytrace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/interp"
)

const (
	// maxHalvings bounds the step retries per point.
	maxHalvings = 5
	// minSlope floors the gradient magnitude used for the near-source time.
	minSlope = 1e-2
)

// Trace follows the steepest descent of tt from rcv back to src.
// The returned path starts at rcv, ends exactly at src and never has more
// than MaxPoints points.
func Trace(g *grid.Grid, tt []float64, src, rcv r3.Vec, opts ...Option) (*Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate.
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.CheckField("tt", tt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFieldSize, err)
	}
	if !(cfg.SegmentLength > 0) {
		return nil, ErrBadSegment
	}
	if !g.Contains(src) {
		return nil, fmt.Errorf("%w: source %v", ErrOutOfBounds, src)
	}
	if !g.Contains(rcv) {
		return nil, fmt.Errorf("%w: receiver %v", ErrOutOfBounds, rcv)
	}

	tr := &tracer{g: g, tt: tt, seg: cfg.SegmentLength}

	// 2) Near-source radius and the time it represents. The gradient is
	//    sampled one cell away since it vanishes at the source itself.
	sp := g.Spacing()
	h := g.Steps(0, 0)
	tr.limit = max(math.Sqrt(h[0]*h[0]+h[1]*h[1]+h[2]*h[2]), cfg.SegmentFactor*cfg.SegmentLength)
	off := r3.Add(src, r3.Vec{X: sp[0], Y: sp[1], Z: sp[2]})
	_, g0 := interp.AtWithGradient(g, tt, off)
	limt := tr.limit * max(r3.Norm(tr.physical(off, g0)), minSlope)

	// 3) Descend.
	travt, grad := interp.AtWithGradient(g, tt, rcv)
	dir := unit(tr.physical(rcv, grad))
	cur, trem := rcv, travt
	points := make([]r3.Vec, 0, min(cfg.MaxPoints, 64))
	for len(points) < cfg.MaxPoints-1 {
		points = append(points, cur)
		if trem <= limt || dir == (r3.Vec{}) {
			break
		}

		l := tr.seg
		var next r3.Vec
		var trem1 float64
		for i := 0; i < maxHalvings; i++ {
			next = tr.step(cur, dir, l)
			trem1, grad = interp.AtWithGradient(g, tt, next)
			if trem1 < trem {
				break
			}
			if g.Distance(cur, src) <= tr.limit {
				trem1 = 0
				break
			}
			l /= 2
		}
		cur, trem = next, trem1
		dir = unit(tr.physical(cur, grad))
	}
	points = append(points, src)

	cfg.Logger.Debug("raytrace: path traced", "points", len(points), "time", travt)
	return &Path{Points: points, Time: travt}, nil
}

// tracer carries the fixed inputs of one Trace call.
type tracer struct {
	g     *grid.Grid
	tt    []float64
	seg   float64
	limit float64
}

// physical converts a coordinate gradient at pt to a physical one.
func (tr *tracer) physical(pt, grad r3.Vec) r3.Vec {
	if tr.g.Coord() != grid.Spherical {
		return grad
	}
	return r3.Vec{
		X: grad.X,
		Y: grad.Y / pt.X,
		Z: grad.Z / (pt.X * grid.SinFloor(pt.Y)),
	}
}

// step moves l against the unit physical direction dir.
func (tr *tracer) step(pt, dir r3.Vec, l float64) r3.Vec {
	if tr.g.Coord() != grid.Spherical {
		return r3.Sub(pt, r3.Scale(l, dir))
	}
	return r3.Vec{
		X: pt.X - dir.X*l,
		Y: pt.Y - dir.Y*l/pt.X,
		Z: pt.Z - dir.Z*l/(pt.X*grid.SinFloor(pt.Y)),
	}
}

// unit returns v normalized, or the zero vector when v has no length.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 || math.IsNaN(n) {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
