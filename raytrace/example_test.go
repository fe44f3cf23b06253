package raytrace_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/fmm"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/raytrace"
)

// ExampleTrace traces a ray back to the source after an FMM solve.
func ExampleTrace() {
	ax := make([]float64, 21)
	for i := range ax {
		ax[i] = 0.05 * float64(i)
	}
	g, _ := grid.New(ax, ax, []float64{0}, grid.Cartesian)
	slowness := make([]float64, g.Len())
	for i := range slowness {
		slowness[i] = 1
	}
	tt := make([]float64, g.Len())
	src := r3.Vec{X: 0.1, Y: 0.5}
	if _, err := fmm.Solve(g, slowness, tt, fmm.WithSource(src)); err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := raytrace.Trace(g, tt, src, r3.Vec{X: 0.9, Y: 0.5}, raytrace.WithSegmentLength(0.02))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last := path.Points[len(path.Points)-1]
	fmt.Printf("time=%.1f ends at source: %v\n", path.Time, last == src)
	// Output:
	// time=0.8 ends at source: true
}
