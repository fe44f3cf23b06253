package grid_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/grid"
)

// ExampleNew builds a small Cartesian grid and walks between flat and 3D indices.
func ExampleNew() {
	g, err := grid.New(
		[]float64{0, 1, 2},
		[]float64{0, 1, 2, 3},
		[]float64{0, 0.5},
		grid.Cartesian,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	idx := g.Index(1, 2, 1)
	ir, it, ip := g.Unravel(idx)
	fmt.Println(g.Len(), idx, ir, it, ip)
	fmt.Println(g.Node(idx))
	fmt.Println(g.Cell(r3.Vec{X: 2, Y: 0.5, Z: 0.25}))
	// Output:
	// 24 13 1 2 1
	// {1 2 0.5}
	// 1 0 0
}

// ExampleBisect shows the clamped lower-bracket search.
func ExampleBisect() {
	axis := []float64{0, 10, 20, 30}
	fmt.Println(grid.Bisect(axis, -1), grid.Bisect(axis, 10), grid.Bisect(axis, 25), grid.Bisect(axis, 99))
	// Output:
	// 0 1 2 3
}
