package fmm_test

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/eikonal/fmm"
	"github.com/katalvlaran/eikonal/grid"
)

// BenchmarkSolve measures a 41³ uniform solve for each stencil order.
func BenchmarkSolve(b *testing.B) {
	const n = 41
	ax := make([]float64, n)
	for i := range ax {
		ax[i] = float64(i) / (n - 1)
	}
	g, err := grid.New(ax, ax, ax, grid.Cartesian)
	if err != nil {
		b.Fatal(err)
	}
	s := make([]float64, g.Len())
	for i := range s {
		s[i] = 1
	}
	tt := make([]float64, g.Len())
	src := fmm.WithSource(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})

	for order := 1; order <= 3; order++ {
		b.Run(fmt.Sprintf("Order%d", order), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := fmm.Solve(g, s, tt, src, fmm.WithMaxOrder(order)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
