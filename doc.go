// Package eikonal computes first-arrival travel times through heterogeneous
// media on structured 3D grids, and traces rays back through them.
//
// What is inside?
//
//	grid/     Cartesian or spherical (r, θ, φ) grids, index math, bisection
//	stencil/  one-sided upwind finite-difference coefficients, orders 1–3
//	interp/   trilinear interpolation of a field and its gradient
//	pqueue/   min-heap of node ids with a reverse index for decrease-key
//	upwind/   node states and the per-node quadratic update
//	fmm/      Fast Marching, point or seeded sources, optional refinement
//	fsm/      Fast Sweeping, sequential or with one goroutine per direction
//	raytrace/ steepest-descent ray paths from receiver to source
//
// Both solvers share the same contract: callers hand in a grid, a slowness
// field and a travel-time buffer of g.Len() values, and get the buffer
// filled in place. Fields are flattened with φ varying fastest:
//
//	idx = ir·(nt·np) + it·np + ip
//
// Quick example:
//
//	g, _ := grid.New(xs, ys, zs, grid.Cartesian)
//	tt := make([]float64, g.Len())
//	_, err := fmm.Solve(g, slowness, tt, fmm.WithSource(r3.Vec{X: 1, Y: 2, Z: 0}))
//	path, err := raytrace.Trace(g, tt, src, rcv, raytrace.WithSegmentLength(0.1))
//
// See examples/ for a runnable comparison of the solvers.
//
//	go get github.com/katalvlaran/eikonal
package eikonal
