// Package fsm computes first-arrival travel times with the Fast Sweeping
// Method.
//
// Fast Sweeping applies the same local upwind update as Fast Marching (see
// packages upwind and fmm) but visits nodes in fixed Gauss-Seidel orders
// instead of heap order. One cycle is 8 sweeps, one per combination of
// increasing or decreasing traversal along each axis; each characteristic
// direction is handled exactly by at least one of them. Cycles repeat until
// the largest change of any node in a cycle drops to the tolerance or the
// cycle budget runs out.
//
// Modes:
//
//   - Sequential (default): one shared field updated in place, so later nodes
//     in a sweep see updates made earlier in the same sweep.
//   - Parallel (WithParallel): every sweep of a cycle works on a private copy
//     of the field taken at the start of the cycle. The copies run through a
//     bounded errgroup and are merged with an element-wise minimum once all
//     have finished. No memory is shared between the sweeps of a cycle.
//
// Nodes that are ALIVE when sweeping starts (seeded nodes, or the source node
// chosen by fmm.InitSource) are fixed and never overwritten.
//
// Complexity:
//
//   - Time:  O(C·8·N) for C cycles over N nodes.
//   - Space: O(N) sequential, O(9·N) parallel.
//
// Errors mirror package fmm: ErrNilGrid, ErrFieldSize, ErrNonPositiveSlowness,
// ErrNoSource and ErrSourceOutOfBounds are returned; ErrBadMaxOrder,
// ErrBadRefinement and ErrBadMaxCycles are carried by option panics.
package fsm
