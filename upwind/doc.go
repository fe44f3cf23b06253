// Package upwind holds the node state shared by the eikonal solvers and the
// high-order local update they both use.
//
// Every node is in one of three states:
//
//	Far   (-1)  no estimate yet, travel time is Unreached
//	Close ( 0)  tentative estimate, candidate for finalization
//	Alive ( 1)  final travel time
//
// Solve computes the upwind finite-difference estimate of |∇T| = s at one
// node. Along each axis it collects up to maxOrder strictly decreasing Alive
// neighbors on each side, builds both one-sided stencils (see package
// stencil), keeps the side with the larger derivative estimate and drops the
// axis when that estimate is negative. The per-axis terms (a·T − b)² sum to
// s², a quadratic A·T² − B·T + C = 0 whose larger root is the estimate.
//
// A degenerate quadratic is a normal outcome: Solve reports false and the
// caller falls back to its first-order ("lazy") estimate.
package upwind
