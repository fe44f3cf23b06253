// Package raytrace recovers first-arrival ray paths from a solved
// travel-time field.
//
// Trace starts at the receiver and repeatedly steps a fixed arc length
// against the interpolated travel-time gradient (steepest descent), halving
// the step up to five times when a step fails to decrease the remaining
// time. It stops when the remaining time falls below what is left to cover
// within the near-source radius, then appends the exact source point.
//
// Points are in grid coordinates: (x, y, z) on Cartesian grids and
// (r, θ, φ) on spherical ones, where steps in θ and φ are scaled by r and
// r·sinθ so the arc length is physical.
//
// Errors (sentinel):
//
//   - ErrNilGrid      grid is nil.
//   - ErrFieldSize    travel-time field length differs from the grid.
//   - ErrBadSegment   segment length not set or not positive.
//   - ErrBadCapacity  point budget below 2 (via option panic).
//   - ErrOutOfBounds  source or receiver outside the grid box.
package raytrace
