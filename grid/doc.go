// Package grid describes the structured 3D grids that the eikonal solvers
// work on, together with the index, coordinate and search helpers shared by
// every other package of the module.
//
// What:
//
//   - Grid wraps three ascending, uniformly spaced coordinate axes plus a
//     coordinate-system flag. In Cartesian mode the axes are (x, y, z); in
//     Spherical mode they are (r, θ, φ): radius, colatitude and azimuth.
//   - Nodes are addressed by a flat row-major index ir*nt*np + it*np + ip.
//     Ravel/Unravel and the Index/Unravel methods convert between the two.
//   - Bisect locates the bracketing interval of a value in a sorted axis.
//   - Steps returns the physical length of a unit index step along each
//     axis at a node, scaling the angular axes by r and r·sinθ.
//   - Refine carves a finer sub-grid around a node, used for near-source
//     refinement.
//
// Geometry is immutable once built: New deep-copies the axes, and nothing in
// the module mutates a Grid during a solve.
//
// Complexity:
//
//   - New:              O(nr + nt + np).
//   - Index, Unravel:   O(1).
//   - Bisect, Locate:   O(log n) per axis.
//   - Refine:           O(factor·radius) per axis.
//
// Errors:
//
//   - ErrEmptyAxis:        an axis has no nodes.
//   - ErrNotAscending:     an axis is not strictly increasing.
//   - ErrNonUniformAxis:   an axis spacing varies by more than 1e-6 relative.
//   - ErrBadRadius:        a spherical grid has a non-positive radius node.
//   - ErrFieldSize:        a flattened field does not match the node count.
//   - ErrBadRefinement:    refinement factor < 2 or radius < 1.
package grid
