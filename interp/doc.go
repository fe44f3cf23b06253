// Package interp implements trilinear interpolation of node fields on a
// grid.Grid, together with the interpolated gradient.
//
// Interpolation is split in two steps so callers that sample several fields
// at one point pay for the search once:
//
//	w := interp.Factorize(g, pt)  // bracketing nodes and 8 corner weights
//	t := w.Value(g, tt)           // Σ W·f over the 8 corners
//	grad := w.Gradient(g, tt)     // Σ W·∂f over the 8 corners
//
// Points outside the grid are clamped to the nearest face, so queries never
// index out of range. On an axis with a single node both brackets are that
// node and its weight fraction is zero.
//
// Gradient uses node derivatives: central differences on interior nodes,
// one-sided differences on the first and last node of an axis, and zero on a
// single-node axis. The result is divided by the axis spacing, so it is a
// derivative per coordinate unit (per radian on angular axes).
//
// Complexity: Factorize is O(log n) per axis; Value and Gradient are O(1).
package interp
