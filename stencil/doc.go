// Package stencil provides the one-sided finite-difference coefficients used
// by the upwind eikonal update.
//
// For an upwind derivative of order k along one axis, the derivative at the
// node being updated is written as a·T − b, where T is the unknown travel time
// and b collects the already known upwind times. Coefficients returns (a, b)
// together with d = a·pt[0] − b, the current derivative estimate.
//
//	order 1:  a = 1/h      b = pt1/h
//	order 2:  a = 3/(2h)   b = (4·pt1 − pt2)/(2h)
//	order 3:  a = 11/(6h)  b = (18·pt1 − 9·pt2 + 2·pt3)/(6h)
//
// Order 0 means "no usable neighbor" and yields zeros. Any other order is a
// programming error and panics with an error wrapping ErrUnsupportedOrder.
package stencil
