package stencil

import (
	"errors"
	"fmt"
)

// MaxOrder is the highest supported upwind order.
const MaxOrder = 3

// ErrUnsupportedOrder is wrapped by the panic raised for an order outside [0, MaxOrder].
var ErrUnsupportedOrder = errors.New("stencil: unsupported order")

// Coefficients returns the upwind stencil for the given order.
// pt[0] is the current value at the node, pt[1..order] the upwind neighbors
// ordered by increasing distance; h is the physical step.
func Coefficients(order int, pt []float64, h float64) (a, b, d float64) {
	switch order {
	case 0:
		return 0, 0, 0
	case 1:
		a = 1 / h
		b = pt[1] / h
	case 2:
		a = 3 / (2 * h)
		b = (4*pt[1] - pt[2]) / (2 * h)
	case 3:
		a = 11 / (6 * h)
		b = (18*pt[1] - 9*pt[2] + 2*pt[3]) / (6 * h)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnsupportedOrder, order))
	}
	return a, b, a*pt[0] - b
}
