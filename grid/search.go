package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bisect returns the index of the largest element of the ascending slice
// arr that is <= target, clamped to [0, len(arr)-1]:
//
//   - target is NaN          → 0
//   - target <= arr[0]       → 0
//   - target >= arr[n-1]     → n-1
//   - target == arr[i]       → i
//   - otherwise              → i with arr[i] < target < arr[i+1]
//
// Complexity: O(log n).
func Bisect(arr []float64, target float64) int {
	right := len(arr) - 1
	if math.IsNaN(target) || target <= arr[0] {
		return 0
	}
	if target >= arr[right] {
		return right
	}
	left := 0
	for left < right {
		mid := left + (right-left)>>1
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid
		}
	}
	return left - 1
}

// Bracket returns the nodes lo and hi enclosing x on axis a and the fraction
// of the way from lo to hi. x is clamped onto the axis first, NaN landing on
// the first node; a single-node axis gives lo == hi and frac 0.
func (g *Grid) Bracket(a int, x float64) (lo, hi int, frac float64) {
	axis := g.axis(a)
	n := len(axis)
	if math.IsNaN(x) {
		x = axis[0]
	}
	x = min(max(x, axis[0]), axis[n-1])
	lo = Bisect(axis, x)
	hi = min(lo+1, n-1)
	if hi != lo {
		frac = (x - axis[lo]) / (axis[hi] - axis[lo])
	}
	return lo, hi, frac
}

// Locate returns, per axis, the Bisect index of pt.
func (g *Grid) Locate(pt r3.Vec) (ir, it, ip int) {
	return Bisect(g.r, pt.X), Bisect(g.t, pt.Y), Bisect(g.p, pt.Z)
}

// Cell returns the lower corner of the cell holding pt. Unlike Locate it
// never returns the last node of an axis that has more than one node, so
// (ir+1, it+1, ip+1) is always a valid upper corner on those axes.
func (g *Grid) Cell(pt r3.Vec) (ir, it, ip int) {
	ir, it, ip = g.Locate(pt)
	if ir == g.n[AxisR]-1 && ir > 0 {
		ir--
	}
	if it == g.n[AxisT]-1 && it > 0 {
		it--
	}
	if ip == g.n[AxisP]-1 && ip > 0 {
		ip--
	}
	return ir, it, ip
}

// Nearest returns, per axis, the index of the node closest to pt.
func (g *Grid) Nearest(pt r3.Vec) (ir, it, ip int) {
	return nearest(g.r, pt.X), nearest(g.t, pt.Y), nearest(g.p, pt.Z)
}

func nearest(arr []float64, v float64) int {
	i := Bisect(arr, v)
	if i < len(arr)-1 && math.Abs(arr[i+1]-v) < math.Abs(arr[i]-v) {
		i++
	}
	return i
}
