package grid

import "errors"

// Sentinel errors for grid construction and field validation.
var (
	// ErrEmptyAxis indicates an axis with no nodes.
	ErrEmptyAxis = errors.New("grid: axis must have at least one node")
	// ErrNotAscending indicates an axis that is not strictly increasing.
	ErrNotAscending = errors.New("grid: axis must be strictly ascending")
	// ErrNonUniformAxis indicates an axis whose spacing is not constant.
	ErrNonUniformAxis = errors.New("grid: axis spacing must be uniform")
	// ErrBadRadius indicates a spherical grid whose radius axis reaches zero or below.
	ErrBadRadius = errors.New("grid: spherical radius must be positive")
	// ErrFieldSize indicates a flattened field whose length differs from the node count.
	ErrFieldSize = errors.New("grid: field length does not match grid size")
	// ErrBadRefinement indicates an invalid refinement factor or radius.
	ErrBadRefinement = errors.New("grid: refinement needs factor >= 2 and radius >= 1")
)

// uniformTol is the relative tolerance allowed between consecutive spacings.
const uniformTol = 1e-6

// minSin keeps r·sinθ away from zero at the poles.
const minSin = 1e-12

// CoordSystem selects how the three axes are interpreted.
type CoordSystem int

const (
	// Cartesian axes are (x, y, z).
	Cartesian CoordSystem = iota
	// Spherical axes are (r, θ, φ): radius, colatitude, azimuth (radians).
	Spherical
)

// String returns a short name for the coordinate system.
func (c CoordSystem) String() string {
	if c == Spherical {
		return "spherical"
	}
	return "cartesian"
}

// Axis numbers used for per-axis arrays.
const (
	AxisR = iota
	AxisT
	AxisP
)

// Face identifies one of the six faces of the grid box.
type Face int

const (
	RMin Face = iota
	RMax
	TMin
	TMax
	PMin
	PMax
)

// Faces is a per-face flag set, indexed by Face.
type Faces [6]bool

// AllFaces has every face flag set.
var AllFaces = Faces{true, true, true, true, true, true}

// Offsets are the six axis-aligned neighbor offsets, ordered -r, +r, -t, +t, -p, +p.
// Offsets[k] moves along axis k/2; even k step backwards.
var Offsets = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Grid is an immutable structured grid. The axes are private copies made in
// New; Axis hands out further copies, so nothing can move the geometry once
// it is built.
type Grid struct {
	r, t, p []float64
	coord   CoordSystem

	n       [3]int
	ntp     int
	spacing [3]float64
	sinT    []float64
}

// Window is the coarse index box covered by a refined sub-grid.
// Lo and Hi are inclusive; Factor is the refinement factor.
type Window struct {
	Lo, Hi [3]int
	Factor int
}
