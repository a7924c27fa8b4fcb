package types

// Default playing field: lattice points at multiples of Step in
// [-HalfExtent, HalfExtent] on each axis, centered on the origin.
const (
	HalfExtent = 100
	Step       = 10
)

// Grid describes the playable area: HalfExtent is the wall distance from the
// center, Step the uniform cell size. Every position delta and spawn spacing
// is a multiple of Step.
type Grid struct {
	HalfExtent int
	Step       int
}

func DefaultGrid() Grid {
	return Grid{HalfExtent: HalfExtent, Step: Step}
}

// Cells returns the number of lattice cells per axis in [-HalfExtent,
// HalfExtent), the range apples spawn in.
func (g Grid) Cells() int {
	return 2 * g.HalfExtent / g.Step
}

// Vec is a 2D lattice vector, used both for quantized positions and for unit
// directions. A direction has exactly one nonzero axis, except the zero value
// a snake spawns with.
type Vec struct {
	X, Y int
}

// Unit directions. Y grows upward; the renderer owns the flip to screen space.
var (
	Up    = Vec{X: 0, Y: 1}
	Down  = Vec{X: 0, Y: -1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// SameAxis reports whether both vectors move along the same axis. Used to
// reject reversals: a snake already moving horizontally may not be steered
// horizontally, only vertically, and symmetrically.
func (v Vec) SameAxis(o Vec) bool {
	return (v.X != 0 && o.X != 0) || (v.Y != 0 && o.Y != 0)
}
