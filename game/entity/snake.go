package entity

import (
	"fmt"

	"github.com/Oo1Insane1oO/snakers/game/types"
	"github.com/Oo1Insane1oO/snakers/game/world"
)

// Body is the snake: an ordered list of segment handles (head first) and a
// parallel queue of directions, where dirs[i] is the direction segment i will
// move on the next Advance. Only the head's slot is ever written by steering;
// the rest of the queue is filled by the rotation in Advance, which is what
// makes each segment trail the one ahead of it through turns without any
// position history.
type Body struct {
	grid     types.Grid
	world    *world.World
	segments []world.Handle
	dirs     []types.Vec
}

// NewBody spawns a one-segment body at start with no direction; it stays put
// until the first Steer.
func NewBody(grid types.Grid, w *world.World, start types.Vec) *Body {
	return &Body{
		grid:     grid,
		world:    w,
		segments: []world.Handle{w.Spawn(start)},
		dirs:     []types.Vec{{}},
	}
}

// Steer points the head at d. A request on the head's current motion axis is
// ignored, so the snake can never reverse into itself; perpendicular turns
// always take. A freshly spawned head (zero direction) accepts anything.
func (b *Body) Steer(d types.Vec) {
	if b.dirs[0].SameAxis(d) {
		return
	}
	b.dirs[0] = d
}

// Advance moves every segment by its own pre-advance direction, then rotates
// the queue: the tail's just-consumed direction drops off the back and a copy
// of the head's direction is pushed on the front. After the rotation each
// non-head segment holds, for the next tick, the direction the segment ahead
// of it used on this one.
func (b *Body) Advance() {
	b.mustBeConsistent()
	for i, h := range b.segments {
		b.world.SetPos(h, b.world.Pos(h).Add(b.dirs[i].Scale(b.grid.Step)))
	}
	rotated := make([]types.Vec, len(b.dirs))
	rotated[0] = b.dirs[0]
	copy(rotated[1:], b.dirs[:len(b.dirs)-1])
	b.dirs = rotated
}

// Grow appends one segment directly behind the tail, inheriting the tail's
// direction. Called once per apple eaten.
func (b *Body) Grow() {
	b.mustBeConsistent()
	tail := b.segments[len(b.segments)-1]
	tailDir := b.dirs[len(b.dirs)-1]
	pos := b.world.Pos(tail).Add(tailDir.Scale(-b.grid.Step))
	b.segments = append(b.segments, b.world.Spawn(pos))
	b.dirs = append(b.dirs, tailDir)
}

// SelfCollision reports whether the head occupies the same cell as any other
// segment. Positions are lattice-quantized, so exact equality is the test.
func (b *Body) SelfCollision() bool {
	head := b.world.Pos(b.segments[0])
	for _, h := range b.segments[1:] {
		if b.world.Pos(h) == head {
			return true
		}
	}
	return false
}

// Wrap folds every segment back onto the field, per axis: one step beyond
// +HalfExtent lands on -HalfExtent and the other way round, giving the field
// toroidal topology.
func (b *Body) Wrap() {
	bound := b.grid.HalfExtent + b.grid.Step
	for _, h := range b.segments {
		p := b.world.Pos(h)
		if p.X >= bound {
			p.X = -b.grid.HalfExtent
		}
		if p.X <= -bound {
			p.X = b.grid.HalfExtent
		}
		if p.Y >= bound {
			p.Y = -b.grid.HalfExtent
		}
		if p.Y <= -bound {
			p.Y = b.grid.HalfExtent
		}
		b.world.SetPos(h, p)
	}
}

func (b *Body) Len() int {
	return len(b.segments)
}

// Head returns the leading segment's handle.
func (b *Body) Head() world.Handle {
	return b.segments[0]
}

func (b *Body) HeadPos() types.Vec {
	return b.world.Pos(b.segments[0])
}

// Direction returns the head's current direction.
func (b *Body) Direction() types.Vec {
	return b.dirs[0]
}

// Segments returns the segment handles in anatomical order, head first. The
// slice is shared; callers must not modify it.
func (b *Body) Segments() []world.Handle {
	return b.segments
}

// Occupied returns the positions of all segments, head first.
func (b *Body) Occupied() []types.Vec {
	out := make([]types.Vec, len(b.segments))
	for i, h := range b.segments {
		out[i] = b.world.Pos(h)
	}
	return out
}

func (b *Body) mustBeConsistent() {
	if len(b.segments) == 0 || len(b.segments) != len(b.dirs) {
		panic(fmt.Sprintf("entity: body has %d segments but %d directions",
			len(b.segments), len(b.dirs)))
	}
}
