// Package world stores the positions of all placed entities behind stable
// handles. The simulation never holds positions directly; body segments and
// the apple are handles whose positions are read and written through here,
// which is also what the renderer draws from.
package world

import (
	"fmt"

	"github.com/Oo1Insane1oO/snakers/game/types"
)

// Handle identifies one positioned entity for its lifetime. Handles are never
// reused within a round.
type Handle int

type World struct {
	positions map[Handle]types.Vec
	next      Handle
}

func New() *World {
	return &World{positions: make(map[Handle]types.Vec)}
}

// Spawn places a new entity and returns its handle.
func (w *World) Spawn(p types.Vec) Handle {
	h := w.next
	w.next++
	w.positions[h] = p
	return h
}

// Pos returns the entity's position. A missing handle is a broken invariant,
// not a runtime condition, so it panics.
func (w *World) Pos(h Handle) types.Vec {
	p, ok := w.positions[h]
	if !ok {
		panic(fmt.Sprintf("world: no entity for handle %d", h))
	}
	return p
}

func (w *World) SetPos(h Handle, p types.Vec) {
	if _, ok := w.positions[h]; !ok {
		panic(fmt.Sprintf("world: no entity for handle %d", h))
	}
	w.positions[h] = p
}

func (w *World) Remove(h Handle) {
	delete(w.positions, h)
}

// Clear removes every entity. Handles stay monotonic across rounds.
func (w *World) Clear() {
	w.positions = make(map[Handle]types.Vec)
}

func (w *World) Count() int {
	return len(w.positions)
}
