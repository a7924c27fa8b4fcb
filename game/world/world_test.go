package world

import (
	"testing"

	"github.com/Oo1Insane1oO/snakers/game/types"
)

func TestSpawnAndLookup(t *testing.T) {
	w := New()
	a := w.Spawn(types.Vec{X: 10, Y: -20})
	b := w.Spawn(types.Vec{X: 0, Y: 0})

	if a == b {
		t.Fatalf("expected distinct handles, got %d twice", a)
	}
	if got := w.Pos(a); got != (types.Vec{X: 10, Y: -20}) {
		t.Errorf("Pos(a) = %v", got)
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, want 2", w.Count())
	}

	w.SetPos(a, types.Vec{X: 30, Y: 30})
	if got := w.Pos(a); got != (types.Vec{X: 30, Y: 30}) {
		t.Errorf("Pos(a) after SetPos = %v", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	w := New()
	a := w.Spawn(types.Vec{})
	w.Spawn(types.Vec{X: 10})

	w.Remove(a)
	if w.Count() != 1 {
		t.Errorf("Count() after Remove = %d, want 1", w.Count())
	}

	w.Clear()
	if w.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", w.Count())
	}

	// Handles stay unique across Clear.
	c := w.Spawn(types.Vec{})
	if c == a {
		t.Errorf("handle %d reused after Clear", c)
	}
}

func TestMissingHandlePanics(t *testing.T) {
	w := New()
	h := w.Spawn(types.Vec{})
	w.Remove(h)

	defer func() {
		if recover() == nil {
			t.Fatal("Pos on a removed handle did not panic")
		}
	}()
	w.Pos(h)
}
