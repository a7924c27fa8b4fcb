package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/Oo1Insane1oO/snakers/game/types"
)

// ErrGridFull is returned when no free cell is left to place an apple on.
var ErrGridFull = errors.New("manager: no free cell for apple")

// Per-axis draws before giving up on rejection sampling. With the default
// 20-cell axis this fails only when the body occupies (nearly) every row or
// column.
const axisAttempts = 64

// AppleSpawner picks apple cells on the grid's step lattice. The generator is
// injected so tests can seed it.
type AppleSpawner struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewAppleSpawner(grid types.Grid, rng *rand.Rand) *AppleSpawner {
	return &AppleSpawner{grid: grid, rng: rng}
}

// PlaceApple returns a cell for the next apple, given every currently
// occupied cell. Each axis is resampled independently until its value differs
// from that axis's value of every occupied cell. That filter is stricter than
// free-cell sampling (it vetoes whole rows and columns), so when an axis
// exhausts its draw budget the spawner falls back to picking uniformly among
// the truly free cells.
func (s *AppleSpawner) PlaceApple(occupied []types.Vec) (types.Vec, error) {
	takenX := make(map[int]bool, len(occupied))
	takenY := make(map[int]bool, len(occupied))
	for _, p := range occupied {
		takenX[p.X] = true
		takenY[p.Y] = true
	}

	x, okX := s.sampleAxis(takenX)
	y, okY := s.sampleAxis(takenY)
	if okX && okY {
		return types.Vec{X: x, Y: y}, nil
	}
	return s.freeCell(occupied)
}

func (s *AppleSpawner) sampleAxis(taken map[int]bool) (int, bool) {
	for i := 0; i < axisAttempts; i++ {
		v := -s.grid.HalfExtent + s.rng.Intn(s.grid.Cells())*s.grid.Step
		if !taken[v] {
			return v, true
		}
	}
	return 0, false
}

func (s *AppleSpawner) freeCell(occupied []types.Vec) (types.Vec, error) {
	taken := make(map[types.Vec]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}
	var free []types.Vec
	for x := -s.grid.HalfExtent; x < s.grid.HalfExtent; x += s.grid.Step {
		for y := -s.grid.HalfExtent; y < s.grid.HalfExtent; y += s.grid.Step {
			if c := (types.Vec{X: x, Y: y}); !taken[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return types.Vec{}, ErrGridFull
	}
	return free[s.rng.Intn(len(free))], nil
}
