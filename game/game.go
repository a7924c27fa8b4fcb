// Package game owns the whole simulation: the world arena, the snake body,
// the apple, and the round state, advanced in a fixed order once per tick.
// The host decides when ticks happen and what the player asked for; nothing
// in here touches a window, a keyboard, or a clock.
package game

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/Oo1Insane1oO/snakers/game/entity"
	"github.com/Oo1Insane1oO/snakers/game/manager"
	"github.com/Oo1Insane1oO/snakers/game/types"
	"github.com/Oo1Insane1oO/snakers/game/world"
)

// Intent is the decoded player input for one tick. The host maps raw key
// state to one of these; the simulation never sees the keyboard.
type Intent int

const (
	IntentNone Intent = iota
	TurnLeft
	TurnRight
	TurnUp
	TurnDown
)

func (i Intent) vec() types.Vec {
	switch i {
	case TurnLeft:
		return types.Left
	case TurnRight:
		return types.Right
	case TurnUp:
		return types.Up
	case TurnDown:
		return types.Down
	default:
		return types.Vec{}
	}
}

// The snake always spawns here, stationary, one segment long.
var spawnPos = types.Vec{X: -types.HalfExtent, Y: -types.HalfExtent}

type Game struct {
	Grid  types.Grid
	World *world.World
	Snake *entity.Body
	Round *manager.RoundState

	spawner *manager.AppleSpawner
	apple   world.Handle
	log     zerolog.Logger
}

// New builds a game and spawns the first round. The generator seeds apple
// placement; pass a fixed-seed source for deterministic runs.
func New(grid types.Grid, rng *rand.Rand, log zerolog.Logger) (*Game, error) {
	g := &Game{
		Grid:    grid,
		World:   world.New(),
		Round:   manager.NewRoundState(),
		spawner: manager.NewAppleSpawner(grid, rng),
		log:     log,
	}
	if err := g.spawnRound(); err != nil {
		return nil, err
	}
	g.log.Info().
		Str("session", g.Round.SessionID()).
		Int("half_extent", grid.HalfExtent).
		Int("step", grid.Step).
		Msg("round started")
	return g, nil
}

// Apple returns the apple's handle; its position lives in the world like any
// segment's.
func (g *Game) Apple() world.Handle {
	return g.apple
}

func (g *Game) ApplePos() types.Vec {
	return g.World.Pos(g.apple)
}

// Tick advances the simulation by one step while in play: wrap positions
// onto the field, steer the head from the player's intent, advance every
// segment, then resolve apple eating and self-collision against the new
// positions. Outside the InGame phase it does nothing.
func (g *Game) Tick(intent Intent) error {
	if g.Round.Phase() != manager.InGame {
		return nil
	}

	g.Snake.Wrap()
	if d := intent.vec(); !d.IsZero() {
		g.Snake.Steer(d)
	}
	g.Snake.Advance()

	if g.Snake.HeadPos() == g.World.Pos(g.apple) {
		g.Snake.Grow()
		pos, err := g.spawner.PlaceApple(g.Snake.Occupied())
		if err != nil {
			return err
		}
		g.World.SetPos(g.apple, pos)
		g.Round.ScorePoint()
		g.log.Debug().
			Int("score", g.Round.Score()).
			Int("length", g.Snake.Len()).
			Msg("apple eaten")
	}

	if g.Snake.SelfCollision() {
		g.Round.Lose()
		g.log.Info().
			Int("score", g.Round.Score()).
			Int("length", g.Snake.Len()).
			Int("round", g.Round.Rounds()).
			Msg("round lost")
	}
	return nil
}

// Reset runs the sequence that takes a lost round back into play: clear the
// field, rebuild the starting body, place a fresh apple, zero the score.
// It does nothing unless the round is Lost.
func (g *Game) Reset() error {
	if g.Round.Phase() != manager.Lost {
		return nil
	}
	if err := g.spawnRound(); err != nil {
		return err
	}
	g.Round.Restart()
	g.log.Info().
		Int("round", g.Round.Rounds()).
		Int("high_score", g.Round.HighScore()).
		Msg("round restarted")
	return nil
}

func (g *Game) spawnRound() error {
	g.World.Clear()
	g.Snake = entity.NewBody(g.Grid, g.World, spawnPos)
	pos, err := g.spawner.PlaceApple(g.Snake.Occupied())
	if err != nil {
		return err
	}
	g.apple = g.World.Spawn(pos)
	return nil
}
