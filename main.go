package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/Oo1Insane1oO/snakers/game"
	"github.com/Oo1Insane1oO/snakers/game/manager"
	"github.com/Oo1Insane1oO/snakers/game/types"
	"github.com/Oo1Insane1oO/snakers/ui"
)

func main() {
	speed := flag.Int("speed", 150, "Snake step interval in milliseconds (lower = faster)")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	width := getEnvInt("WINDOW_WIDTH", 700)
	height := getEnvInt("WINDOW_HEIGHT", 800)
	rl.InitWindow(int32(width), int32(height), "Snakers")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g, err := game.New(types.DefaultGrid(), rng, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("starting game")
	}

	renderer := ui.NewRenderer()
	stepInterval := time.Duration(*speed) * time.Millisecond
	lastStep := time.Now()

	// Input is polled every frame and the latest intent remembered; the
	// simulation consumes it on the next gated step.
	intent := game.IntentNone

	for !rl.WindowShouldClose() {
		switch {
		case rl.IsKeyDown(rl.KeyLeft):
			intent = game.TurnLeft
		case rl.IsKeyDown(rl.KeyRight):
			intent = game.TurnRight
		case rl.IsKeyDown(rl.KeyUp):
			intent = game.TurnUp
		case rl.IsKeyDown(rl.KeyDown):
			intent = game.TurnDown
		}

		if g.Round.Phase() == manager.Lost && rl.IsKeyPressed(rl.KeySpace) {
			if err := g.Reset(); err != nil {
				log.Fatal().Err(err).Msg("resetting round")
			}
			intent = game.IntentNone
		}

		if time.Since(lastStep) >= stepInterval {
			if err := g.Tick(intent); err != nil {
				log.Fatal().Err(err).Msg("advancing game")
			}
			lastStep = time.Now()
		}

		renderer.Draw(g)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
