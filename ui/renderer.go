package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Oo1Insane1oO/snakers/game"
	"github.com/Oo1Insane1oO/snakers/game/manager"
	"github.com/Oo1Insane1oO/snakers/game/types"
)

const borderPadding = 10

// Renderer draws the simulation with raylib. It reads segment and apple
// positions through the world arena and owns the mapping from centered, y-up
// world coordinates to y-down screen cells.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Segments can sit on either bound after a wrap, so the drawable lattice
	// spans [-HalfExtent, HalfExtent] inclusive.
	cells := int32(2*g.Grid.HalfExtent/g.Grid.Step + 1)

	availableWidth := r.screenWidth - 2*borderPadding
	availableHeight := r.screenHeight - 2*borderPadding - 40 // 40 for the HUD line
	r.cellSize = min(availableWidth/cells, availableHeight/cells)
	r.gridWidth = r.cellSize * cells
	r.gridHeight = r.cellSize * cells
	r.offsetX = (r.screenWidth - r.gridWidth) / 2
	r.offsetY = 40 + (r.screenHeight-40-r.gridHeight)/2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.DarkGray)
	for x := int32(0); x < cells; x++ {
		for y := int32(0); y < cells; y++ {
			rl.DrawRectangleLines(
				r.offsetX+x*r.cellSize,
				r.offsetY+y*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	r.drawCell(g, g.ApplePos(), rl.Red)
	for i, h := range g.Snake.Segments() {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		r.drawCell(g, g.World.Pos(h), color)
	}

	hud := fmt.Sprintf("score %d   best %d   round %d",
		g.Round.Score(), g.Round.HighScore(), g.Round.Rounds()+1)
	rl.DrawText(hud, borderPadding, borderPadding, 20, rl.RayWhite)

	if g.Round.Phase() == manager.Lost {
		msg := "GAME OVER - press SPACE"
		w := rl.MeasureText(msg, 30)
		rl.DrawText(msg, (r.screenWidth-w)/2, r.screenHeight/2, 30, rl.RayWhite)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(g *game.Game, p types.Vec, color rl.Color) {
	col := int32((p.X + g.Grid.HalfExtent) / g.Grid.Step)
	row := int32((g.Grid.HalfExtent - p.Y) / g.Grid.Step)
	rl.DrawRectangle(
		r.offsetX+col*r.cellSize+1,
		r.offsetY+row*r.cellSize+1,
		r.cellSize-2, r.cellSize-2, color)
}
