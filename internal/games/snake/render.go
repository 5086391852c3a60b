package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	HeadGlyph   = '@'
	BodyGlyph   = 'o'
	FoodGlyph   = '*'
	CornerGlyph = '+'
	WallGlyph   = '|'
)

// ControlsLegend is the key help printed under the score.
const ControlsLegend = "Controls: w=up, s=down, a=left, d=right, q=quit"

// Display renders the score, the legend and the bordered board as text.
// A final line is added once the game is over.
func (g *Game) Display() string {
	var b strings.Builder
	b.WriteString(g.ScoreLine())
	b.WriteString("\n")
	b.WriteString(ControlsLegend)
	b.WriteString("\n\n")
	b.WriteString(g.Board().String())
	b.WriteString("\n")
	if g.gameOver {
		b.WriteString(g.FinalMessage())
		b.WriteString("\n")
	}
	return b.String()
}

// ScoreLine returns the "Score: N" header.
func (g *Game) ScoreLine() string {
	return fmt.Sprintf("Score: %d", g.score)
}

// FinalMessage returns the game over line.
func (g *Game) FinalMessage() string {
	return fmt.Sprintf("Game Over! Final score: %d", g.score)
}

// Board draws the grid with its border into a fresh screen buffer of
// (width+2) x (height+2) cells.
func (g *Game) Board() *core.Screen {
	w, h := g.bounds.W, g.bounds.H
	dst := core.NewScreen(w+2, h+2)

	dst.DrawHLine(0, 0, w+2, CornerGlyph)
	dst.DrawHLine(0, h+1, w+2, CornerGlyph)
	dst.DrawVLine(0, 1, h, WallGlyph)
	dst.DrawVLine(w+1, 1, h, WallGlyph)

	// Food first so the snake wins if they ever overlap.
	if g.bounds.Contains(g.food.X, g.food.Y) {
		dst.Set(g.food.X+1, g.food.Y+1, FoodGlyph)
	}

	last := len(g.body) - 1
	for i, seg := range g.body {
		if i == last {
			dst.Set(seg.X+1, seg.Y+1, HeadGlyph)
		} else {
			dst.Set(seg.X+1, seg.Y+1, BodyGlyph)
		}
	}

	return dst
}

// GlyphColor returns the color hint for a board rune.
func GlyphColor(r rune) core.Color {
	switch r {
	case HeadGlyph:
		return core.ColorBrightGreen
	case BodyGlyph:
		return core.ColorGreen
	case FoodGlyph:
		return core.ColorRed
	case CornerGlyph, WallGlyph:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
