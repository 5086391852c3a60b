// Package snake implements the turn-based Snake engine: one Update per
// player command, collisions end the game, food grows the snake.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/rng"
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// noFood marks that no free cell was left for food.
var noFood = Point{X: -1, Y: -1}

// Game holds the whole mutable game state. It is owned by a single loop
// and is not safe for concurrent use.
type Game struct {
	src   rng.Source
	turn  uint64
	score int

	// Snake state
	body      []Point // Tail at index 0, head last
	direction Direction

	// Map state
	bounds core.Rect
	food   Point

	gameOver bool
}

// New creates a game from cfg. A zero cfg.Seed places food from the wall
// clock; any other value gives a reproducible food sequence.
func New(cfg core.RuntimeConfig) *Game {
	var src rng.Source = rng.Clock{}
	if cfg.Seed != 0 {
		src = rng.NewSequence(uint64(cfg.Seed))
	}
	return NewWithSource(cfg, src)
}

// NewWithSource creates a game that draws food seeds from src.
// cfg is expected to be validated: positive grid and a start cell inside it.
func NewWithSource(cfg core.RuntimeConfig, src rng.Source) *Game {
	dir, err := ParseDirection(cfg.StartDir)
	if err != nil {
		dir = DirRight
	}

	g := &Game{
		src:       src,
		bounds:    core.NewRect(0, 0, cfg.GridW, cfg.GridH),
		body:      []Point{{X: cfg.StartX, Y: cfg.StartY}},
		direction: dir,
	}
	g.spawnFood()
	return g
}

// HandleInput changes the heading for the next Update. Commands are the
// lower-case letters w, s, a and d; anything else is ignored, and so is a
// request to reverse onto the body.
func (g *Game) HandleInput(command string) {
	var requested Direction
	switch core.ParseAction(command) {
	case core.ActionUp:
		requested = DirUp
	case core.ActionDown:
		requested = DirDown
	case core.ActionLeft:
		requested = DirLeft
	case core.ActionRight:
		requested = DirRight
	default:
		return
	}
	g.direction = Turn(g.direction, requested)
}

// Update advances the snake one cell. It is a no-op once the game is over.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	g.turn++

	newHead := g.Head().Add(g.direction.Delta())

	if !g.bounds.Contains(newHead.X, newHead.Y) {
		g.gameOver = true
		return
	}

	// The tail still counts: it has not moved yet.
	if g.isSnakeAt(newHead) {
		g.gameOver = true
		return
	}

	g.body = append(g.body, newHead)

	if newHead == g.food {
		g.score++
		g.spawnFood()
		return
	}
	g.body = g.body[1:]
}

// spawnFood places food on a random cell not covered by the snake.
// x and y are drawn from the same seed (seed and seed+1); a colliding
// candidate is discarded and a fresh seed is taken.
func (g *Game) spawnFood() {
	if len(g.body) >= g.bounds.Area() {
		g.food = noFood
		return
	}

	w, h := uint32(g.bounds.W), uint32(g.bounds.H)
	for {
		seed := g.src.Seed()
		candidate := Point{
			X: int(rng.Next(seed, w)),
			Y: int(rng.Next(seed+1, h)),
		}
		if !g.isSnakeAt(candidate) {
			g.food = candidate
			return
		}
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the head segment.
func (g *Game) Head() Point {
	return g.body[len(g.body)-1]
}

// Body returns a copy of the snake, tail first.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.body))
	copy(out, g.body)
	return out
}

// Food returns the food cell, or (-1, -1) when the grid is full.
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// GameOver reports whether the snake has crashed.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Turn returns how many steps Update has taken.
func (g *Game) Turn() uint64 {
	return g.turn
}

// Width returns the grid width.
func (g *Game) Width() int {
	return g.bounds.W
}

// Height returns the grid height.
func (g *Game) Height() int {
	return g.bounds.H
}
