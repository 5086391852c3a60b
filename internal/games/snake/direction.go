package snake

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// deltas holds the per-step offset for each direction.
var deltas = map[Direction]Point{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// opposites maps each direction to its 180° reversal.
var opposites = map[Direction]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

// Delta returns the coordinate offset applied by one step in d.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Turn returns the heading that results from requesting next while moving
// in current. Reversals are refused and keep current.
func Turn(current, next Direction) Direction {
	if next == current.Opposite() {
		return current
	}
	return next
}

// ParseDirection decodes a configuration value such as "right".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
