package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for logging and determinism checks.
type Snapshot struct {
	Turn     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	head := g.Head()
	return Snapshot{
		Turn:     g.turn,
		Score:    g.score,
		SnakeLen: len(g.body),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		State:    state,
	}
}

// LogValues flattens the snapshot into key/value pairs for a structured logger.
func (s Snapshot) LogValues() []any {
	return []any{
		"turn", s.Turn,
		"score", s.Score,
		"len", s.SnakeLen,
		"head_x", s.HeadX,
		"head_y", s.HeadY,
		"dir", s.Dir.String(),
		"food_x", s.FoodX,
		"food_y", s.FoodY,
		"state", string(s.State),
	}
}
