package tetris

// GameStateType names what the game is doing.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lines  int
	Games  int
	Kind   Kind
	X, Y   int
	Filled int // occupied well cells
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	p := g.session.Piece()
	grid := g.session.Grid()
	return Snapshot{
		Tick:   g.tick,
		Score:  g.session.Score(),
		Lines:  g.session.Lines(),
		Games:  g.session.Games(),
		Kind:   p.Kind,
		X:      p.X,
		Y:      p.Y,
		Filled: grid.Filled(),
		State:  state,
	}
}
