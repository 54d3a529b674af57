package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Minimum screen size: the bordered well plus the side panel.
const (
	minScreenW = wellScreenW + 1 + panelW
	minScreenH = wellScreenH
)

// Game adapts a Session to the frame/step contract used by the front ends.
// Each Step advances the gravity clock by one tick period and applies the
// actions gathered since the previous step.
type Game struct {
	cfg      config.TetrisConfig
	observer Observer
	session  *Session
	tick     uint64
	stepDur  time.Duration

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game using cfg. Call Reset before the first Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// SetObserver registers an observer for the sessions created by Reset.
func (g *Game) SetObserver(o Observer) {
	g.observer = o
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.stepDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.session = NewSession(
		rand.New(rand.NewSource(cfg.Seed)),
		WithDropInterval(g.cfg.DropInterval()),
		WithPointsPerLine(g.cfg.Gameplay.PointsPerLine),
		WithObserver(g.observer),
	)
}

// Resize records new screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Session exposes the underlying session for read access.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if a == core.ActionPause {
			g.paused = !g.paused
		}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.session.Apply(commandFor(a))
	}
	g.session.Tick(g.stepDur)

	return core.StepResult{State: g.State()}
}

// commandFor maps a platform action to a session command.
func commandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CmdMoveLeft
	case core.ActionRight:
		return CmdMoveRight
	case core.ActionDown:
		return CmdDrop
	case core.ActionRotateCW:
		return CmdRotateCW
	case core.ActionRotateCCW:
		return CmdRotateCCW
	default:
		return CmdNone
	}
}

// State returns the current game state. The session restarts itself on game
// over, so GameOver is never reported.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score(),
		Paused: g.paused || g.tooSmall,
	}
}
