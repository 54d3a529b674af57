package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// tenHz makes every step exactly 100ms so ten steps equal the default interval.
func tenHz(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultTetrisConfig())
	g.Reset(tenHz(seed))
	require.NotNil(t, g.Session())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestGameDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionLeft, core.ActionRotateCW, core.ActionNone, core.ActionDown,
		core.ActionRight, core.ActionRight, core.ActionRotateCCW, core.ActionDown,
	}

	run := func() []Snapshot {
		g := newTestGame(t, 42)
		var out []Snapshot
		for i := 0; i < 500; i++ {
			g.Step(frame(script[i%len(script)]))
			out = append(out, g.Snapshot())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestGameGravity(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 9; i++ {
		g.Step(frame())
	}
	assert.Equal(t, 0, g.Snapshot().Y)

	g.Step(frame())
	assert.Equal(t, 1, g.Snapshot().Y)
	assert.Equal(t, uint64(10), g.Snapshot().Tick)
}

func TestGameActions(t *testing.T) {
	g := newTestGame(t, 1)
	x := g.Snapshot().X

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, x-1, g.Snapshot().X)

	g.Step(frame(core.ActionRight, core.ActionRight))
	assert.Equal(t, x+1, g.Snapshot().X, "both queued moves apply")

	g.Step(frame(core.ActionDown))
	assert.Equal(t, 1, g.Snapshot().Y)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionLeft, core.ActionDown))
	}
	snap := g.Snapshot()
	assert.Equal(t, 0, snap.Y, "gravity and input stop while paused")

	g.Step(frame(core.ActionPause))
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.False(t, g.State().Paused)
}

func TestGameTooSmall(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 10})

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	assert.Equal(t, 0, g.Snapshot().Y)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	assert.Equal(t, 1, g.Snapshot().Y)
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(frame(core.ActionPause))
	require.True(t, g.State().Paused)

	g.session.ManualDrop()
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 0, snap.Y)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Filled)
}

func TestGameStepDurationFallback(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	for i := 0; i < 61; i++ {
		g.Step(frame())
	}
	assert.Equal(t, 1, g.Snapshot().Y, "zero tick rate falls back to the default")
}

func TestGameUsesConfiguredInterval(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Gameplay.DropIntervalMS = 200

	g := New(cfg)
	g.Reset(tenHz(1))
	assert.Equal(t, cfg.DropInterval(), g.Session().DropInterval())

	g.Step(frame())
	g.Step(frame())
	assert.Equal(t, 1, g.Snapshot().Y)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "T E T R I S")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Pieces")

	// The well is centered: 37 columns wide, 22 rows tall.
	assert.Equal(t, '┌', screen.Get(21, 1))

	p := g.session.Piece()
	c := p.Cells()[0]
	cell := screen.GetCell(22+c.X*2, 2+c.Y)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, p.Kind.Color(), cell.Color)

	empty := screen.GetCell(22, 2+Height-1)
	assert.Equal(t, core.ColorGray, empty.Color)
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Paused"))
}

func TestGameCustomCellChars(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Display.CellChars = "[]"

	g := New(cfg)
	g.Reset(tenHz(1))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	c := g.session.Piece().Cells()[0]
	assert.Equal(t, '[', screen.Get(22+c.X*2, 2+c.Y))
	assert.Equal(t, ']', screen.Get(23+c.X*2, 2+c.Y))
}

func TestGamePauseHintUsesConfiguredKey(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Keys.Pause = []string{"space", "esc"}

	g := New(cfg)
	g.Reset(tenHz(1))
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Press space to continue")
}
