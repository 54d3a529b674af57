// Package window runs a game in a desktop window with Ebitengine. It reads
// the same config as the terminal front end; cells are drawn as filled
// squares of display.cell_pixels.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const (
	margin = 20
	panelW = 160
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridLineColor   = color.RGBA{45, 45, 58, 255}
	borderColor     = color.RGBA{120, 120, 130, 255}
)

// palette maps core colors to pixel colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {230, 60, 60, 255},
	core.ColorGreen:         {80, 200, 90, 255},
	core.ColorYellow:        {240, 210, 60, 255},
	core.ColorBlue:          {60, 110, 230, 255},
	core.ColorMagenta:       {170, 80, 200, 255},
	core.ColorCyan:          {70, 200, 210, 255},
	core.ColorWhite:         {230, 230, 230, 255},
	core.ColorBrightMagenta: {240, 110, 220, 255},
	core.ColorOrange:        {245, 150, 40, 255},
	core.ColorGray:          {120, 120, 130, 255},
}

func colorOf(k tetris.Kind) color.RGBA {
	if c, ok := palette[k.Color()]; ok {
		return c
	}
	return palette[core.ColorWhite]
}

// binding pairs window keys with the action they trigger.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// Window implements ebiten.Game on top of a tetris game. Each Update is one
// simulation step.
type Window struct {
	game     *tetris.Game
	cell     int
	bindings []binding
	quit     []ebiten.Key
}

// New creates a window for game. The game is reset with cfg; the screen
// size in cfg is ignored because the window is always large enough.
func New(game *tetris.Game, tcfg config.TetrisConfig, cfg core.RuntimeConfig) (*Window, error) {
	cfg = runtimeConfig(cfg)

	w := &Window{
		game: game,
		cell: tcfg.Display.CellPixels,
	}
	if w.cell <= 0 {
		w.cell = config.DefaultTetrisConfig().Display.CellPixels
	}

	kb := tcfg.Keys
	actions := []struct {
		name   string
		action core.Action
		keys   []string
	}{
		{"left", core.ActionLeft, kb.Left},
		{"right", core.ActionRight, kb.Right},
		{"drop", core.ActionDown, kb.Drop},
		{"rotate_cw", core.ActionRotateCW, kb.RotateCW},
		{"rotate_ccw", core.ActionRotateCCW, kb.RotateCCW},
		{"pause", core.ActionPause, kb.Pause},
		{"restart", core.ActionRestart, kb.Restart},
	}
	for _, a := range actions {
		keys, err := parseKeys(a.name, a.keys)
		if err != nil {
			return nil, err
		}
		w.bindings = append(w.bindings, binding{action: a.action, keys: keys})
	}
	quit, err := parseKeys("quit", kb.Quit)
	if err != nil {
		return nil, err
	}
	w.quit = quit

	ebiten.SetTPS(cfg.TickRate)
	game.Reset(cfg)
	return w, nil
}

// runtimeConfig fills in what the command line may leave zero: the tick
// rate, a clock-based seed, and a screen size in terminal cells large
// enough that the game never pauses itself for lack of room.
func runtimeConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	return cfg
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	return margin*3 + tetris.Width*w.cell + panelW, margin*2 + tetris.Height*w.cell
}

// Update gathers the keys pressed this frame and steps the game.
func (w *Window) Update() error {
	for _, k := range w.quit {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}

	in := core.NewInputFrame()
	for _, b := range w.bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(b.action)
				break
			}
		}
	}
	w.game.Step(in)
	return nil
}

// Draw paints the well, the falling piece and the side panel.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cell := float32(w.cell)
	wellW := float32(tetris.Width) * cell
	wellH := float32(tetris.Height) * cell
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, wellColor, false)

	s := w.game.Session()
	grid := s.Grid()
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			px := margin + float32(x)*cell
			py := margin + float32(y)*cell
			if k := grid[y][x]; k != tetris.Empty {
				vector.DrawFilledRect(screen, px+1, py+1, cell-2, cell-2, colorOf(k), false)
				continue
			}
			vector.StrokeRect(screen, px, py, cell, cell, 1, gridLineColor, false)
		}
	}

	p := s.Piece()
	for _, c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		px := margin + float32(c.X)*cell
		py := margin + float32(c.Y)*cell
		vector.DrawFilledRect(screen, px+1, py+1, cell-2, cell-2, colorOf(p.Kind), false)
	}
	vector.StrokeRect(screen, margin-1, margin-1, wellW+2, wellH+2, 2, borderColor, false)

	w.drawPanel(screen, margin*2+int(wellW))
}

func (w *Window) drawPanel(screen *ebiten.Image, x int) {
	s := w.game.Session()
	ebitenutil.DebugPrintAt(screen, "T E T R I S", x, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score  %d", s.Score()), x, margin+30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines  %d", s.Lines()), x, margin+50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Games  %d", s.Games()), x, margin+70)

	for i := 0; i < tetris.ShapesCount(); i++ {
		k := tetris.Kind(i + 1)
		y := margin + 110 + i*22
		vector.DrawFilledRect(screen, float32(x), float32(y+2), 12, 12, colorOf(k), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %4d", k, s.Spawned(k)), x+18, y)
	}

	if w.game.State().Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", x, margin+280)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.Size()
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(game *tetris.Game, tcfg config.TetrisConfig, cfg core.RuntimeConfig) error {
	w, err := New(game, tcfg, cfg)
	if err != nil {
		return err
	}

	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
