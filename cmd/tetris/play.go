package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagLogPath string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Default controls (remap them in the keys section of the config):
  Left/H, Right/L   - Move
  Down/J            - Drop one row
  Up/K/X            - Rotate clockwise
  Z                 - Rotate counter-clockwise
  P/Esc             - Pause
  R                 - Restart
  ?                 - Toggle full help
  Ctrl+S            - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C          - Quit

The terminal belongs to the game while it runs, so events are only logged
when --log names a file.

Examples:
  tetris play
  tetris play --seed 7 --fps 30
  tetris play --drop-interval 300ms
  tetris play --log ./tetris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// The root command plays too, so it takes the same flag.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	tcfg := mustLoadConfig()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := tetris.New(tcfg)

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		logger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "tetris",
			Level:           log.DebugLevel,
		})
		logger.Info("game started", "seed", cfg.Seed, "drop_interval", tcfg.DropInterval())
		game.SetObserver(tui.NewLogObserver(logger))
	}

	if err := tui.Run(game, tui.NewKeyMap(tcfg.Keys), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
