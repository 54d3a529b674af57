// tetris is a falling-block puzzle game for the terminal, SSH and the desktop.
//
// Usage:
//
//	tetris                   - Play in this terminal (same as "tetris play")
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris window            - Play in a desktop window
//	tetris config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--config <path>          - Use a custom config YAML
//	--drop-interval <dur>    - Override gameplay.drop_interval_ms (e.g. 500ms)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagConfig       string
	flagDropInterval time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops one of seven pieces into a 10x20 well. Move and rotate it,
fill rows to clear them, and score 100 points per cleared row. When a new
piece has no room the game starts over.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  tetris
  tetris --seed 42
  tetris play --log ./tetris.log
  tetris serve --ssh :2222
  tetris window --config ./my-tetris.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagDropInterval, "drop-interval", 0, "Gravity period override (0 = use config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file chain and applies flag overrides.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if flagDropInterval != 0 {
		cfg.Gameplay.DropIntervalMS = int(flagDropInterval / time.Millisecond)
		if err := cfg.Validate(); err != nil {
			return config.TetrisConfig{}, fmt.Errorf("--drop-interval: %w", err)
		}
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for command handlers: it exits on error.
func mustLoadConfig() config.TetrisConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
