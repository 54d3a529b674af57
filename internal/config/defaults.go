package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: GameplayConfig{
			DropIntervalMS: 1000,
			PointsPerLine:  100,
		},
		Display: DisplayConfig{
			CellPixels: 30,
			CellChars:  "██",
		},
		Keys: KeyBindings{
			Left:      []string{"left", "h"},
			Right:     []string{"right", "l"},
			Drop:      []string{"down", "j"},
			RotateCW:  []string{"up", "k", "x"},
			RotateCCW: []string{"z"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}
