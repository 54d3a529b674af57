// Package config provides YAML-based configuration for the tetris engine and
// its terminal and window front ends.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all tunable settings.
type TetrisConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Keys     KeyBindings    `yaml:"keys"`
}

// GameplayConfig holds engine parameters.
type GameplayConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
	PointsPerLine  int `yaml:"points_per_line"`
}

// DisplayConfig holds presentation parameters.
type DisplayConfig struct {
	CellPixels int    `yaml:"cell_pixels"`
	CellChars  string `yaml:"cell_chars"`
}

// KeyBindings lists the key names bound to each command. Names follow the
// terminal key notation ("left", "ctrl+c", "z").
type KeyBindings struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	Drop      []string `yaml:"drop"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// DropInterval returns the gravity period as a duration.
func (c TetrisConfig) DropInterval() time.Duration {
	return time.Duration(c.Gameplay.DropIntervalMS) * time.Millisecond
}

// Validate checks that the config can drive a game.
func (c TetrisConfig) Validate() error {
	if c.Gameplay.DropIntervalMS <= 0 {
		return fmt.Errorf("%w: drop_interval_ms must be positive, got %d", ErrInvalid, c.Gameplay.DropIntervalMS)
	}
	if c.Gameplay.PointsPerLine < 0 {
		return fmt.Errorf("%w: points_per_line must not be negative, got %d", ErrInvalid, c.Gameplay.PointsPerLine)
	}
	if c.Display.CellPixels <= 0 {
		return fmt.Errorf("%w: cell_pixels must be positive, got %d", ErrInvalid, c.Display.CellPixels)
	}
	if n := utf8.RuneCountInString(c.Display.CellChars); n != 2 {
		return fmt.Errorf("%w: cell_chars must be exactly 2 characters, got %d", ErrInvalid, n)
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"drop", c.Keys.Drop},
		{"rotate_cw", c.Keys.RotateCW},
		{"rotate_ccw", c.Keys.RotateCCW},
		{"pause", c.Keys.Pause},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
	}
	seen := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, b.name)
		}
		for _, k := range b.keys {
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}
