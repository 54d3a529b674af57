package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// LogObserver writes scoring events to a logger.
type LogObserver struct {
	logger *log.Logger
}

var _ tetris.Observer = (*LogObserver)(nil)

// NewLogObserver returns an observer that logs through logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// LinesCleared logs a line clear at debug level.
func (o *LogObserver) LinesCleared(n, score int) {
	o.logger.Debug("lines cleared", "lines", n, "score", score)
}

// GameOver logs the final result of a game.
func (o *LogObserver) GameOver(finalScore, lines int) {
	o.logger.Info("game over", "score", finalScore, "lines", lines)
}
