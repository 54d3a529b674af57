package tetris

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Session defaults.
const (
	DefaultDropInterval  = time.Second
	DefaultPointsPerLine = 100
)

// Randomizer picks piece types. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Observer is notified of scoring events. Calls happen synchronously on the
// goroutine driving the session.
type Observer interface {
	LinesCleared(n, score int)
	GameOver(finalScore, lines int)
}

type nopObserver struct{}

func (nopObserver) LinesCleared(int, int) {}
func (nopObserver) GameOver(int, int)     {}

// Command is a player input the session understands.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdDrop
	CmdRotateCW
	CmdRotateCCW
)

// Option configures a Session.
type Option func(*Session)

// WithDropInterval sets the gravity period. Non-positive values are ignored.
func WithDropInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithPointsPerLine sets the score for each cleared row. Negative values are ignored.
func WithPointsPerLine(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.pointsPerLine = n
		}
	}
}

// WithObserver registers an observer for line clears and game overs.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// Session owns the well, the falling piece and the score. It is not safe for
// concurrent use: every entry point must run to completion before the next
// one starts, which is what a single frame/input loop gives you.
type Session struct {
	rng      Randomizer
	observer Observer

	interval      time.Duration
	pointsPerLine int

	grid    Grid
	piece   *Piece
	score   int
	lines   int
	games   int
	elapsed time.Duration
	spawned *intmap.Map[Kind, int]
}

// NewSession creates a session with an empty well and a freshly spawned piece.
func NewSession(rng Randomizer, opts ...Option) *Session {
	s := &Session{
		rng:           rng,
		observer:      nopObserver{},
		interval:      DefaultDropInterval,
		pointsPerLine: DefaultPointsPerLine,
		spawned:       intmap.New[Kind, int](ShapesCount()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawn()
	return s
}

// Reset starts a new game: empty well, zero score, new piece.
func (s *Session) Reset() {
	s.grid.Reset()
	s.score = 0
	s.lines = 0
	s.elapsed = 0
	s.spawned.Clear()
	s.spawn()
}

// Tick advances the gravity clock by dt and drops the piece one row once a
// full interval has accumulated.
func (s *Session) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.interval {
		s.dropStep()
	}
}

// MoveLeft shifts the piece one column left if there is room.
func (s *Session) MoveLeft() {
	s.piece.Translate(&s.grid, -1)
}

// MoveRight shifts the piece one column right if there is room.
func (s *Session) MoveRight() {
	s.piece.Translate(&s.grid, 1)
}

// ManualDrop moves the piece down one row now, locking it if it has landed.
func (s *Session) ManualDrop() {
	s.dropStep()
}

// RotateCW turns the piece clockwise.
func (s *Session) RotateCW() {
	s.piece.Rotate(&s.grid, RotateCW)
}

// RotateCCW turns the piece counter-clockwise.
func (s *Session) RotateCCW() {
	s.piece.Rotate(&s.grid, RotateCCW)
}

// Apply runs the entry point for cmd. Unknown commands are ignored.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		s.MoveLeft()
	case CmdMoveRight:
		s.MoveRight()
	case CmdDrop:
		s.ManualDrop()
	case CmdRotateCW:
		s.RotateCW()
	case CmdRotateCCW:
		s.RotateCCW()
	}
}

func (s *Session) dropStep() {
	s.elapsed = 0
	if !s.piece.SoftDrop(&s.grid) {
		return
	}
	s.lock()
}

// lock merges the landed piece, scores cleared rows and brings in the next
// piece. A next piece that has no room ends the game and starts a new one.
func (s *Session) lock() {
	if err := s.grid.Merge(s.piece); err != nil {
		// SoftDrop leaves the piece at its last free position, so this
		// only happens if the grid was changed behind our back.
		s.gameOver()
		return
	}

	if n := s.grid.ClearFullLines(); n > 0 {
		s.lines += n
		s.score += n * s.pointsPerLine
		s.observer.LinesCleared(n, s.score)
	}

	s.spawn()
	if s.grid.Collides(s.piece) {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	s.games++
	s.observer.GameOver(s.score, s.lines)
	s.Reset()
}

func (s *Session) spawn() {
	kind := Kind(s.rng.Intn(ShapesCount()) + 1)
	s.piece = Spawn(kind)
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

// Grid returns a copy of the well.
func (s *Session) Grid() Grid {
	return s.grid
}

// Piece returns a copy of the falling piece.
func (s *Session) Piece() Piece {
	return *s.piece.Clone()
}

// Score returns the points earned in the current game.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the rows cleared in the current game.
func (s *Session) Lines() int {
	return s.lines
}

// Games returns how many games have ended in this session.
func (s *Session) Games() int {
	return s.games
}

// Spawned returns how many pieces of kind k the current game has spawned.
func (s *Session) Spawned(k Kind) int {
	n, _ := s.spawned.Get(k)
	return n
}

// DropInterval returns the gravity period.
func (s *Session) DropInterval() time.Duration {
	return s.interval
}
