package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions. Bindings come
// from the keys section of the config so players can remap them.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Drop      key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Left:      binding(kb.Left, "left"),
		Right:     binding(kb.Right, "right"),
		Drop:      binding(kb.Drop, "drop"),
		RotateCW:  binding(kb.RotateCW, "rotate"),
		RotateCCW: binding(kb.RotateCCW, "rotate ccw"),
		Pause:     binding(kb.Pause, "pause"),
		Restart:   binding(kb.Restart, "restart"),
		Quit:      binding(kb.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings from the built-in config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys shortens key names for the help line: "up/k/x".
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// ShortHelp returns bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.RotateCW, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop},
		{k.RotateCW, k.RotateCCW},
		{k.Pause, k.Restart, k.Quit},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Drop):
		return core.ActionDown, false
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW, false
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if isQuit {
		return true
	}
	frame.Set(action)
	return false
}
