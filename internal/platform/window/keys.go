package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// namedKeys maps the terminal-style key names used in the config to
// ebiten keys.
var namedKeys = map[string]ebiten.Key{
	"a": ebiten.KeyA,
	"b": ebiten.KeyB,
	"c": ebiten.KeyC,
	"d": ebiten.KeyD,
	"e": ebiten.KeyE,
	"f": ebiten.KeyF,
	"g": ebiten.KeyG,
	"h": ebiten.KeyH,
	"i": ebiten.KeyI,
	"j": ebiten.KeyJ,
	"k": ebiten.KeyK,
	"l": ebiten.KeyL,
	"m": ebiten.KeyM,
	"n": ebiten.KeyN,
	"o": ebiten.KeyO,
	"p": ebiten.KeyP,
	"q": ebiten.KeyQ,
	"r": ebiten.KeyR,
	"s": ebiten.KeyS,
	"t": ebiten.KeyT,
	"u": ebiten.KeyU,
	"v": ebiten.KeyV,
	"w": ebiten.KeyW,
	"x": ebiten.KeyX,
	"y": ebiten.KeyY,
	"z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0,
	"1": ebiten.KeyDigit1,
	"2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4,
	"5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6,
	"7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"space":     ebiten.KeySpace,
	" ":         ebiten.KeySpace,
	"backspace": ebiten.KeyBackspace,
}

// keyByName resolves one config key name. Modifier chords such as "ctrl+c"
// only make sense in a terminal and report ok=false.
func keyByName(name string) (ebiten.Key, bool) {
	k, ok := namedKeys[name]
	return k, ok
}

// parseKeys resolves a binding list, skipping terminal-only names. It fails
// only when nothing in the list can be pressed in a window.
func parseKeys(action string, names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		if k, ok := keyByName(strings.ToLower(n)); ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no window key for %s in %q", action, names)
	}
	return keys, nil
}
