package main

import (
	"strings"

	"github.com/username/goviet-ime/internal/engine"
)

// namedKeys maps the symbolic key names the JSON API accepts for keys with
// no single printable character, alongside the literal character form
// ("a", "1", ",", ...) which is decoded directly.
var namedKeys = map[string]engine.Keycode{
	"backspace": engine.KeyBackspace,
	"delete":    engine.KeyDelete,
	"enter":     engine.KeyEnter,
	"escape":    engine.KeyEscape,
	"tab":       engine.KeyTab,
	"space":     engine.KeySpace,
	"left":      engine.KeyLeft,
	"up":        engine.KeyUp,
	"right":     engine.KeyRight,
	"down":      engine.KeyDown,
	"home":      engine.KeyHome,
	"end":       engine.KeyEnd,
	"pageup":    engine.KeyPageUp,
	"pagedown":  engine.KeyPageDown,
}

// parseKey decodes the JSON API's "key" field into a Keycode: a named
// special key, or a single rune taken as its canonical uppercase letter.
func parseKey(s string) (engine.Keycode, bool) {
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return k, true
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	r := runes[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return engine.Keycode(r), true
}
