package main

import "github.com/username/goviet-ime/internal/engine"

// X11 modifier bits, as reported by the Fcitx5 frontend over D-Bus.
const (
	modShift   uint32 = 1 << 0
	modLock    uint32 = 1 << 1 // Caps Lock
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3 // Alt
	modMod4    uint32 = 1 << 6 // Super/Windows
)

// keysymToKeycode translates an X11 keysym into the engine's abstract
// Keycode space: letters are always named by their canonical uppercase
// value there, with case carried separately through Shift/CapsLock state
// rather than folded into the keycode identity (spec.md §4.A).
func keysymToKeycode(keysym uint32) engine.Keycode {
	if keysym >= 0x0061 && keysym <= 0x007a { // lowercase a-z
		return engine.Keycode(keysym - 0x20)
	}
	return engine.Keycode(keysym)
}
