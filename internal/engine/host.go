package engine

// Host wraps an Engine with the modifier-filtering step spec.md §4.E step 1
// requires ("Ctrl/Alt/Cmd-modified keys clear composition without being
// processed") but that the engine's own ProcessKey cannot express, since
// spec.md §6 fixes that method's signature to exactly
// (key, shift, caps). Every application-facing host (cmd/daemon,
// cmd/testharness) talks to a Host, never to a bare Engine.
type Host struct {
	engine      *Engine
	initialized bool
}

// NewHost constructs a Host around a fresh Engine.
func NewHost() *Host {
	return &Host{engine: NewEngine()}
}

// Initialize is idempotent: a second call is a no-op. Hosts that re-attach
// to an already-running session (e.g. the daemon re-exporting its D-Bus
// object after a reconnect) can call it unconditionally.
func (h *Host) Initialize() {
	if h.initialized {
		return
	}
	h.engine = NewEngine()
	h.initialized = true
}

func (h *Host) SetMethod(m Method)                     { h.engine.SetMethod(m) }
func (h *Host) SetEnabled(enabled bool)                { h.engine.SetEnabled(enabled) }
func (h *Host) SetModernTone(modern bool)               { h.engine.SetModernTone(modern) }
func (h *Host) SetAutocorrectMode(mode AutocorrectMode) { h.engine.SetAutocorrectMode(mode) }

func (h *Host) Method() Method                  { return h.engine.Method() }
func (h *Host) Enabled() bool                   { return h.engine.Enabled() }
func (h *Host) ModernTone() bool                { return h.engine.ModernTone() }
func (h *Host) AutocorrectMode() AutocorrectMode { return h.engine.AutocorrectMode() }
func (h *Host) Preedit() string                 { return h.engine.Preedit() }

// ProcessKey is the host hot path. ctrlDown/altDown/cmdDown let the caller
// report modifier state the abstract Keycode space doesn't carry; any of
// them held clears composition and reports no edit, matching how the
// teacher's fcitx5 daemon bails out of composition on modified keys rather
// than trying to interpret e.g. Ctrl+S as a tone mark.
func (h *Host) ProcessKey(key Keycode, shiftDown, capsOn, ctrlDown, altDown, cmdDown bool) EditResult {
	if ctrlDown || altDown || cmdDown {
		h.engine.Reset()
		return noEdit
	}
	return h.engine.ProcessKey(key, shiftDown, capsOn)
}

// Reset clears in-progress composition, e.g. on focus change.
func (h *Host) Reset() { h.engine.Reset() }
