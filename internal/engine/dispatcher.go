package engine

// Engine is the Vietnamese IME core state machine (spec.md §3 "Engine
// state"). It is not a singleton here: the host owns an instance and
// serializes access to it with its own mutex (spec.md §5).
type Engine struct {
	buf    CompositionBuffer
	rawBuf CompositionBuffer // literal keystrokes since the last boundary, for auto-correct lookup
	last   lastTransformation

	method          Method
	enabled         bool
	modernTone      bool
	autocorrectMode AutocorrectMode
}

// NewEngine creates an engine with Telex, enabled, traditional tone
// placement, and auto-correct off — the same defaults the teacher daemon
// starts with.
func NewEngine() *Engine {
	return &Engine{
		method:  MethodTelex,
		enabled: true,
	}
}

// Reset clears the in-progress composition without changing configuration.
func (e *Engine) Reset() {
	e.buf.Clear()
	e.rawBuf.Clear()
	e.clearLast()
}

// SetMethod switches between Telex and VNI. Any in-progress composition is
// invalidated (spec.md §4.H).
func (e *Engine) SetMethod(m Method) {
	e.method = m
	e.Reset()
}

// SetEnabled toggles the engine. Disabling invalidates composition.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	e.Reset()
}

// SetModernTone toggles modern vs. traditional tone placement for the
// oa/oe/uy open-syllable case.
func (e *Engine) SetModernTone(modern bool) {
	e.modernTone = modern
	e.Reset()
}

// SetAutocorrectMode selects which auto-correct dictionary, if any, is
// consulted at word boundaries.
func (e *Engine) SetAutocorrectMode(mode AutocorrectMode) {
	e.autocorrectMode = mode
	e.Reset()
}

func (e *Engine) Method() Method                       { return e.method }
func (e *Engine) Enabled() bool                        { return e.enabled }
func (e *Engine) ModernTone() bool                     { return e.modernTone }
func (e *Engine) AutocorrectMode() AutocorrectMode      { return e.autocorrectMode }

// Preedit renders the full in-progress composition. It is not part of
// spec.md's EditResult protocol — hosts that need a live preedit string
// (e.g. to underline it in the application, per the teacher's fcitx5
// daemon) call this alongside ProcessKey; it never mutates state.
func (e *Engine) Preedit() string {
	r := Rebuild(&e.buf, e.buf.Len(), 0)
	return r.String()
}

// ProcessKey is the single hot-path entry point (spec.md §4.F). Hosts
// translate their native key events to the abstract Keycode space and
// filter out Ctrl/Alt/Cmd-modified keys before calling this — see
// Host (host.go) for that layer; the core signature matches spec.md §6
// exactly.
func (e *Engine) ProcessKey(key Keycode, shiftDown, capsOn bool) EditResult {
	if !e.enabled {
		return noEdit
	}

	if IsBreakKey(key) {
		edit := e.tryAutocorrect(key)
		e.Reset()
		return edit
	}

	if key == KeyBackspace || key == KeyDelete {
		if e.buf.Len() > 0 {
			e.buf.Pop()
			if e.rawBuf.Len() > 0 {
				e.rawBuf.Pop()
			}
		}
		e.clearLast()
		return noEdit
	}

	caps := shiftDown || capsOn
	e.rawBuf.Push(Cell{Key: key, Caps: caps})

	oldLen := e.buf.Len()
	for _, r := range ruleOrder {
		if edit, ok := r(e, key, caps, oldLen); ok {
			if !e.buf.checkInvariant() {
				return e.selfHeal()
			}
			return edit
		}
	}
	return noEdit
}
