package engine

// transformChange snapshots one cell's value before a rule mutated it, so
// revert-on-repeat (rule 6) can restore it exactly.
type transformChange struct {
	Index int
	Prev  Cell
}

// methodTable is the per-method data that rules.go dispatches against,
// keeping Telex and VNI on one code path (spec.md §4.F).
type methodTable struct {
	Method     Method
	MarkKeys   map[Keycode]ToneMark
	RemoveKey  Keycode
	StrokeKey  Keycode
	ApplyShape func(buf *CompositionBuffer, key Keycode) (applied bool, firstIndex int, changes []transformChange)
}

func tableFor(m Method) *methodTable {
	if m == MethodVNI {
		return &vniTable
	}
	return &telexTable
}

// lastTransformation records enough to undo the most recent transformation
// on an immediate repeat of its trigger key (spec.md §3).
type lastTransformation struct {
	Kind       TransformKind
	TriggerKey Keycode
	Changes    []transformChange
}

func (e *Engine) setLastTransform(kind TransformKind, trigger Keycode, changes []transformChange) {
	e.last = lastTransformation{Kind: kind, TriggerKey: trigger, Changes: changes}
}

func (e *Engine) clearLast() {
	e.last = lastTransformation{}
}

// rule is one entry in the ordered priority list of spec.md §4.E. It
// returns ok=false to let the next rule try the key.
type rule func(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool)

var ruleOrder = []rule{
	ruleStrokeImmediate,
	ruleStrokeDelayed,
	ruleToneShape,
	ruleToneMark,
	ruleRemoveDiacritics,
	ruleRevertOnRepeat,
	ruleAppend,
}

// ruleStrokeImmediate: rule 1. Telex 'd' right after an unstroked 'd';
// VNI '9' right after an unstroked 'd'.
func ruleStrokeImmediate(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	table := tableFor(e.method)
	if key != table.StrokeKey {
		return noEdit, false
	}
	li := e.buf.LastIndex()
	if li < 0 {
		return noEdit, false
	}
	prev := e.buf.Get(li)
	if prev.Key != KeyD || prev.Stroke {
		return noEdit, false
	}
	if e.method == MethodTelex && key != KeyD {
		return noEdit, false
	}

	old := prev
	newCell := prev
	newCell.Stroke = true
	e.buf.ReplaceAt(li, newCell)
	e.setLastTransform(TransformStroke, key, []transformChange{{Index: li, Prev: old}})
	return Rebuild(&e.buf, oldLen, li), true
}

// ruleStrokeDelayed: rule 2, VNI only. '9' with no adjacent 'd' scans the
// buffer for the first unstroked 'd'.
func ruleStrokeDelayed(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	if e.method != MethodVNI || key != Key9 {
		return noEdit, false
	}
	for i := 0; i < e.buf.Len(); i++ {
		cell := e.buf.Get(i)
		if cell.Key == KeyD && !cell.Stroke {
			old := cell
			newCell := cell
			newCell.Stroke = true
			e.buf.ReplaceAt(i, newCell)
			e.setLastTransform(TransformStroke, key, []transformChange{{Index: i, Prev: old}})
			return Rebuild(&e.buf, oldLen, i), true
		}
	}
	return noEdit, false
}

// ruleToneShape: rule 3, circumflex/horn/breve.
func ruleToneShape(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	table := tableFor(e.method)
	applied, first, changes := table.ApplyShape(&e.buf, key)
	if !applied {
		return noEdit, false
	}
	e.setLastTransform(TransformShape, key, changes)
	return Rebuild(&e.buf, oldLen, first), true
}

// ruleToneMark: rule 4.
func ruleToneMark(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	table := tableFor(e.method)
	mark, isMarkKey := table.MarkKeys[key]
	if !isMarkKey {
		return noEdit, false
	}

	idx, ok := DetermineMarkIndex(&e.buf, e.modernTone)
	if !ok {
		return noEdit, false
	}

	existing := e.buf.MarkIndex()
	if existing == idx && e.buf.Get(idx).Mark == mark {
		// No-op repeat: defer to revert-on-repeat.
		return noEdit, false
	}

	changes := make([]transformChange, 0, 2)
	first := idx
	if existing >= 0 && existing != idx {
		old := e.buf.Get(existing)
		cleared := old
		cleared.Mark = ToneNone
		e.buf.ReplaceAt(existing, cleared)
		changes = append(changes, transformChange{Index: existing, Prev: old})
		if existing < first {
			first = existing
		}
	}

	old := e.buf.Get(idx)
	newCell := old
	newCell.Mark = mark
	e.buf.ReplaceAt(idx, newCell)
	changes = append(changes, transformChange{Index: idx, Prev: old})

	e.setLastTransform(TransformMark, key, changes)
	return Rebuild(&e.buf, oldLen, first), true
}

// ruleRemoveDiacritics: rule 5. Clears every tone/shape/stroke in the
// buffer. Passes through if there is nothing to clear.
func ruleRemoveDiacritics(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	table := tableFor(e.method)
	if key != table.RemoveKey {
		return noEdit, false
	}

	first := -1
	for i := 0; i < e.buf.Len(); i++ {
		cell := e.buf.Get(i)
		if cell.Tone == ShapeNone && cell.Mark == ToneNone && !cell.Stroke {
			continue
		}
		cleared := cell
		cleared.Tone = ShapeNone
		cleared.Mark = ToneNone
		cleared.Stroke = false
		e.buf.ReplaceAt(i, cleared)
		if first == -1 {
			first = i
		}
	}
	if first == -1 {
		return noEdit, false
	}
	e.clearLast()
	return Rebuild(&e.buf, oldLen, first), true
}

// ruleRevertOnRepeat: rule 6. Repeating the trigger key of the last
// transformation undoes it and inserts the key literally.
func ruleRevertOnRepeat(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	if e.last.Kind == TransformNone || key != e.last.TriggerKey {
		return noEdit, false
	}

	first := e.buf.Len()
	for _, ch := range e.last.Changes {
		e.buf.ReplaceAt(ch.Index, ch.Prev)
		if ch.Index < first {
			first = ch.Index
		}
	}
	e.clearLast()
	if !e.buf.Push(Cell{Key: key, Caps: caps}) {
		return Rebuild(&e.buf, oldLen, first), true
	}
	if idx := e.buf.LastIndex(); idx < first {
		first = idx
	}
	return Rebuild(&e.buf, oldLen, first), true
}

// ruleAppend: rule 7, the fallback. Always matches. A buffer already at
// capacity silently drops the key (spec.md §4.B overflow policy).
func ruleAppend(e *Engine, key Keycode, caps bool, oldLen int) (EditResult, bool) {
	e.clearLast()
	if !e.buf.Push(Cell{Key: key, Caps: caps}) {
		return noEdit, true
	}
	return Rebuild(&e.buf, oldLen, e.buf.LastIndex()), true
}
