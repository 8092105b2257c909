package engine

// Telex mark keys (spec.md §4.A). 'z' is the remove-diacritics key, not a
// mark key — see telexTable.RemoveKey.
var telexMarkKeys = map[Keycode]ToneMark{
	KeyS: ToneSac,
	KeyF: ToneHuyen,
	KeyR: ToneHoi,
	KeyX: ToneNga,
	KeyJ: ToneNang,
}

// telexWShapeFor reports which shape the 'w' key produces on a given
// target vowel: breve on a, horn on o/u.
func telexWShapeFor(key Keycode) (Shape, bool) {
	switch key {
	case KeyA:
		return ShapeBreve, true
	case KeyO, KeyU:
		return ShapeHorn, true
	}
	return ShapeNone, false
}

// telexApplyShape implements rule 3 for Telex: double-letter shapes
// (aa, ee, oo) and the 'w' horn/breve modifier, including the uo+w -> ươ
// compound case.
func telexApplyShape(buf *CompositionBuffer, key Keycode) (applied bool, firstIndex int, changes []transformChange) {
	switch key {
	case KeyA, KeyE, KeyO:
		li := buf.LastIndex()
		if li < 0 {
			return false, 0, nil
		}
		prev := buf.Get(li)
		if prev.Key != key || prev.Tone != ShapeNone {
			return false, 0, nil
		}
		old := prev
		newCell := prev
		newCell.Tone = ShapeCircumflex
		buf.ReplaceAt(li, newCell)
		return true, li, []transformChange{{Index: li, Prev: old}}

	case KeyW:
		vowels := buf.VowelIndices()
		if len(vowels) == 0 {
			return false, 0, nil
		}
		li := vowels[len(vowels)-1]
		target := buf.Get(li)
		shape, ok := telexWShapeFor(target.Key)
		if !ok || target.Tone != ShapeNone {
			return false, 0, nil
		}

		first := li
		changes = make([]transformChange, 0, 2)

		if shape == ShapeHorn && target.Key == KeyO && len(vowels) >= 2 {
			prevIdx := vowels[len(vowels)-2]
			prevVowel := buf.Get(prevIdx)
			if prevVowel.Key == KeyU && prevVowel.Tone == ShapeNone {
				oldU := prevVowel
				newU := prevVowel
				newU.Tone = ShapeHorn
				buf.ReplaceAt(prevIdx, newU)
				changes = append(changes, transformChange{Index: prevIdx, Prev: oldU})
				first = prevIdx
			}
		}

		old := target
		newTarget := target
		newTarget.Tone = shape
		buf.ReplaceAt(li, newTarget)
		changes = append(changes, transformChange{Index: li, Prev: old})
		return true, first, changes
	}
	return false, 0, nil
}

var telexTable = methodTable{
	Method:    MethodTelex,
	MarkKeys:  telexMarkKeys,
	RemoveKey: KeyZ,
	StrokeKey: KeyD,
	ApplyShape: telexApplyShape,
}
