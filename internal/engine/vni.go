package engine

// VNI mark keys. '0' is the remove-diacritics key (vniTable.RemoveKey).
var vniMarkKeys = map[Keycode]ToneMark{
	Key1: ToneSac,
	Key2: ToneHuyen,
	Key3: ToneHoi,
	Key4: ToneNga,
	Key5: ToneNang,
}

// vniShapeTargets maps the VNI shape digits to the shape they apply and the
// vowels eligible to receive it.
var vniShapeTargets = map[Keycode]struct {
	shape  Shape
	vowels map[Keycode]bool
}{
	Key6: {shape: ShapeCircumflex, vowels: map[Keycode]bool{KeyA: true, KeyE: true, KeyO: true}},
	Key7: {shape: ShapeHorn, vowels: map[Keycode]bool{KeyO: true, KeyU: true}},
	Key8: {shape: ShapeBreve, vowels: map[Keycode]bool{KeyA: true}},
}

// vniApplyShape implements rule 3 for VNI: digits 6/7/8 apply to the
// rightmost eligible unmodified vowel, with the same uo+7 -> ươ compound
// case Telex gives 'w'.
func vniApplyShape(buf *CompositionBuffer, key Keycode) (applied bool, firstIndex int, changes []transformChange) {
	spec, ok := vniShapeTargets[key]
	if !ok {
		return false, 0, nil
	}

	vowels := buf.VowelIndices()
	for i := len(vowels) - 1; i >= 0; i-- {
		idx := vowels[i]
		cell := buf.Get(idx)
		if cell.Tone != ShapeNone || !spec.vowels[cell.Key] {
			continue
		}

		first := idx
		changes = make([]transformChange, 0, 2)

		if spec.shape == ShapeHorn && cell.Key == KeyO && i > 0 {
			prevIdx := vowels[i-1]
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

		old := cell
		newCell := cell
		newCell.Tone = spec.shape
		buf.ReplaceAt(idx, newCell)
		changes = append(changes, transformChange{Index: idx, Prev: old})
		return true, first, changes
	}
	return false, 0, nil
}

var vniTable = methodTable{
	Method:    MethodVNI,
	MarkKeys:  vniMarkKeys,
	RemoveKey: Key0,
	StrokeKey: Key9,
	ApplyShape: vniApplyShape,
}
