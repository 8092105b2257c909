package engine

import "unicode"

// baseVowelForms maps (vowel keycode, shape) to the lowercase NFC base
// vowel it produces, before any tone mark is applied.
var baseVowelForms = map[Keycode]map[Shape]rune{
	KeyA: {ShapeNone: 'a', ShapeCircumflex: 'â', ShapeBreve: 'ă'},
	KeyE: {ShapeNone: 'e', ShapeCircumflex: 'ê'},
	KeyI: {ShapeNone: 'i'},
	KeyO: {ShapeNone: 'o', ShapeCircumflex: 'ô', ShapeHorn: 'ơ'},
	KeyU: {ShapeNone: 'u', ShapeHorn: 'ư'},
	KeyY: {ShapeNone: 'y'},
}

// toneTable maps a lowercase base vowel and a tone mark to the single
// precomposed NFC code point carrying both. No combining sequences are ever
// produced (spec.md §4.D, §6).
var toneTable = map[rune]map[ToneMark]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

// baseVowelLetter returns the lowercase precomposed vowel a cell renders to,
// ignoring case and tone.
func baseVowelLetter(key Keycode, shape Shape) rune {
	forms, ok := baseVowelForms[key]
	if !ok {
		return 0
	}
	if r, ok := forms[shape]; ok {
		return r
	}
	return forms[ShapeNone]
}

// renderCell renders a single composition cell to its output rune.
func renderCell(c Cell) rune {
	if c.Stroke && c.Key == KeyD {
		if c.Caps {
			return 'Đ'
		}
		return 'đ'
	}
	if IsVowel(c.Key) {
		base := baseVowelLetter(c.Key, c.Tone)
		toned := base
		if tones, ok := toneTable[base]; ok {
			if r, ok := tones[c.Mark]; ok {
				toned = r
			}
		}
		if c.Caps {
			return unicode.ToUpper(toned)
		}
		return toned
	}
	return baseLetter(c.Key, c.Caps)
}

// Rebuild renders buf[from:] to an EditResult. backspace_count is how many
// characters the host currently has on screen at index >= from — that is
// the buffer length as it stood BEFORE this key's edit (oldLen), not the
// buffer's current length: a rule that only replaces cells in place leaves
// oldLen unchanged, but a rule that appends or reverts-then-appends grows
// the buffer, and the newly-added cell was never on screen to begin with.
// Using the post-edit length there would manufacture a spurious backspace
// (see DESIGN.md). chars is every cell from index >= from, rendered in
// order, using the CURRENT (post-edit) buffer. Action is none iff
// from >= buf.Len() (spec.md §4.D).
func Rebuild(buf *CompositionBuffer, oldLen, from int) EditResult {
	if from < 0 {
		from = 0
	}
	n := buf.Len()
	if from >= n {
		return EditResult{Action: ActionNone, BackspaceCount: 0}
	}

	backspace := oldLen - from
	if backspace < 0 {
		backspace = 0
	}

	result := EditResult{
		Action:         ActionSend,
		BackspaceCount: uint8(backspace),
	}
	i := 0
	buf.IterFrom(from, func(_ int, cell Cell) bool {
		if i >= maxOutputChars {
			return false
		}
		result.Chars[i] = renderCell(cell)
		i++
		return true
	})
	result.ValidLen = uint8(i)
	return result
}
