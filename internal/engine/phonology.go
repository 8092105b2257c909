package engine

// DetermineMarkIndex runs the Vietnamese phonology rules (spec.md §4.C)
// over the vowel cells currently in buf and returns the buffer index that
// should carry the tone mark. ok is false if buf has no vowel cell.
//
// modernTone selects between the two recognised placements for the
// oa/oe/uy open-syllable case (see scenario 6 of spec.md §8): traditional
// keeps the mark on the second vowel (hoà), modern moves it to the first
// vowel of the rhyme as commonly typed today (hòa) — both are attested
// Vietnamese orthography, this only picks which one a press of the mark
// key produces.
func DetermineMarkIndex(buf *CompositionBuffer, modernTone bool) (index int, ok bool) {
	vowels := buf.VowelIndices()
	if len(vowels) == 0 {
		return 0, false
	}
	if len(vowels) == 1 {
		return vowels[0], true
	}
	if len(vowels) >= 3 {
		return vowels[len(vowels)/2], true
	}

	// Exactly two vowels.
	hasFinalConsonant := vowels[len(vowels)-1] != buf.LastIndex()

	first := buf.Get(vowels[0])
	second := buf.Get(vowels[1])

	if hasFinalConsonant {
		return vowels[1], true
	}

	precededByQ := vowels[0] > 0 && buf.Get(vowels[0]-1).Key == KeyQ

	fl, fs := first.Key, first.Tone
	sl, ss := second.Key, second.Tone

	// qua / que / qui / quy: q absorbs the 'u' as a glide, mark always on
	// the vowel following it.
	if precededByQ && fl == KeyU && fs == ShapeNone {
		return vowels[1], true
	}

	// Compound nucleus: ươ, uô, iê/yê — always the second vowel.
	if isCompoundNucleus(fl, fs, sl, ss) {
		return vowels[1], true
	}

	// Medial glide + main: oa, oe, uy (no preceding q).
	if fl == KeyO && fs == ShapeNone && (sl == KeyA || sl == KeyE) && ss == ShapeNone {
		if modernTone {
			return vowels[0], true
		}
		return vowels[1], true
	}
	if fl == KeyU && fs == ShapeNone && sl == KeyY && ss == ShapeNone {
		if modernTone {
			return vowels[0], true
		}
		return vowels[1], true
	}

	// Open rimes where the tone traditionally sits on the glide, not the
	// main vowel: ia, ưa, ua (without a preceding q, already excluded above).
	if isGlideFirstOpenRime(fl, fs, sl, ss) {
		return vowels[0], true
	}

	// Main + offglide: ai, ao, au, ay, oi, ui, ơi, ưi, ây, ôi, ei — first
	// vowel carries the tone, the second is a semivowel coda.
	if isOffglidePair(fl, fs, sl, ss) {
		return vowels[0], true
	}

	// Fallback: open two-vowel cluster with no recognised shape, tone goes
	// on the first vowel.
	return vowels[0], true
}

func isCompoundNucleus(fl Keycode, fs Shape, sl Keycode, ss Shape) bool {
	switch {
	case fl == KeyU && fs == ShapeHorn && sl == KeyO && ss == ShapeHorn: // ươ
		return true
	case fl == KeyU && fs == ShapeNone && sl == KeyO && ss == ShapeCircumflex: // uô
		return true
	case (fl == KeyI || fl == KeyY) && fs == ShapeNone && sl == KeyE && ss == ShapeCircumflex: // iê/yê
		return true
	}
	return false
}

func isGlideFirstOpenRime(fl Keycode, fs Shape, sl Keycode, ss Shape) bool {
	switch {
	case fl == KeyI && fs == ShapeNone && sl == KeyA && ss == ShapeNone: // ia
		return true
	case fl == KeyU && fs == ShapeHorn && sl == KeyA && ss == ShapeNone: // ưa
		return true
	case fl == KeyU && fs == ShapeNone && sl == KeyA && ss == ShapeNone: // ua
		return true
	}
	return false
}

func isOffglidePair(fl Keycode, fs Shape, sl Keycode, ss Shape) bool {
	if ss != ShapeNone {
		return false
	}
	switch sl {
	case KeyI, KeyU, KeyO, KeyY:
	default:
		return false
	}
	switch {
	case fl == KeyA && fs == ShapeNone && (sl == KeyI || sl == KeyO || sl == KeyU || sl == KeyY): // ai,ao,au,ay
		return true
	case fl == KeyA && fs == ShapeCircumflex && sl == KeyY: // ây
		return true
	case fl == KeyO && fs == ShapeNone && sl == KeyI: // oi
		return true
	case fl == KeyU && fs == ShapeNone && sl == KeyI: // ui
		return true
	case fl == KeyO && fs == ShapeHorn && sl == KeyI: // ơi
		return true
	case fl == KeyU && fs == ShapeHorn && sl == KeyI: // ưi
		return true
	case fl == KeyO && fs == ShapeCircumflex && sl == KeyI: // ôi
		return true
	case fl == KeyE && fs == ShapeNone && sl == KeyI: // ei
		return true
	}
	return false
}
