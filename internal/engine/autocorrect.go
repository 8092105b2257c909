package engine

import (
	"strings"
	"sync"
)

// shortcuts are user-defined/built-in expansions that take priority over
// the mode dictionaries (spec.md §4.G step 1's tie-break rule), in the
// style of the "gõ tắt" shortcut feature shipped by popular Vietnamese
// typing tools.
var shortcuts = map[string]string{
	"vn":  "Việt Nam",
	"tp":  "Thành phố",
	"vd":  "ví dụ",
	"ko":  "không",
}

// viCorrections fixes common Vietnamese words typed without their
// diacritics or with a common slip.
var viCorrections = map[string]string{
	"khong": "không",
	"duoc":  "được",
	"nhung": "nhưng",
	"cung":  "cũng",
	"chung": "chúng",
	"truoc": "trước",
	"nguoi": "người",
	"minh":  "mình",
}

// enCorrections fixes common English typos.
var enCorrections = map[string]string{
	"teh":       "the",
	"hte":       "the",
	"adn":       "and",
	"taht":      "that",
	"wich":      "which",
	"thier":     "their",
	"recieve":   "receive",
	"seperate":  "separate",
	"definately": "definitely",
	"occured":   "occurred",
}

var (
	autocorrectOnce sync.Once
	bothDict        map[string]string
)

// buildBothDict merges the Vietnamese and English tables once, the first
// time autocorrectMode=both is used (spec.md §4.G: "Dictionaries are
// lazily materialised on first non-off configuration").
func buildBothDict() map[string]string {
	autocorrectOnce.Do(func() {
		bothDict = make(map[string]string, len(viCorrections)+len(enCorrections))
		for k, v := range viCorrections {
			bothDict[k] = v
		}
		for k, v := range enCorrections {
			bothDict[k] = v
		}
	})
	return bothDict
}

func lookupAutocorrect(mode AutocorrectMode, lower string) (string, bool) {
	if replacement, ok := shortcuts[lower]; ok {
		return replacement, true
	}
	switch mode {
	case AutocorrectVi:
		r, ok := viCorrections[lower]
		return r, ok
	case AutocorrectEn:
		r, ok := enCorrections[lower]
		return r, ok
	case AutocorrectBoth:
		r, ok := buildBothDict()[lower]
		return r, ok
	}
	return "", false
}

// casePattern classifies the case of a typed word so a replacement can
// mirror it.
type casePattern uint8

const (
	caseLower casePattern = iota
	caseUpper
	caseTitle
	caseMixed
)

func classifyCase(s string) casePattern {
	if s == "" {
		return caseLower
	}
	if s == strings.ToLower(s) {
		return caseLower
	}
	if s == strings.ToUpper(s) {
		return caseUpper
	}
	runes := []rune(s)
	if strings.ToUpper(string(runes[0])) == string(runes[0]) &&
		string(runes[1:]) == strings.ToLower(string(runes[1:])) {
		return caseTitle
	}
	return caseMixed
}

func applyCasePattern(original, replacement string) string {
	switch classifyCase(original) {
	case caseUpper:
		return strings.ToUpper(replacement)
	case caseTitle:
		runes := []rune(strings.ToLower(replacement))
		if len(runes) == 0 {
			return replacement
		}
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		return string(runes)
	case caseMixed:
		return strings.ToLower(replacement)
	default:
		return replacement
	}
}

// rawWordString reconstructs the literal, untransformed word from the raw
// keystroke shadow buffer.
func rawWordString(buf *CompositionBuffer) string {
	var sb strings.Builder
	buf.IterFrom(0, func(_ int, c Cell) bool {
		sb.WriteRune(baseLetter(c.Key, c.Caps))
		return true
	})
	return sb.String()
}

// boundaryRune returns the literal character a break key inserts, or 0 if
// the key has none (arrows, Escape, Home/End, ...).
func boundaryRune(key Keycode) rune {
	switch key {
	case KeySpace:
		return ' '
	case KeyTab:
		return '\t'
	case KeyEnter, KeyEscape, KeyLeft, KeyUp, KeyRight, KeyDown, KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		return 0
	}
	if key >= 0x21 && key <= 0x7E {
		return rune(key)
	}
	return 0
}

// tryAutocorrect implements component G. It is only ever called on a break
// key (spec.md §4.G: "Activated only on word-boundary keys").
func (e *Engine) tryAutocorrect(boundaryKey Keycode) EditResult {
	if e.autocorrectMode == AutocorrectOff || e.rawBuf.Len() == 0 {
		return noEdit
	}

	raw := rawWordString(&e.rawBuf)
	lower := strings.ToLower(raw)
	replacement, ok := lookupAutocorrect(e.autocorrectMode, lower)
	if !ok {
		return noEdit
	}

	cased := applyCasePattern(raw, replacement)
	chars := []rune(cased)
	if r := boundaryRune(boundaryKey); r != 0 {
		chars = append(chars, r)
	}
	if len(chars) > maxOutputChars {
		chars = chars[:maxOutputChars]
	}

	result := EditResult{
		Action:         ActionSend,
		BackspaceCount: uint8(e.buf.Len()),
		ValidLen:       uint8(len(chars)),
	}
	copy(result.Chars[:], chars)
	return result
}
