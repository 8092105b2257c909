// Package engine provides the core input method engine for Vietnamese typing.
package engine

// Keycode is an abstract, letter-family keyboard identifier. It is not a
// scan code or an X11 keysym: hosts translate their native key events into
// this space before calling the dispatcher. Letters use their ASCII
// uppercase code; digits use ASCII; everything else is classified by the
// host as a break key, a control key, or passed straight through.
type Keycode uint16

// Method selects which keying convention the dispatcher speaks.
type Method uint8

const (
	MethodTelex Method = iota
	MethodVNI
)

// Action tells the host what to do with the EditResult.
type Action uint8

const (
	ActionNone Action = iota
	ActionSend
	ActionRestore
)

// AutocorrectMode selects which dictionary (if any) word-boundary keys
// consult.
type AutocorrectMode uint8

const (
	AutocorrectOff AutocorrectMode = iota
	AutocorrectVi
	AutocorrectEn
	AutocorrectBoth
)

// ToneMark is one of the five Vietnamese tones, or none.
type ToneMark uint8

const (
	ToneNone ToneMark = iota
	ToneSac           // sắc
	ToneHuyen         // huyền
	ToneHoi           // hỏi
	ToneNga           // ngã
	ToneNang          // nặng
)

// Shape is a vowel-base alteration. Consonants always carry ShapeNone.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeCircumflex
	ShapeHorn
	ShapeBreve
)

// TransformKind classifies the most recent user-visible transformation, so
// that repeating its trigger key can revert it (spec.md §4.E rule 6).
type TransformKind uint8

const (
	TransformNone TransformKind = iota
	TransformMark
	TransformShape
	TransformStroke
)

// bufferCapacity is the fixed composition-buffer size (spec.md §3).
const bufferCapacity = 32

// maxOutputChars bounds EditResult.Chars; 32 cells can never render more
// code points than that (one per cell), so 64 leaves ample headroom for
// auto-correct replacement words.
const maxOutputChars = 64

// Cell is one user keystroke contributing to the in-progress word.
type Cell struct {
	Key    Keycode
	Caps   bool
	Tone   Shape
	Mark   ToneMark
	Stroke bool // true only when Key is d/D and the cell represents đ/Đ
}

// EditResult is returned to the host once per processed key.
type EditResult struct {
	Action        Action
	BackspaceCount uint8
	Chars         [maxOutputChars]rune
	ValidLen      uint8
}

func (r EditResult) String() string {
	return string(r.Chars[:r.ValidLen])
}

// noEdit is the zero-value EditResult: action=none, nothing to insert.
var noEdit = EditResult{Action: ActionNone}
