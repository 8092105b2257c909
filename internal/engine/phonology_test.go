package engine

import "testing"

func cellsFromKeys(keys ...Keycode) []Cell {
	cells := make([]Cell, len(keys))
	for i, k := range keys {
		cells[i] = Cell{Key: k}
	}
	return cells
}

func shapeCell(key Keycode, shape Shape) Cell {
	return Cell{Key: key, Tone: shape}
}

func bufferOf(cells ...Cell) *CompositionBuffer {
	var buf CompositionBuffer
	for _, c := range cells {
		buf.Push(c)
	}
	return &buf
}

func TestDetermineMarkIndex(t *testing.T) {
	tests := []struct {
		name       string
		buf        *CompositionBuffer
		modernTone bool
		wantIndex  int
		wantOK     bool
	}{
		{
			name:   "no vowels",
			buf:    bufferOf(cellsFromKeys(KeyT, KeyH)...),
			wantOK: false,
		},
		{
			name:      "single vowel",
			buf:       bufferOf(cellsFromKeys(KeyT, KeyI)...),
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "three vowels take the middle",
			buf:       bufferOf(cellsFromKeys(KeyN, KeyG, KeyO, KeyA, KeyI)...), // ngoai: o,a,i
			wantIndex: 3,
			wantOK:    true,
		},
		{
			name:      "two vowels with final consonant: toan -> a",
			buf:       bufferOf(cellsFromKeys(KeyT, KeyO, KeyA, KeyN)...),
			wantIndex: 2,
			wantOK:    true,
		},
		{
			name:      "qua: u absorbed by q, mark on a",
			buf:       bufferOf(cellsFromKeys(KeyQ, KeyU, KeyA)...),
			wantIndex: 2,
			wantOK:    true,
		},
		{
			name: "compound nucleus uo+horn (ươ): mark on second",
			buf: bufferOf(
				Cell{Key: KeyT}, Cell{Key: KeyH},
				shapeCell(KeyU, ShapeHorn), shapeCell(KeyO, ShapeHorn),
				Cell{Key: KeyN}, Cell{Key: KeyG},
			),
			wantIndex: 3,
			wantOK:    true,
		},
		{
			name:       "medial glide oa, traditional: mark on second (a)",
			buf:        bufferOf(cellsFromKeys(KeyH, KeyO, KeyA)...),
			modernTone: false,
			wantIndex:  2,
			wantOK:     true,
		},
		{
			name:       "medial glide oa, modern: mark on first (o)",
			buf:        bufferOf(cellsFromKeys(KeyH, KeyO, KeyA)...),
			modernTone: true,
			wantIndex:  1,
			wantOK:     true,
		},
		{
			name:      "glide-first open rime ua: mark on first",
			buf:       bufferOf(cellsFromKeys(KeyM, KeyU, KeyA)...),
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "offglide pair ai: mark on first",
			buf:       bufferOf(cellsFromKeys(KeyM, KeyA, KeyI)...),
			wantIndex: 1,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := DetermineMarkIndex(tt.buf, tt.modernTone)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if idx != tt.wantIndex {
				t.Fatalf("index = %d, want %d", idx, tt.wantIndex)
			}
		})
	}
}
