package engine

// CompositionBuffer is a fixed-capacity ordered sequence of composition
// cells. Capacity is exactly bufferCapacity; cells at indices >= Len are
// semantically absent. All operations are O(1) and allocate nothing — the
// array lives inline in the struct (spec.md §5: no heap allocation on the
// hot path).
type CompositionBuffer struct {
	cells [bufferCapacity]Cell
	len   int
}

// Len reports how many cells are in use.
func (b *CompositionBuffer) Len() int { return b.len }

// Push appends a cell. On overflow it is a silent no-op (spec.md §4.B):
// the caller gets ok=false and the buffer is left unchanged.
func (b *CompositionBuffer) Push(c Cell) (ok bool) {
	if b.len >= bufferCapacity {
		return false
	}
	b.cells[b.len] = c
	b.len++
	return true
}

// Pop removes the last cell. Precondition: Len() > 0.
func (b *CompositionBuffer) Pop() {
	if b.len == 0 {
		return
	}
	b.len--
}

// Clear empties the buffer.
func (b *CompositionBuffer) Clear() {
	b.len = 0
}

// Get returns the cell at index i. Precondition: i < Len().
func (b *CompositionBuffer) Get(i int) Cell {
	return b.cells[i]
}

// ReplaceAt overwrites the cell at index i. Precondition: i < Len().
func (b *CompositionBuffer) ReplaceAt(i int, c Cell) {
	if i < 0 || i >= b.len {
		return
	}
	b.cells[i] = c
}

// IterFrom calls fn for every cell at index >= from, in order. It stops
// early if fn returns false.
func (b *CompositionBuffer) IterFrom(from int, fn func(index int, cell Cell) bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < b.len; i++ {
		if !fn(i, b.cells[i]) {
			return
		}
	}
}

// LastIndex returns the index of the last cell, or -1 if empty.
func (b *CompositionBuffer) LastIndex() int { return b.len - 1 }

// VowelIndices returns the indices of every vowel cell in the buffer.
func (b *CompositionBuffer) VowelIndices() []int {
	idx := make([]int, 0, 3)
	for i := 0; i < b.len; i++ {
		if IsVowel(b.cells[i].Key) {
			idx = append(idx, i)
		}
	}
	return idx
}

// MarkIndex returns the index of the cell currently carrying a tone mark,
// or -1 if none does. At most one cell ever carries a mark (spec.md §3).
func (b *CompositionBuffer) MarkIndex() int {
	for i := 0; i < b.len; i++ {
		if b.cells[i].Mark != ToneNone {
			return i
		}
	}
	return -1
}
