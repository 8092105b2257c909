package engine

import "testing"

func TestRebuild_ActionNoneWhenFromAtEnd(t *testing.T) {
	var buf CompositionBuffer
	buf.Push(Cell{Key: KeyA})
	result := Rebuild(&buf, 1, 1)
	if result.Action != ActionNone {
		t.Fatalf("action = %v, want ActionNone", result.Action)
	}
}

func TestRebuild_BackspaceUsesOldLen(t *testing.T) {
	var buf CompositionBuffer
	buf.Push(Cell{Key: KeyT})
	buf.Push(Cell{Key: KeyO})
	buf.Push(Cell{Key: KeyA, Mark: ToneSac})
	buf.Push(Cell{Key: KeyN})

	// The buffer already had 4 cells on screen (oldLen=4) before this edit;
	// the edit only touches from index 2 onward.
	result := Rebuild(&buf, 4, 2)
	if result.Action != ActionSend {
		t.Fatalf("action = %v, want ActionSend", result.Action)
	}
	if result.BackspaceCount != 2 {
		t.Fatalf("backspace = %d, want 2 (oldLen 4 - from 2)", result.BackspaceCount)
	}
	if got := result.String(); got != "án" {
		t.Fatalf("chars = %q, want án", got)
	}
}

func TestRebuild_AppendNeverBackspaces(t *testing.T) {
	var buf CompositionBuffer
	buf.Push(Cell{Key: KeyA})
	buf.Push(Cell{Key: KeyB})

	// A plain append: oldLen was 1 (just "a" on screen), the new cell
	// starts at index 1. No prior character at index >= 1 existed on
	// screen, so backspace must be 0, not 1.
	result := Rebuild(&buf, 1, 1)
	if result.BackspaceCount != 0 {
		t.Fatalf("backspace = %d, want 0", result.BackspaceCount)
	}
	if got := result.String(); got != "b" {
		t.Fatalf("chars = %q, want b", got)
	}
}

func TestRebuild_StrokeRendersD(t *testing.T) {
	var buf CompositionBuffer
	buf.Push(Cell{Key: KeyD, Stroke: true})
	result := Rebuild(&buf, 1, 0)
	if got := result.String(); got != "đ" {
		t.Fatalf("chars = %q, want đ", got)
	}
}

func TestRebuild_CapsAppliesToToneAndStroke(t *testing.T) {
	var buf CompositionBuffer
	buf.Push(Cell{Key: KeyD, Stroke: true, Caps: true})
	buf.Push(Cell{Key: KeyA, Mark: ToneSac, Caps: true})
	result := Rebuild(&buf, 2, 0)
	if got := result.String(); got != "ĐÁ" {
		t.Fatalf("chars = %q, want ĐÁ", got)
	}
}
