package engine

import "testing"

func TestEngine_Autocorrect_English(t *testing.T) {
	e := NewEngine()
	e.SetAutocorrectMode(AutocorrectEn)
	var last EditResult
	for _, k := range []Keycode{KeyT, KeyE, KeyH, KeySpace} {
		last = e.ProcessKey(k, false, false)
	}
	if last.Action != ActionSend {
		t.Fatalf("action = %v, want ActionSend", last.Action)
	}
	if got := last.String(); got != "the " {
		t.Fatalf("chars = %q, want %q", got, "the ")
	}
	if last.BackspaceCount != 3 {
		t.Fatalf("backspace = %d, want 3 (teh)", last.BackspaceCount)
	}
}

func TestEngine_Autocorrect_PreservesTitleCase(t *testing.T) {
	e := NewEngine()
	e.SetAutocorrectMode(AutocorrectEn)
	var last EditResult
	for _, k := range []Keycode{KeyT, KeyE, KeyH, KeySpace} {
		shift := k == KeyT
		last = e.ProcessKey(k, shift, false)
	}
	if got := last.String(); got != "The " {
		t.Fatalf("chars = %q, want %q", got, "The ")
	}
}

func TestEngine_Autocorrect_Shortcut(t *testing.T) {
	e := NewEngine()
	e.SetAutocorrectMode(AutocorrectVi)
	var last EditResult
	for _, k := range []Keycode{KeyV, KeyN, KeySpace} {
		last = e.ProcessKey(k, false, false)
	}
	if got := last.String(); got != "Việt Nam " {
		t.Fatalf("chars = %q, want %q", got, "Việt Nam ")
	}
}

func TestEngine_Autocorrect_NoMatchIsNoop(t *testing.T) {
	e := NewEngine()
	e.SetAutocorrectMode(AutocorrectEn)
	var last EditResult
	for _, k := range []Keycode{KeyZ, KeyZ, KeyZ, KeySpace} {
		last = e.ProcessKey(k, false, false)
	}
	if last.Action != ActionNone {
		t.Fatalf("action = %v, want ActionNone for an unrecognised word", last.Action)
	}
}

func TestEngine_Autocorrect_OffModeNeverFires(t *testing.T) {
	e := NewEngine()
	var last EditResult
	for _, k := range []Keycode{KeyT, KeyE, KeyH, KeySpace} {
		last = e.ProcessKey(k, false, false)
	}
	if last.Action != ActionNone {
		t.Fatalf("action = %v, want ActionNone when autocorrect is off", last.Action)
	}
}

func TestClassifyCase(t *testing.T) {
	tests := []struct {
		in   string
		want casePattern
	}{
		{"teh", caseLower},
		{"TEH", caseUpper},
		{"Teh", caseTitle},
		{"TeH", caseMixed},
	}
	for _, tt := range tests {
		if got := classifyCase(tt.in); got != tt.want {
			t.Errorf("classifyCase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
