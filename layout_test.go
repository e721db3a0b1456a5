package vpiano

import "testing"

func TestNewLayout(t *testing.T) {
	keys := NewLayout(DefaultKeyCount)
	if len(keys) != DefaultKeyCount {
		t.Fatalf("expected %d keys, got %d", DefaultKeyCount, len(keys))
	}
	if keys[0].Label != "C1" || keys[36].Label != "C4" {
		t.Errorf("unexpected range %s..%s", keys[0].Label, keys[36].Label)
	}
	for i, k := range keys {
		n, err := NoteNumber(k.Label)
		if err != nil || n != i {
			t.Errorf("key %d: label %s has note number %d (%v)", i, k.Label, n, err)
		}
		if k.Sharp != k.Label.IsSharp() {
			t.Errorf("key %s: sharp = %v", k.Label, k.Sharp)
		}
	}

	shortcuts := Shortcuts()
	for i, s := range shortcuts {
		k := keys[12+i]
		if k.Shortcut != s.Key || k.Label != s.Label {
			t.Errorf("key %d: expected %s/%s, got %s/%s", 12+i, s.Key, s.Label, k.Shortcut, k.Label)
		}
	}
	captioned := 0
	for _, k := range keys {
		if k.Shortcut != "" {
			captioned++
		}
	}
	if captioned != len(shortcuts) {
		t.Errorf("expected %d captions, got %d", len(shortcuts), captioned)
	}
}

func TestNewLayoutTooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 13, 24} {
		keys := NewLayout(n)
		if n >= 0 && len(keys) != n {
			t.Errorf("%d: got %d keys", n, len(keys))
		}
		for _, k := range keys {
			if k.Shortcut != "" {
				t.Errorf("%d keys: unexpected caption on %s", n, k.Label)
			}
		}
	}
	if keys := NewLayout(25); keys[24].Shortcut != "i" {
		t.Errorf("25 keys: expected C3 to be captioned, got %q", keys[24].Shortcut)
	}
}

func TestShortcutLabel(t *testing.T) {
	want := []Label{"C2", "C#2", "D2", "D#2", "E2", "F2", "F#2", "G2", "G#2", "A2", "A#2", "B2", "C3"}
	for i, k := range []string{"q", "2", "w", "3", "e", "r", "5", "t", "6", "y", "7", "u", "i"} {
		l, ok := ShortcutLabel(k)
		if !ok || l != want[i] {
			t.Errorf("%s: expected %s, got %s (%v)", k, want[i], l, ok)
		}
		if n, _ := NoteNumber(l); n != 12+i {
			t.Errorf("%s: %s is not consecutive", k, l)
		}
	}
	for _, k := range []string{"a", "1", "4", "Q", "o", ""} {
		if _, ok := ShortcutLabel(k); ok {
			t.Errorf("%q: expected no binding", k)
		}
	}
	s := Shortcuts()
	s[0].Key = "z"
	if _, ok := ShortcutLabel("q"); !ok {
		t.Error("Shortcuts exposed the internal table")
	}
}
