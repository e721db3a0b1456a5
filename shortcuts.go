package vpiano

// A Shortcut binds a physical keyboard key to a piano key.
type Shortcut struct {
	Key   string
	Label Label
}

var shortcuts = []Shortcut{
	{"q", "C2"},
	{"2", "C#2"},
	{"w", "D2"},
	{"3", "D#2"},
	{"e", "E2"},
	{"r", "F2"},
	{"5", "F#2"},
	{"t", "G2"},
	{"6", "G#2"},
	{"y", "A2"},
	{"7", "A#2"},
	{"u", "B2"},
	{"i", "C3"},
}

// Shortcuts returns the keyboard bindings in pitch order.
func Shortcuts() []Shortcut {
	return append([]Shortcut(nil), shortcuts...)
}

// ShortcutLabel returns the label bound to the physical key, if any.
func ShortcutLabel(key string) (Label, bool) {
	for _, s := range shortcuts {
		if s.Key == key {
			return s.Label, true
		}
	}
	return "", false
}
