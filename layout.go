package vpiano

// A Key is one element of the on-screen keyboard.
type Key struct {
	Label    Label
	Sharp    bool
	Shortcut string // keyboard caption, empty outside the playable area
}

const DefaultKeyCount = 37

// KeyCounts are the keyboard sizes offered to the user.
var KeyCounts = []int{13, 25, 37, 49, 61}

// playableStart is the index of the first key reachable from the computer
// keyboard; it must line up with the first Shortcut.
const playableStart = 12

// NewLayout returns n consecutive chromatic keys starting at C1.  The
// keys bound to Shortcuts are captioned only when all of them fit.
func NewLayout(n int) []Key {
	if n < 0 {
		n = 0
	}
	keys := make([]Key, n)
	for i := range keys {
		l := LabelOf(i)
		keys[i] = Key{Label: l, Sharp: l.IsSharp()}
	}
	if n < playableStart+len(shortcuts) {
		return keys
	}
	for i, s := range shortcuts {
		keys[playableStart+i].Shortcut = s.Key
	}
	return keys
}
