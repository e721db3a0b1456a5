package vpiano

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PitchClasses lists the twelve pitch-class names in chromatic order.
var PitchClasses = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ErrBadLabel is wrapped by every error caused by a malformed key label.
var ErrBadLabel = errors.New("bad key label")

const (
	// BaseFrequency is the reference pitch in hertz.
	BaseFrequency = 440.0
	// BaseNote is the note number that sounds at BaseFrequency with a scale offset of 0.
	BaseNote = 49
	// MaxOctave is the highest octave a label may name.
	MaxOctave = 10
)

// A Label names a key: a pitch class followed by an octave from 1 to
// MaxOctave, e.g. "C#3".
type Label string

// ParseLabel returns s as a Label if it is well formed.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if _, _, err := l.split(); err != nil {
		return "", err
	}
	return l, nil
}

func (l Label) split() (pitchClass, octave int, err error) {
	s := string(l)
	i := strings.IndexAny(s, "0123456789+-")
	if i <= 0 {
		return 0, 0, fmt.Errorf("%w %q: missing pitch class or octave", ErrBadLabel, s)
	}
	pitchClass = -1
	for j, name := range PitchClasses {
		if name == s[:i] {
			pitchClass = j
			break
		}
	}
	if pitchClass < 0 {
		return 0, 0, fmt.Errorf("%w %q: unknown pitch class %q", ErrBadLabel, s, s[:i])
	}
	octave, err = strconv.Atoi(s[i:])
	if err != nil || octave < 1 || s[i] == '+' {
		return 0, 0, fmt.Errorf("%w %q: octave must be a positive integer", ErrBadLabel, s)
	}
	if octave > MaxOctave {
		return 0, 0, fmt.Errorf("%w %q: octave above %d", ErrBadLabel, s, MaxOctave)
	}
	return pitchClass, octave, nil
}

// PitchClass returns the index of l's pitch class in PitchClasses.
func (l Label) PitchClass() (int, error) {
	p, _, err := l.split()
	return p, err
}

// Octave returns l's octave number.
func (l Label) Octave() (int, error) {
	_, o, err := l.split()
	return o, err
}

// IsSharp reports whether l names a black key.
func (l Label) IsSharp() bool {
	return strings.Contains(string(l), "#")
}

// NoteNumber returns the note number of l: (octave-1)*12 + pitch class.
func NoteNumber(l Label) (int, error) {
	p, o, err := l.split()
	if err != nil {
		return 0, err
	}
	return (o-1)*12 + p, nil
}

// LabelOf is the inverse of NoteNumber.  n must not be negative.
func LabelOf(n int) Label {
	return Label(PitchClasses[n%12] + strconv.Itoa(n/12+1))
}

// Frequency returns the equal-tempered frequency in hertz of note number n
// shifted by scaleOffset octaves:  BaseFrequency * 2^((n + 12*scaleOffset - BaseNote)/12).
func Frequency(n, scaleOffset int) float64 {
	// Whole octaves are applied with Ldexp so that they are exact.
	d := n + scaleOffset*12 - BaseNote
	octaves, semitones := d/12, d%12
	if semitones < 0 {
		octaves, semitones = octaves-1, semitones+12
	}
	return math.Ldexp(BaseFrequency*math.Exp2(float64(semitones)/12), octaves)
}

// LabelFrequency combines NoteNumber and Frequency.
func LabelFrequency(l Label, scaleOffset int) (float64, error) {
	n, err := NoteNumber(l)
	if err != nil {
		return 0, err
	}
	return Frequency(n, scaleOffset), nil
}
