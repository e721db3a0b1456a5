package vpiano

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadWaveform is wrapped by errors for unrecognised waveform names.
var ErrBadWaveform = errors.New("bad waveform")

type Waveform int

const (
	Sine Waveform = iota
	Sawtooth
	Triangle
	Square
	Custom
)

var waveformNames = [...]string{"sine", "sawtooth", "triangle", "square", "custom"}

// Waveforms lists every waveform in menu order.
func Waveforms() []Waveform { return []Waveform{Sine, Sawtooth, Triangle, Square, Custom} }

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform looks up a waveform by name, ignoring case and surrounding space.
func ParseWaveform(name string) (Waveform, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range waveformNames {
		if s == n {
			return Waveform(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrBadWaveform, name)
}

const (
	MinGain        = -1.0
	MaxGain        = 0.0
	MinScaleOffset = 0
	MaxScaleOffset = 4
)

// Settings are the oscillator parameters read on every key press.
//
// Gain lies in [MinGain, MaxGain].  It is applied the way the original
// browser piano applied it: the oscillator reaches the output both directly
// and through the gain stage, so the audible amplitude is 1+Gain.
type Settings struct {
	Gain        float64
	Waveform    Waveform
	ScaleOffset int
}

func DefaultSettings() Settings {
	return Settings{Gain: -.5, Waveform: Sine, ScaleOffset: 2}
}

// SetVolume maps a volume percentage in [0, 100] to Gain.
// Out of range input is clamped.
func (s *Settings) SetVolume(percent float64) {
	if math.IsNaN(percent) {
		return
	}
	percent = clamp(percent, 0, 100)
	g := math.Round((percent/100-1)*100) / 100
	s.Gain = clamp(g, MinGain, MaxGain)
}

// Volume is the inverse of SetVolume.
func (s Settings) Volume() float64 {
	return math.Round((s.Gain + 1) * 100)
}

// Amplitude is the linear output level implied by Gain.
func (s Settings) Amplitude() float64 {
	return 1 + s.Gain
}

// SetScaleOffset sets ScaleOffset, clamped to [MinScaleOffset, MaxScaleOffset].
func (s *Settings) SetScaleOffset(n int) {
	s.ScaleOffset = min(max(n, MinScaleOffset), MaxScaleOffset)
}

// SetWaveform sets Waveform by name.  An unknown name leaves it unchanged.
func (s *Settings) SetWaveform(name string) error {
	w, err := ParseWaveform(name)
	if err != nil {
		return err
	}
	s.Waveform = w
	return nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
