package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/ktye/fft"
)

// DefaultHarmonics is the spectrum of the custom waveform: the relative
// amplitudes of the fundamental and its overtones.
var DefaultHarmonics = []float64{1, .6, .4, .25, .15, .1, .05, .03}

const DefaultTableSize = 2048

// A Wavetable holds a single period of a waveform, normalised to a peak of 1.
type Wavetable struct {
	samples []float64
}

// NewWavetable synthesises a period from sine harmonic amplitudes with an
// inverse FFT.  size must leave room for every harmonic below Nyquist.
func NewWavetable(harmonics []float64, size int) (*Wavetable, error) {
	if len(harmonics) == 0 {
		return nil, errors.New("wavetable: no harmonics")
	}
	if size <= 2*len(harmonics) {
		return nil, fmt.Errorf("wavetable: size %d too small for %d harmonics", size, len(harmonics))
	}
	f, err := fft.New(size)
	if err != nil {
		return nil, fmt.Errorf("wavetable: %w", err)
	}

	spectrum := make([]complex128, size)
	for i, a := range harmonics {
		k := i + 1
		// a*sin(x) = a/2i * (e^ix - e^-ix)
		spectrum[k] = complex(0, -a/2)
		spectrum[size-k] = complex(0, a/2)
	}
	x := f.Inverse(spectrum)

	peak := 0.0
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = real(x[i])
		peak = math.Max(peak, math.Abs(samples[i]))
	}
	if peak == 0 {
		return nil, errors.New("wavetable: silent spectrum")
	}
	for i := range samples {
		samples[i] /= peak
	}
	return &Wavetable{samples}, nil
}

func (w *Wavetable) Len() int { return len(w.samples) }

// At returns the waveform at phase p in [0, 1).
func (w *Wavetable) At(p float64) float64 {
	n := len(w.samples)
	x := p * float64(n)
	i := int(x)
	frac := x - float64(i)
	i %= n
	return w.samples[i] + frac*(w.samples[(i+1)%n]-w.samples[i])
}
