package audio

import (
	"math"

	"github.com/gordonklaus/vpiano"
)

// An Osc produces one sample per call, advancing its phase by freq.
type Osc interface {
	Initer
	Osc(freq float64) float64
}

// NewOsc returns an oscillator for w.  table is used for vpiano.Custom and
// may be nil otherwise.
func NewOsc(w vpiano.Waveform, table *Wavetable) Osc {
	switch w {
	case vpiano.Sawtooth:
		return new(SawOsc)
	case vpiano.Triangle:
		return new(TriangleOsc)
	case vpiano.Square:
		return new(SquareOsc)
	case vpiano.Custom:
		if table != nil {
			return &WavetableOsc{Table: table}
		}
	}
	return new(SineOsc)
}

// phasor is a phase in [0, 1) shared by the oscillators below.
type phasor struct {
	Params Params
	phase  float64
}

func (p *phasor) InitAudio(q Params) { p.Params = q }

func (p *phasor) next(freq float64) float64 {
	x := p.phase
	p.phase += freq / p.Params.SampleRate
	p.phase -= math.Floor(p.phase)
	return x
}

type SineOsc struct{ phasor }

func (o *SineOsc) Osc(freq float64) float64 {
	return math.Sin(2 * math.Pi * o.next(freq))
}

// SawOsc rises from -1 to 1 once per period.
type SawOsc struct{ phasor }

func (o *SawOsc) Osc(freq float64) float64 {
	return 2*o.next(freq) - 1
}

type TriangleOsc struct{ phasor }

func (o *TriangleOsc) Osc(freq float64) float64 {
	return 1 - 4*math.Abs(o.next(freq)-.5)
}

type SquareOsc struct{ phasor }

func (o *SquareOsc) Osc(freq float64) float64 {
	if o.next(freq) < .5 {
		return 1
	}
	return -1
}

// WavetableOsc plays one period of Table per cycle with linear interpolation.
type WavetableOsc struct {
	phasor
	Table *Wavetable
}

func (o *WavetableOsc) Osc(freq float64) float64 {
	return o.Table.At(o.next(freq))
}
