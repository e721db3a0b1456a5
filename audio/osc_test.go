package audio

import (
	"math"
	"testing"

	"github.com/gordonklaus/vpiano"
)

// crossings counts upward zero crossings in one second of o at freq.
func crossings(o Osc, freq float64) int {
	const sampleRate = 48000
	Init(Params{sampleRate}, o)
	n := 0
	prev := o.Osc(freq)
	for i := 1; i < sampleRate; i++ {
		x := o.Osc(freq)
		if prev < 0 && x >= 0 {
			n++
		}
		prev = x
	}
	return n
}

func TestOscFrequency(t *testing.T) {
	// sin x + sin 2x / 2 crosses zero upwards once per period.
	table, err := NewWavetable([]float64{1, .5}, 256)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range vpiano.Waveforms() {
		for _, freq := range []float64{55, 220, 440, 1760} {
			n := crossings(NewOsc(w, table), freq)
			if math.Abs(float64(n)-freq) > 1 {
				t.Errorf("%s at %v Hz: %d crossings per second", w, freq, n)
			}
		}
	}
}

func TestOscRange(t *testing.T) {
	table, _ := NewWavetable(DefaultHarmonics, DefaultTableSize)
	for _, w := range vpiano.Waveforms() {
		o := NewOsc(w, table)
		Init(Params{44100}, o)
		lo, hi := 0.0, 0.0
		for i := 0; i < 44100; i++ {
			x := o.Osc(261.63)
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		if lo < -1.0001 || hi > 1.0001 || hi < .9 || lo > -.9 {
			t.Errorf("%s: range [%v, %v]", w, lo, hi)
		}
	}
}

func TestNewOsc(t *testing.T) {
	for w, want := range map[vpiano.Waveform]Osc{
		vpiano.Sine:     &SineOsc{},
		vpiano.Sawtooth: &SawOsc{},
		vpiano.Triangle: &TriangleOsc{},
		vpiano.Square:   &SquareOsc{},
	} {
		if got := NewOsc(w, nil); got == nil || typeName(got) != typeName(want) {
			t.Errorf("%s: got %T", w, got)
		}
	}
	if _, ok := NewOsc(vpiano.Custom, nil).(*SineOsc); !ok {
		t.Error("custom without a table should fall back to sine")
	}
	table, _ := NewWavetable([]float64{1}, 64)
	if _, ok := NewOsc(vpiano.Custom, table).(*WavetableOsc); !ok {
		t.Error("expected a wavetable oscillator")
	}
}

func typeName(o Osc) string {
	switch o.(type) {
	case *SineOsc:
		return "sine"
	case *SawOsc:
		return "saw"
	case *TriangleOsc:
		return "triangle"
	case *SquareOsc:
		return "square"
	case *WavetableOsc:
		return "wavetable"
	}
	return "?"
}

func BenchmarkSineOsc(b *testing.B) {
	o := new(SineOsc)
	Init(Params{96000}, o)
	for i := 0; i < b.N; i++ {
		o.Osc(1234)
	}
}

func BenchmarkSawOsc(b *testing.B) {
	o := new(SawOsc)
	Init(Params{96000}, o)
	for i := 0; i < b.N; i++ {
		o.Osc(1234)
	}
}

func BenchmarkWavetableOsc(b *testing.B) {
	table, _ := NewWavetable(DefaultHarmonics, DefaultTableSize)
	o := &WavetableOsc{Table: table}
	Init(Params{96000}, o)
	for i := 0; i < b.N; i++ {
		o.Osc(1234)
	}
}
