package audio

import "sync/atomic"

type Voice interface {
	Sing() float64
	Done() bool
}

// MultiVoice mixes voices, dropping each one once it is done.
type MultiVoice struct {
	voices []Voice
}

func (m *MultiVoice) Add(v Voice) {
	m.voices = append(m.voices, v)
}

func (m *MultiVoice) Sing() float64 {
	x := 0.0
	live := m.voices[:0]
	for _, v := range m.voices {
		x += v.Sing()
		if !v.Done() {
			live = append(live, v)
		}
	}
	clear(m.voices[len(live):])
	m.voices = live
	return x
}

func (m *MultiVoice) Len() int { return len(m.voices) }

// A Tone is a single oscillator voice with a gliding frequency.
// Sing, Glide and Release belong to the audio goroutine; Done may be
// called from anywhere.
type Tone struct {
	osc  Osc
	freq *Control
	gate *Gate
	amp  float64
	done atomic.Bool
}

// NewTone returns a tone at freq with linear amplitude amp.
func NewTone(osc Osc, freq, amp float64) *Tone {
	return &Tone{
		osc:  osc,
		freq: NewControl(&ControlPoint{0, freq}),
		gate: NewGate(DefaultAttack, DefaultRelease),
		amp:  amp,
	}
}

func (t *Tone) InitAudio(p Params) {
	Init(p, t.osc, t.freq, t.gate)
}

func (t *Tone) Sing() float64 {
	x := t.amp * t.gate.Sing() * t.osc.Osc(t.freq.Sing())
	if t.gate.Done() {
		t.done.Store(true)
	}
	return x
}

// Glide ramps the frequency linearly from its current value to freq.
func (t *Tone) Glide(freq, seconds float64) {
	t.freq.RampTo(freq, seconds)
}

func (t *Tone) Release() { t.gate.Release() }

func (t *Tone) Frequency() float64 { return t.freq.Value() }

func (t *Tone) Done() bool { return t.done.Load() }
