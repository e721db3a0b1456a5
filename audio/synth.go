package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/vpiano"
)

// Synth is a vpiano.Backend.  Its methods may be called from any goroutine;
// they hand their work to the goroutine calling Render, which applies it at
// the start of the next buffer.
type Synth struct {
	params Params
	log    *slog.Logger
	custom *Wavetable

	mu      sync.Mutex
	pending []func()
	batch   []func()

	// Owned by the Render goroutine.
	voices MultiVoice
	delay  EventDelay
}

// NewSynth returns a Synth rendering at p.SampleRate.  A nil logger
// means slog.Default().
func NewSynth(p Params, log *slog.Logger) (*Synth, error) {
	if p.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: bad sample rate %v", p.SampleRate)
	}
	if log == nil {
		log = slog.Default()
	}
	table, err := NewWavetable(DefaultHarmonics, DefaultTableSize)
	if err != nil {
		return nil, err
	}
	s := &Synth{
		params: p,
		log:    log,
		custom: table,
	}
	Init(p, &s.delay)
	return s, nil
}

func (s *Synth) Params() Params { return s.params }

func (s *Synth) StartTone(freq float64, w vpiano.Waveform, gain float64, delay time.Duration) vpiano.Voice {
	t := NewTone(NewOsc(w, s.custom), freq, 1+gain)
	Init(s.params, t)
	s.send(func() {
		if delay <= 0 {
			s.voices.Add(t)
			return
		}
		s.delay.Delay(delay.Seconds(), func() { s.voices.Add(t) })
	})
	return t
}

func (s *Synth) RampTone(v vpiano.Voice, freq float64, over time.Duration) {
	t, ok := s.tone(v)
	if !ok {
		return
	}
	s.send(func() { t.Glide(freq, over.Seconds()) })
}

func (s *Synth) StopTone(v vpiano.Voice, after time.Duration) {
	t, ok := s.tone(v)
	if !ok {
		return
	}
	s.send(func() {
		if after <= 0 {
			t.Release()
			return
		}
		s.delay.Delay(after.Seconds(), t.Release)
	})
}

// send queues f for the next Render.  It never waits for Render.
func (s *Synth) send(f func()) {
	s.mu.Lock()
	s.pending = append(s.pending, f)
	s.mu.Unlock()
}

// queued returns the number of commands waiting for the next Render.
func (s *Synth) queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Synth) tone(v vpiano.Voice) (*Tone, bool) {
	t, ok := v.(*Tone)
	if !ok || t == nil {
		s.log.Warn("Ignoring foreign voice", "voice", fmt.Sprintf("%T", v))
		return nil, false
	}
	return t, true
}

// Render fills out with the next samples.  It is the stream callback.
func (s *Synth) Render(out []float32) {
	s.mu.Lock()
	s.pending, s.batch = s.batch[:0], s.pending
	s.mu.Unlock()
	for i, f := range s.batch {
		f()
		s.batch[i] = nil
	}
	for i := range out {
		s.delay.Step()
		out[i] = float32(math.Tanh(s.voices.Sing()))
	}
}

// Sounding returns how many voices are mixed, including voices in their release.
// It must only be called from the Render goroutine.
func (s *Synth) Sounding() int { return s.voices.Len() }
