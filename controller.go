package vpiano

import (
	"log/slog"
	"math"
	"time"
)

// A Voice is a backend handle to one sounding oscillator.
type Voice interface {
	Done() bool
}

// Backend produces sound.  Calls are requests, not completions: they
// return immediately and the backend schedules the effect itself.
type Backend interface {
	StartTone(freq float64, w Waveform, gain float64, delay time.Duration) Voice
	RampTone(v Voice, freq float64, over time.Duration)
	StopTone(v Voice, after time.Duration)
}

// Controller is a key-press session.  It owns the settings, the state
// and the single active voice.  It is not safe for concurrent use; all
// calls are expected to come from the UI event loop.
type Controller struct {
	backend  Backend
	log      *slog.Logger
	settings Settings
	timing   Timing
	state    State
	voice    Voice
	freq     float64
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSettings sets the initial settings, clamped to their ranges.  A NaN
// gain or an unknown waveform is replaced by its default.
func WithSettings(s Settings) Option {
	return func(c *Controller) {
		def := DefaultSettings()
		if math.IsNaN(s.Gain) {
			s.Gain = def.Gain
		}
		if s.Waveform < Sine || s.Waveform > Custom {
			s.Waveform = def.Waveform
		}
		c.settings = Settings{Gain: clamp(s.Gain, MinGain, MaxGain), Waveform: s.Waveform}
		c.settings.SetScaleOffset(s.ScaleOffset)
	}
}

func WithTiming(t Timing) Option {
	return func(c *Controller) { c.timing = t }
}

func NewController(b Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:  b,
		log:      slog.Default(),
		settings: DefaultSettings(),
		timing:   DefaultTiming(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Handle applies e and issues the resulting backend requests.
// Malformed key labels are logged and otherwise ignored.
func (c *Controller) Handle(e Event) {
	next, cmds, err := Transition(c.state, e, c.settings, c.timing)
	if err != nil {
		c.log.Warn("Ignoring event", "event", e, "error", err)
		return
	}
	if next != c.state {
		c.log.Debug("Key state changed", "from", c.state, "to", next)
	}
	c.state = next
	for _, cmd := range cmds {
		c.exec(cmd)
	}
}

func (c *Controller) exec(cmd Command) {
	switch cmd := cmd.(type) {
	case Start:
		if c.voice != nil {
			// A Start always follows a Stop in Transition; this only guards
			// against a voice being left behind.
			c.backend.StopTone(c.voice, 0)
		}
		c.voice = c.backend.StartTone(cmd.Frequency, cmd.Waveform, cmd.Gain, cmd.Delay)
		c.freq = cmd.Frequency
		c.log.Debug("Start tone", "freq", cmd.Frequency, "waveform", cmd.Waveform, "gain", cmd.Gain)
	case Ramp:
		if c.voice == nil {
			c.log.Warn("Ramp without a voice", "freq", cmd.Frequency)
			return
		}
		c.backend.RampTone(c.voice, cmd.Frequency, cmd.Over)
		c.freq = cmd.Frequency
		c.log.Debug("Ramp tone", "freq", cmd.Frequency, "over", cmd.Over)
	case Stop:
		if c.voice == nil {
			return
		}
		c.backend.StopTone(c.voice, cmd.After)
		c.voice, c.freq = nil, 0
		c.log.Debug("Stop tone", "after", cmd.After)
	}
}

// Close stops the active voice, if any, immediately.
func (c *Controller) Close() {
	c.state = State{}
	c.exec(Stop{})
}

func (c *Controller) State() State       { return c.state }
func (c *Controller) Voice() Voice       { return c.voice }
func (c *Controller) Settings() Settings { return c.settings }
func (c *Controller) Timing() Timing     { return c.timing }

// HeldFrequency returns the frequency last sent to the active voice.
// Settings changed during a hold do not affect it.
func (c *Controller) HeldFrequency() (float64, bool) {
	if c.voice == nil {
		return 0, false
	}
	return c.freq, true
}

func (c *Controller) SetVolume(percent float64) {
	c.settings.SetVolume(percent)
	c.log.Debug("Volume changed", "volume", percent, "gain", c.settings.Gain)
}

func (c *Controller) SetScaleOffset(n int) {
	c.settings.SetScaleOffset(n)
	c.log.Debug("Scale offset changed", "requested", n, "scaleOffset", c.settings.ScaleOffset)
}

func (c *Controller) SetWaveform(name string) error {
	if err := c.settings.SetWaveform(name); err != nil {
		c.log.Warn("Ignoring waveform", "name", name, "error", err)
		return err
	}
	c.log.Debug("Waveform changed", "waveform", c.settings.Waveform)
	return nil
}
