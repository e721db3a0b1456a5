package vpiano

import (
	"fmt"
	"time"
)

// Source records what started the current hold.
type Source int

const (
	Pointer Source = iota
	Keyboard
)

func (s Source) String() string {
	if s == Keyboard {
		return "keyboard"
	}
	return "pointer"
}

// State is the key-press state of a session.  Held is empty when no key
// is held.  PointerDown tracks the pointer button independently of Held:
// releasing the pointer ends a hold even if the keyboard took it over.
type State struct {
	Held        Label
	Source      Source
	PointerDown bool
}

func (s State) Holding() bool { return s.Held != "" }

func (s State) String() string {
	if !s.Holding() {
		return "idle"
	}
	return fmt.Sprintf("holding %s (%s)", s.Held, s.Source)
}

// An Event is an input delivered by the UI surface.
type Event interface{ isEvent() }

// PointerDown is a pointer press.  Label is empty if the pointer is not over a key.
type PointerDown struct{ Label Label }

type PointerUp struct{}

// PointerMove is a pointer movement; Pressed reports whether the primary
// button is down.
type PointerMove struct {
	Label   Label
	Pressed bool
}

// KeyDown and KeyUp carry a physical key identifier such as "q" or "2".
type KeyDown struct{ Key string }
type KeyUp struct{ Key string }

func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
func (KeyDown) isEvent()     {}
func (KeyUp) isEvent()       {}

// A Command is a request to the audio backend.
type Command interface{ isCommand() }

// Start begins a new voice.
type Start struct {
	Frequency float64
	Waveform  Waveform
	Gain      float64
	Delay     time.Duration
}

// Ramp glides the current voice linearly to Frequency.
type Ramp struct {
	Frequency float64
	Over      time.Duration
}

// Stop ends the current voice After the given time.
type Stop struct {
	After time.Duration
}

func (Start) isCommand() {}
func (Ramp) isCommand()  {}
func (Stop) isCommand()  {}

// Timing holds the fixed durations used by Transition.
type Timing struct {
	// Glissando is the duration of a slide between two keys.
	Glissando time.Duration
	// Tail is how long a voice keeps sounding after a new voice re-attacks over it.
	Tail time.Duration
	// StartDelay schedules new voices ahead of time.
	StartDelay time.Duration
}

func DefaultTiming() Timing {
	return Timing{Glissando: 50 * time.Millisecond, Tail: 400 * time.Millisecond}
}

// Transition computes the next state and the backend commands for e.
// It never modifies its arguments.  A malformed label yields an error, the
// unchanged state and no commands.
func Transition(s State, e Event, set Settings, t Timing) (State, []Command, error) {
	switch e := e.(type) {
	case PointerDown:
		if e.Label == "" {
			return s, nil, nil
		}
		f, err := LabelFrequency(e.Label, set.ScaleOffset)
		if err != nil {
			return s, nil, err
		}
		if e.Label == s.Held {
			s.PointerDown = true
			return s, nil, nil
		}
		var cmds []Command
		if s.Holding() {
			cmds = append(cmds, Stop{After: t.Tail})
		}
		cmds = append(cmds, start(f, set, t))
		return State{Held: e.Label, Source: Pointer, PointerDown: true}, cmds, nil

	case PointerUp:
		if !s.PointerDown {
			return s, nil, nil
		}
		if !s.Holding() {
			return State{}, nil, nil
		}
		return State{}, []Command{Stop{}}, nil

	case PointerMove:
		if !e.Pressed || !s.PointerDown || !s.Holding() || e.Label == "" || e.Label == s.Held {
			return s, nil, nil
		}
		f, err := LabelFrequency(e.Label, set.ScaleOffset)
		if err != nil {
			return s, nil, err
		}
		s.Held, s.Source = e.Label, Pointer
		return s, []Command{Ramp{Frequency: f, Over: t.Glissando}}, nil

	case KeyDown:
		l, ok := ShortcutLabel(e.Key)
		if !ok || l == s.Held {
			return s, nil, nil
		}
		f, err := LabelFrequency(l, set.ScaleOffset)
		if err != nil {
			return s, nil, err
		}
		var cmd Command = Ramp{Frequency: f, Over: t.Glissando}
		if !s.Holding() {
			cmd = start(f, set, t)
		}
		s.Held, s.Source = l, Keyboard
		return s, []Command{cmd}, nil

	case KeyUp:
		l, ok := ShortcutLabel(e.Key)
		if !ok || !s.Holding() || s.Source != Keyboard || l != s.Held {
			return s, nil, nil
		}
		return State{PointerDown: s.PointerDown}, []Command{Stop{}}, nil
	}
	return s, nil, fmt.Errorf("unknown event %T", e)
}

func start(f float64, set Settings, t Timing) Start {
	return Start{Frequency: f, Waveform: set.Waveform, Gain: set.Gain, Delay: t.StartDelay}
}
