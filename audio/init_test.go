package audio

import "testing"

func TestInit(t *testing.T) {
	var a, b audioIniter
	Init(Params{SampleRate: 44100}, &a, nil, &b)
	if a.rate != 44100 || b.rate != 44100 {
		t.Errorf("expected both initialised, got %v and %v", a.rate, b.rate)
	}

	didPanic := false
	func() {
		defer func() {
			if x := recover(); x != nil {
				didPanic = true
			}
		}()
		var c audioIniter
		Init(Params{}, &c)
	}()
	if !didPanic {
		t.Error("expected panic")
	}
}

type audioIniter struct {
	rate float64
}

func (i *audioIniter) InitAudio(p Params) { i.rate = p.SampleRate }
