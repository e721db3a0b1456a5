package vpiano

import (
	"errors"
	"math"
	"testing"
)

func TestSetVolume(t *testing.T) {
	for volume, gain := range map[float64]float64{
		-50:   -1,
		0:     -1,
		25:    -.75,
		50:    -.5,
		33.33: -.67,
		100:   0,
		250:   0,
	} {
		s := DefaultSettings()
		s.SetVolume(volume)
		if s.Gain != gain {
			t.Errorf("volume %v: expected gain %v, got %v", volume, gain, s.Gain)
		}
		if s.Gain < MinGain || s.Gain > MaxGain {
			t.Errorf("volume %v: gain %v out of range", volume, s.Gain)
		}
	}

	s := DefaultSettings()
	s.SetVolume(math.NaN())
	if s.Gain != -.5 {
		t.Errorf("NaN volume changed gain to %v", s.Gain)
	}
	s.SetVolume(80)
	if v := s.Volume(); v != 80 {
		t.Errorf("expected volume 80, got %v", v)
	}
	if a := s.Amplitude(); math.Abs(a-.8) > 1e-12 {
		t.Errorf("expected amplitude .8, got %v", a)
	}
}

func TestSetScaleOffset(t *testing.T) {
	for in, want := range map[int]int{-1: 0, 0: 0, 2: 2, 4: 4, 7: 4} {
		var s Settings
		s.SetScaleOffset(in)
		if s.ScaleOffset != want {
			t.Errorf("%d: expected %d, got %d", in, want, s.ScaleOffset)
		}
	}
}

func TestSetWaveform(t *testing.T) {
	s := DefaultSettings()
	for _, w := range Waveforms() {
		if err := s.SetWaveform(w.String()); err != nil {
			t.Fatal(err)
		}
		if s.Waveform != w {
			t.Errorf("expected %v, got %v", w, s.Waveform)
		}
	}
	if err := s.SetWaveform(" Sawtooth "); err != nil || s.Waveform != Sawtooth {
		t.Errorf("expected sawtooth, got %v (%v)", s.Waveform, err)
	}
	if err := s.SetWaveform("noise"); !errors.Is(err, ErrBadWaveform) {
		t.Errorf("expected ErrBadWaveform, got %v", err)
	}
	if s.Waveform != Sawtooth {
		t.Errorf("bad name changed waveform to %v", s.Waveform)
	}
	if got := Waveform(42).String(); got != "Waveform(42)" {
		t.Errorf("unexpected name %q", got)
	}
}
