package audio

import "testing"

func TestEventDelay(t *testing.T) {
	var d EventDelay
	Init(Params{SampleRate: 1}, &d)

	var e, e2 delayedEvent
	d.Delay(4, e.f)
	e.test(t, &d, 4)

	e, e2 = false, false
	d.Delay(4, e.f)
	d.Delay(8, e2.f)
	e.test(t, &d, 4)
	e2.test(t, &d, 4)

	e, e2 = false, false
	d.Delay(8, e2.f)
	d.Delay(4, e.f)
	e.test(t, &d, 4)
	e2.test(t, &d, 4)

	e, e2 = false, false
	d.Delay(0, e.f)
	e.test(t, &d, 1)
	if d.pending() != 0 {
		t.Fatalf("expected no pending events, got %d", d.pending())
	}
}

func TestEventDelayOrder(t *testing.T) {
	var d EventDelay
	Init(Params{SampleRate: 10}, &d)
	var order []int
	d.Delay(.4, func() { order = append(order, 1) })
	d.Delay(.4, func() { order = append(order, 2) })
	d.Delay(.1, func() { order = append(order, 0) })
	for i := 0; i < 4; i++ {
		d.Step()
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("unexpected order %v", order)
	}
}

func TestEventDelayBeforeInit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var d EventDelay
	d.Delay(1, func() {})
}

type delayedEvent bool

func (e *delayedEvent) f() { *e = true }

func (e *delayedEvent) test(t *testing.T, d *EventDelay, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if *e {
			t.Fatalf("true before %d", i)
		}
		d.Step()
	}
	if !*e {
		t.Fatalf("false after %d", n)
	}
}
