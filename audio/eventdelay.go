package audio

import (
	"slices"
	"sort"
)

// EventDelay runs functions a given time in the future, measured in
// samples.  Events due on the same sample run in the order they were added.
type EventDelay struct {
	Params Params
	now    int64
	events []delayEvent
}

type delayEvent struct {
	at int64
	f  func()
}

func (d *EventDelay) InitAudio(p Params) { d.Params = p }

// Delay schedules f to run on the Step t seconds from now.  A t of zero
// runs f on the next Step.
func (d *EventDelay) Delay(t float64, f func()) {
	if d.Params.SampleRate == 0 {
		panic("EventDelay.Delay called before InitAudio")
	}
	if t < 0 {
		t = 0
	}
	at := d.now + int64(t*d.Params.SampleRate)
	i := sort.Search(len(d.events), func(i int) bool { return d.events[i].at > at })
	d.events = slices.Insert(d.events, i, delayEvent{at, f})
}

// Step advances one sample and runs the events that are due.
func (d *EventDelay) Step() {
	d.now++
	for len(d.events) > 0 && d.events[0].at <= d.now {
		f := d.events[0].f
		d.events = d.events[1:]
		f()
	}
}

func (d *EventDelay) pending() int { return len(d.events) }
