package audio

import "fmt"

// Control is a piecewise-linear signal through a list of points.  Each
// point is reached Time seconds after the start of the control.  Once the
// last point is reached the value holds.
type Control struct {
	params  Params
	points  []*ControlPoint
	periods []*controlPeriod
	x       float64
}

type ControlPoint struct {
	Time, Value float64
}

func NewControl(points ...*ControlPoint) *Control {
	return &Control{points: points}
}

func (c *Control) InitAudio(params Params) {
	c.params = params
	c.SetPoints(c.points...)
}

// SetPoints restarts c along points.  Points must be in time order.
func (c *Control) SetPoints(points ...*ControlPoint) error {
	for i := range points {
		if i > 0 && points[i].Time < points[i-1].Time {
			return fmt.Errorf("control points out of order at %d: %v after %v", i, points[i].Time, points[i-1].Time)
		}
	}
	c.points = points
	c.periods = make([]*controlPeriod, len(points))
	prev := &ControlPoint{}
	for i, p := range points {
		n := int((p.Time - prev.Time) * c.params.SampleRate)
		dx := 0.0
		if n > 0 {
			dx = (p.Value - prev.Value) / float64(n)
		}
		c.periods[i] = &controlPeriod{n, dx, p.Value}
		prev = p
	}
	c.x = 0
	c.skipEmpty()
	return nil
}

// RampTo glides from the current value to x over t seconds.
func (c *Control) RampTo(x, t float64) {
	if t < 0 {
		t = 0
	}
	c.SetPoints(&ControlPoint{0, c.x}, &ControlPoint{t, x})
}

// Value is the most recent output.
func (c *Control) Value() float64 { return c.x }

func (c *Control) Sing() float64 {
	if len(c.periods) > 0 {
		p := c.periods[0]
		p.n--
		c.x += p.dx
		if p.n == 0 {
			c.x = p.value
			c.periods = c.periods[1:]
			c.skipEmpty()
		}
	}
	return c.x
}

// skipEmpty jumps over zero-length periods, which mark discontinuities.
func (c *Control) skipEmpty() {
	for len(c.periods) > 0 && c.periods[0].n <= 0 {
		c.x = c.periods[0].value
		c.periods = c.periods[1:]
	}
}

func (c *Control) Done() bool {
	return len(c.periods) == 0
}

type controlPeriod struct {
	n     int
	dx    float64
	value float64
}
