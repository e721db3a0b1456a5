package audio

import "math"

// A Gate is an exponential attack/release envelope.  It is only long
// enough to keep starts and stops from clicking.
type Gate struct {
	params                  Params
	attackTime, releaseTime float64
	up, down                float64
	release                 bool
	x                       float64
}

const (
	DefaultAttack  = .004
	DefaultRelease = .012
)

func NewGate(attackTime, releaseTime float64) *Gate {
	return &Gate{attackTime: attackTime, releaseTime: releaseTime}
}

func (g *Gate) InitAudio(p Params) {
	g.params = p
	g.up = decay(p, g.attackTime)
	g.down = decay(p, g.releaseTime)
}

// decay is the per-sample factor that takes a signal to 1% in t seconds.
func decay(p Params, t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(.01, 1/(p.SampleRate*t))
}

func (g *Gate) Release() { g.release = true }

func (g *Gate) Sing() float64 {
	if g.release {
		g.x *= g.down
	} else {
		g.x = 1 - (1-g.x)*g.up
	}
	return g.x
}

func (g *Gate) Done() bool {
	return g.release && g.x < .0001
}
