package audio

// An Initer is told the stream parameters before it produces any samples.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate float64
}

func (p *Params) InitAudio(q Params) { *p = q }

const DefaultSampleRate = 48000

// Init initialises each of xs with p.  Nil entries are skipped.
func Init(p Params, xs ...Initer) {
	if p.SampleRate <= 0 {
		panic("audio.Init: sample rate must be positive")
	}
	for _, x := range xs {
		if x != nil {
			x.InitAudio(p)
		}
	}
}
