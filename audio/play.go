package audio

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const DefaultFramesPerBuffer = 512

// A Player streams a Synth to the default output device.
type Player struct {
	stream  *portaudio.Stream
	started bool
}

// NewPlayer initialises PortAudio and opens a mono output stream for s.
// The stream does not run until Start is called.
func NewPlayer(s *Synth, framesPerBuffer int) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, s.Params().SampleRate, framesPerBuffer, s.Render)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("opening output stream: %w", err), portaudio.Terminate())
	}
	return &Player{stream: stream}, nil
}

func (p *Player) Start() error {
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("starting output stream: %w", err)
	}
	p.started = true
	return nil
}

// Close stops the stream and releases PortAudio.
func (p *Player) Close() error {
	var err error
	if p.started {
		err = p.stream.Stop()
		p.started = false
	}
	return errors.Join(err, p.stream.Close(), portaudio.Terminate())
}
