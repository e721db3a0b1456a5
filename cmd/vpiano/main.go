// vpiano is a one-voice keyboard with glissando.  Click and drag across
// the keys, or play the middle octave with q 2 w 3 e r 5 t 6 y 7 u i.
package main

import (
	"errors"
	"os"

	"github.com/denizsincar29/goerror"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/gordonklaus/vpiano"
	"github.com/gordonklaus/vpiano/audio"
)

func main() {
	e := goerror.NewError(newLogger(os.Stderr, false))
	app := &cli.App{
		Name:  "vpiano",
		Usage: "play a single gliding oscillator from an on-screen keyboard",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "keys", Value: vpiano.DefaultKeyCount, Usage: "number of keys, starting at C1"},
			&cli.Float64Flag{Name: "volume", Value: 50, Usage: "volume in percent, 0 to 100"},
			&cli.IntFlag{Name: "scale", Value: vpiano.DefaultSettings().ScaleOffset, Usage: "octave shift, 0 to 4"},
			&cli.StringFlag{Name: "waveform", Value: "sine", Usage: "sine, sawtooth, triangle, square or custom"},
			&cli.Float64Flag{Name: "sample-rate", Value: audio.DefaultSampleRate, Usage: "output sample rate in Hz"},
			&cli.IntFlag{Name: "buffer", Value: audio.DefaultFramesPerBuffer, Usage: "frames per audio buffer"},
			&cli.BoolFlag{Name: "debug", Usage: "log every key event"},
		},
		Action: run,
	}
	e.Must(app.Run(os.Args), "vpiano failed")
}

func run(c *cli.Context) (err error) {
	logger := newLogger(os.Stderr, c.Bool("debug"))

	settings := vpiano.DefaultSettings()
	settings.SetVolume(c.Float64("volume"))
	settings.SetScaleOffset(c.Int("scale"))
	if err := settings.SetWaveform(c.String("waveform")); err != nil {
		return err
	}
	if c.Int("keys") < 1 {
		return errors.New("need at least one key")
	}

	synth, err := audio.NewSynth(audio.Params{SampleRate: c.Float64("sample-rate")}, logger)
	if err != nil {
		return err
	}
	player, err := audio.NewPlayer(synth, c.Int("buffer"))
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, player.Close()) }()
	if err := player.Start(); err != nil {
		return err
	}
	logger.Info("Audio started", "sampleRate", synth.Params().SampleRate, "waveform", settings.Waveform)

	ctrl := vpiano.NewController(synth, vpiano.WithLogger(logger), vpiano.WithSettings(settings))
	defer ctrl.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("vpiano")
	return ebiten.RunGame(newGame(ctrl, c.Int("keys")))
}
