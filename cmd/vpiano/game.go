package main

import (
	"image/color"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gordonklaus/vpiano"
)

var (
	background = color.RGBA{0x1c, 0x1c, 0x20, 0xff}
	whiteKey   = color.RGBA{0xee, 0xee, 0xe8, 0xff}
	sharpKey   = color.RGBA{0x30, 0x30, 0x38, 0xff}
	heldKey    = color.RGBA{0xf0, 0xa0, 0x40, 0xff}
)

// physicalKeys names the keys the controller understands.
var physicalKeys = map[ebiten.Key]string{
	ebiten.KeyQ: "q",
	ebiten.Key2: "2",
	ebiten.KeyW: "w",
	ebiten.Key3: "3",
	ebiten.KeyE: "e",
	ebiten.KeyR: "r",
	ebiten.Key5: "5",
	ebiten.KeyT: "t",
	ebiten.Key6: "6",
	ebiten.KeyY: "y",
	ebiten.Key7: "7",
	ebiten.KeyU: "u",
	ebiten.KeyI: "i",
}

func keyName(k ebiten.Key) string {
	if s, ok := physicalKeys[k]; ok {
		return s
	}
	return strings.ToLower(k.String())
}

var waveformKeys = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5}

// game is the UI surface: it turns Ebitengine input into controller events.
type game struct {
	ctrl  *vpiano.Controller
	board *board
	count int

	keys         []ebiten.Key
	lastX, lastY int
}

func newGame(ctrl *vpiano.Controller, keyCount int) *game {
	return &game{ctrl: ctrl, board: newBoard(keyCount), count: keyCount}
}

func (g *game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if !g.setting(k) {
			g.ctrl.Handle(vpiano.KeyDown{Key: keyName(k)})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.ctrl.Handle(vpiano.KeyUp{Key: keyName(k)})
	}

	x, y := ebiten.CursorPosition()
	label := g.board.hit(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Handle(vpiano.PointerDown{Label: label})
	}
	if x != g.lastX || y != g.lastY {
		g.ctrl.Handle(vpiano.PointerMove{Label: label, Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)})
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.Handle(vpiano.PointerUp{})
	}
	return nil
}

// setting applies k if it is a settings key.
func (g *game) setting(k ebiten.Key) bool {
	set := g.ctrl.Settings()
	switch k {
	case ebiten.KeyArrowUp:
		g.ctrl.SetVolume(set.Volume() + 5)
	case ebiten.KeyArrowDown:
		g.ctrl.SetVolume(set.Volume() - 5)
	case ebiten.KeyArrowRight:
		g.ctrl.SetScaleOffset(set.ScaleOffset + 1)
	case ebiten.KeyArrowLeft:
		g.ctrl.SetScaleOffset(set.ScaleOffset - 1)
	case ebiten.KeyPageUp:
		g.resize(+1)
	case ebiten.KeyPageDown:
		g.resize(-1)
	default:
		i := slices.Index(waveformKeys, k)
		if i < 0 {
			return false
		}
		g.ctrl.SetWaveform(vpiano.Waveforms()[i].String())
	}
	return true
}

// resize steps through vpiano.KeyCounts.  The held key is released first
// because it may not exist on the new board.
func (g *game) resize(step int) {
	i := slices.Index(vpiano.KeyCounts, g.count)
	if i < 0 {
		i = slices.Index(vpiano.KeyCounts, vpiano.DefaultKeyCount)
	}
	i = min(max(i+step, 0), len(vpiano.KeyCounts)-1)
	if vpiano.KeyCounts[i] == g.count {
		return
	}
	g.ctrl.Close()
	g.count = vpiano.KeyCounts[i]
	g.board = newBoard(g.count)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	held := g.ctrl.State().Held
	// Sharps are drawn last so their captions stay on top.
	for _, sharp := range []bool{false, true} {
		for i, k := range g.board.keys {
			if k.Sharp != sharp {
				continue
			}
			r := g.board.rects[i]
			c := whiteKey
			if k.Sharp {
				c = sharpKey
			}
			if k.Label == held {
				c = heldKey
			}
			vector.DrawFilledRect(screen, r.x, r.y, r.w, r.h, c, false)
			ebitenutil.DebugPrintAt(screen, string(k.Label), int(r.x)+2, int(r.y+r.h)-32)
			if k.Shortcut != "" {
				ebitenutil.DebugPrintAt(screen, k.Shortcut, int(r.x)+2, int(r.y+r.h)-16)
			}
		}
	}
	freq, _ := g.ctrl.HeldFrequency()
	ebitenutil.DebugPrintAt(screen, status(g.ctrl.State(), freq, g.ctrl.Settings()), boardMargin, 4)
	ebitenutil.DebugPrintAt(screen, help, boardMargin, 20)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
