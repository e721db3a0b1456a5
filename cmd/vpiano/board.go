package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gordonklaus/vpiano"
)

const (
	screenWidth  = 960
	screenHeight = 240

	boardTop    = 40
	boardMargin = 8
	sharpHeight = .6
)

type rect struct {
	x, y, w, h float32
}

func (r rect) contains(x, y float32) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// board is the on-screen row of keys.  All keys have the same width;
// sharps are shorter, so the strip below them belongs to no key.
type board struct {
	keys  []vpiano.Key
	rects []rect
}

func newBoard(n int) *board {
	b := &board{keys: vpiano.NewLayout(n)}
	if len(b.keys) == 0 {
		return b
	}
	w := float32(screenWidth-2*boardMargin) / float32(len(b.keys))
	h := float32(screenHeight - boardTop - boardMargin)
	for i, k := range b.keys {
		r := rect{boardMargin + float32(i)*w, boardTop, w - 1, h}
		if k.Sharp {
			r.h *= sharpHeight
		}
		b.rects = append(b.rects, r)
	}
	return b
}

// hit returns the label of the key under (x, y), or "" if there is none.
func (b *board) hit(x, y int) vpiano.Label {
	for i, r := range b.rects {
		if r.contains(float32(x), float32(y)) {
			return b.keys[i].Label
		}
	}
	return ""
}

func status(s vpiano.State, freq float64, set vpiano.Settings) string {
	held := "-"
	if s.Holding() {
		held = fmt.Sprintf("%s %s", s.Held, humanize.SIWithDigits(freq, 2, "Hz"))
	}
	return strings.Join([]string{
		held,
		fmt.Sprintf("volume %.0f%%", set.Volume()),
		fmt.Sprintf("scale +%d", set.ScaleOffset),
		set.Waveform.String(),
	}, "  |  ")
}

const help = "up/down volume  left/right scale  F1-F5 waveform  pgup/pgdn keys"
