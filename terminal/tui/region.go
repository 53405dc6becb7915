package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Buf  *terminal.Buffer
	X, Y int // Absolute position in cell buffer
	W, H int // Region dimensions
}

// NewRegion creates a region referencing a buffer with bounds
func NewRegion(buf *terminal.Buffer, x, y, w, h int) Region {
	return Region{
		Buf: buf,
		X:   x,
		Y:   y,
		W:   w,
		H:   h,
	}
}

// Root returns a region covering the whole buffer
func Root(buf *terminal.Buffer) Region {
	w, h := buf.Size()
	return NewRegion(buf, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Buf: r.Buf,
		X:   r.X + x,
		Y:   r.Y + y,
		W:   w,
		H:   h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
// A zero bg keeps the background already in the buffer
func (r Region) Cell(x, y int, ch rune, fg, bg tcell.Color, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y
	if bg == tcell.ColorDefault {
		bg = r.Buf.Get(absX, absY).Bg
	}
	r.Buf.Set(absX, absY, terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr})
}

// Fill fills entire region with background color
func (r Region) Fill(bg tcell.Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Buf.Set(r.X+x, r.Y+y, terminal.Cell{Rune: ' ', Bg: bg})
		}
	}
}
