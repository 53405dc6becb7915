package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// Text renders text at position, stopping at the region edge
// Wide runes take two cells and are dropped whole when only one cell is left
// Zero-width runes are skipped
func (r Region) Text(x, y int, s string, fg, bg tcell.Color, attr terminal.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		w := terminal.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, fg, bg, attr)
			if w == 2 {
				// Covered cell keeps the style so the background stays continuous
				r.Cell(col+1, y, ' ', fg, bg, attr)
			}
		}
		col += w
	}
}

// TextStyled renders text using a Style
func (r Region) TextStyled(x, y int, s string, style Style) {
	r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg tcell.Color, attr terminal.Attr) {
	r.Text(r.W-StringWidth(s), y, s, fg, bg, attr)
}

// Spans renders styled segments left to right starting at x, returns the column after the last cell
func (r Region) Spans(x, y int, spans []Span) int {
	for _, s := range spans {
		r.TextStyled(x, y, s.Text, s.Style)
		x += StringWidth(s.Text)
	}
	return x
}
