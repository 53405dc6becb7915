package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// ListItem represents a single row in a list
type ListItem struct {
	Text      string
	TextStyle Style
	Detail    string // Right-aligned, dropped when the row is too narrow
	DetailFg  tcell.Color
}

// ListOpts configures list rendering
type ListOpts struct {
	DefaultBg tcell.Color // Row background behind the item text
}

// List renders items top to bottom from row 0, returns number of rows rendered
// Items that do not fit are clipped
func (r Region) List(items []ListItem, opts ListOpts) int {
	if r.H < 1 || len(items) == 0 {
		return 0
	}

	rendered := 0
	for y := 0; y < r.H && y < len(items); y++ {
		item := items[y]

		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', tcell.ColorDefault, opts.DefaultBg, terminal.AttrNone)
		}

		avail := r.W

		detailW := 0
		if item.Detail != "" {
			detailW = StringWidth(item.Detail) + 1
			if detailW+StringWidth(item.Text) > avail {
				detailW = 0
			}
		}

		r.TextStyled(0, y, Truncate(item.Text, avail-detailW), item.TextStyle)

		if detailW > 0 {
			r.TextRight(y, item.Detail, item.DetailFg, tcell.ColorDefault, terminal.AttrNone)
		}
		rendered++
	}

	return rendered
}
