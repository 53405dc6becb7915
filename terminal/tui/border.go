package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// ParseLineType resolves a configured border name
func ParseLineType(name string) (LineType, error) {
	switch name {
	case "single":
		return LineSingle, nil
	case "double":
		return LineDouble, nil
	case "rounded":
		return LineRounded, nil
	case "heavy":
		return LineHeavy, nil
	case "none":
		return LineNone, nil
	}
	return LineSingle, fmt.Errorf("unknown border style %q", name)
}

// --- Box Rendering ---

// Box draws border around region edge
func (r Region) Box(line LineType, fg tcell.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := tcell.ColorDefault // Transparent (use existing bg)

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// --- Pane rendering ---

// PaneOpts configures pane rendering
type PaneOpts struct {
	Title    string
	Footer   []Span // Drawn on the bottom edge
	Border   LineType
	BorderFg tcell.Color
	TitleFg  tcell.Color
	Bg       tcell.Color
}

// Pane fills region, draws border with title on the top edge and footer spans on
// the bottom edge, returns the content region inside the border
func (r Region) Pane(opts PaneOpts) Region {
	if r.W < 3 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Fill(opts.Bg)
	r.Box(opts.Border, opts.BorderFg)

	if opts.Title != "" && r.W > 4 {
		title := Truncate(" "+opts.Title+" ", r.W-2)
		r.Text(1, 0, title, opts.TitleFg, opts.Bg, terminal.AttrBold)
	}

	if len(opts.Footer) > 0 {
		// Clip at the right corner
		edge := r.Sub(1, r.H-1, r.W-2, 1)
		edge.Spans(0, 0, opts.Footer)
	}

	return r.Inset(1)
}
