package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// TextFieldOpts configures text field rendering
type TextFieldOpts struct {
	Label       string   // Drawn on the top border
	Placeholder string   // Shown when empty
	Border      LineType // Border style, LineNone = no border
	Style       TextFieldStyle
}

// TextFieldStyle defines text field colors
type TextFieldStyle struct {
	TextFg        tcell.Color
	TextBg        tcell.Color
	PlaceholderFg tcell.Color
	BorderFg      tcell.Color
	LabelFg       tcell.Color
}

// DefaultTextFieldStyle returns default colors
func DefaultTextFieldStyle() TextFieldStyle {
	return TextFieldStyle{
		TextFg:        tcell.ColorWhite,
		PlaceholderFg: tcell.ColorGray,
		BorderFg:      tcell.ColorWhite,
		LabelFg:       tcell.ColorWhite,
	}
}

// TextField renders a single-line field showing value verbatim and returns height used
// Text wider than the field keeps its tail visible so the last typed rune is on screen
func (r Region) TextField(value string, opts TextFieldOpts) int {
	if r.W < 3 || r.H < 1 {
		return 0
	}

	style := opts.Style
	if style == (TextFieldStyle{}) {
		style = DefaultTextFieldStyle()
	}

	content := r.Sub(0, 0, r.W, 1)
	height := 1
	if opts.Border != LineNone {
		if r.H < 3 {
			return 0
		}
		field := r.Sub(0, 0, r.W, 3)
		field.Box(opts.Border, style.BorderFg)
		if opts.Label != "" {
			label := Truncate(" "+opts.Label+" ", field.W-2)
			field.Text(1, 0, label, style.LabelFg, tcell.ColorDefault, terminal.AttrNone)
		}
		content = field.Inset(1)
		height = 3
	}

	for x := 0; x < content.W; x++ {
		content.Cell(x, 0, ' ', style.TextFg, style.TextBg, terminal.AttrNone)
	}

	if value == "" {
		if opts.Placeholder != "" {
			content.Text(0, 0, Truncate(opts.Placeholder, content.W), style.PlaceholderFg, style.TextBg, terminal.AttrDim)
		}
		return height
	}

	content.Text(0, 0, TruncateLeft(value, content.W), style.TextFg, style.TextBg, terminal.AttrNone)
	return height
}
