package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
// A zero Bg keeps the background already drawn
type Style struct {
	Fg   tcell.Color
	Bg   tcell.Color
	Attr terminal.Attr
}

// Span is a run of text drawn in one style
type Span struct {
	Text  string
	Style Style
}
