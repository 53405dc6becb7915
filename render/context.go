package render

import (
	"github.com/lixenwraith/flashcards/terminal/tui"
)

// Context provides frame-wide settings for renderers, passed by value
type Context struct {
	Theme  tui.Theme
	Border tui.LineType
}

// NewContext creates a context with the given theme and border style
func NewContext(theme tui.Theme, border tui.LineType) Context {
	return Context{
		Theme:  theme,
		Border: border,
	}
}
