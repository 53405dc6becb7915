package render

import (
	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

// LayerRenderer draws page-independent content such as the background
type LayerRenderer interface {
	Render(ctx Context, root tui.Region)
}

// PageRenderer draws the content of one page from a read-only view
// Implementations must not retain the view or mutate it
type PageRenderer interface {
	Render(ctx Context, view app.View, root tui.Region)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
