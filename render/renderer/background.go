package renderer

import (
	"github.com/lixenwraith/flashcards/render"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

// BackgroundRenderer paints the whole screen with the theme background
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements render.LayerRenderer
func (r *BackgroundRenderer) Render(ctx render.Context, root tui.Region) {
	root.Fill(ctx.Theme.Bg)
}
