package renderer

import (
	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/render"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

const (
	createSetTitle = "Create Set"
	setNameLabel   = "Set Name"
	setNameHint    = "Enter to save, Esc to cancel"

	fieldMaxWidth = 40
	fieldHeight   = 3
)

// CreateSetRenderer draws the set name entry page
type CreateSetRenderer struct{}

// NewCreateSetRenderer creates a create-set renderer
func NewCreateSetRenderer() *CreateSetRenderer {
	return &CreateSetRenderer{}
}

// Render implements render.PageRenderer
func (r *CreateSetRenderer) Render(ctx render.Context, view app.View, root tui.Region) {
	theme := ctx.Theme

	content := root.Pane(tui.PaneOpts{
		Title:    createSetTitle,
		Border:   ctx.Border,
		BorderFg: theme.Border,
		TitleFg:  theme.Title,
		Bg:       theme.Bg,
	})

	w := content.W - 2
	if w > fieldMaxWidth {
		w = fieldMaxWidth
	}
	field := tui.Center(content, w, fieldHeight)
	field.TextField(view.SetNameInput(), tui.TextFieldOpts{
		Label:       setNameLabel,
		Placeholder: setNameHint,
		Border:      ctx.Border,
		Style: tui.TextFieldStyle{
			TextFg:        theme.InputFg,
			TextBg:        theme.InputBg,
			PlaceholderFg: theme.HintFg,
			BorderFg:      theme.Border,
			LabelFg:       theme.Title,
		},
	})
}
