package renderer

import (
	"fmt"

	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/render"
	"github.com/lixenwraith/flashcards/terminal"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

const setListTitle = "Sets"

// SetListRenderer draws the set list page: one row per set in insertion order and
// the command hints on the bottom border
type SetListRenderer struct{}

// NewSetListRenderer creates a set list renderer
func NewSetListRenderer() *SetListRenderer {
	return &SetListRenderer{}
}

// Render implements render.PageRenderer
func (r *SetListRenderer) Render(ctx render.Context, view app.View, root tui.Region) {
	theme := ctx.Theme

	content := root.Pane(tui.PaneOpts{
		Title:    setListTitle,
		Footer:   setListFooter(theme),
		Border:   ctx.Border,
		BorderFg: theme.Border,
		TitleFg:  theme.Title,
		Bg:       theme.Bg,
	})

	sets := view.Sets()
	items := make([]tui.ListItem, len(sets))
	for i, set := range sets {
		items[i] = tui.ListItem{
			Text:      set.Name,
			TextStyle: tui.Style{Fg: theme.RowFg, Bg: theme.RowBg},
			Detail:    cardCount(set.Len()),
			DetailFg:  theme.HintFg,
		}
	}
	content.List(items, tui.ListOpts{DefaultBg: theme.Bg})
}

// setListFooter renders as " New set [N] Quit [Q] "
func setListFooter(theme tui.Theme) []tui.Span {
	plain := tui.Style{Fg: theme.Fg, Bg: theme.Bg}
	return []tui.Span{
		{Text: " New set ", Style: plain},
		{Text: "[N] ", Style: tui.Style{Fg: theme.KeyPrimary, Bg: theme.Bg, Attr: terminal.AttrBold}},
		{Text: "Quit ", Style: plain},
		{Text: "[Q] ", Style: tui.Style{Fg: theme.KeyDanger, Bg: theme.Bg, Attr: terminal.AttrBold}},
	}
}

func cardCount(n int) string {
	if n == 1 {
		return "1 card"
	}
	return fmt.Sprintf("%d cards", n)
}
