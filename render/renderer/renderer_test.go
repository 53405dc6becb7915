package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/flashcard"
	"github.com/lixenwraith/flashcards/render"
	"github.com/lixenwraith/flashcards/terminal"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

const (
	testWidth  = 40
	testHeight = 10
)

func newTestOrchestrator() *render.Orchestrator {
	o := render.NewOrchestrator(render.NewContext(tui.DefaultTheme, tui.LineDouble), render.Pages{
		SetList:   NewSetListRenderer(),
		CreateSet: NewCreateSetRenderer(),
	})
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	return o
}

func renderState(o *render.Orchestrator, view app.View) *terminal.Buffer {
	buf := terminal.NewBuffer(testWidth, testHeight)
	o.Render(buf, view)
	return buf
}

// createSetState returns state on the create page with typed text
func createSetState(text string) *app.State {
	state := app.NewState(flashcard.NewSet("Test"))
	h := app.NewInputHandler(state, nil, nil)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	for _, ch := range text {
		h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	}
	return state
}

func TestSetListRows(t *testing.T) {
	state := app.NewState(flashcard.NewSet("Test"), flashcard.NewSet("Test2"))
	buf := renderState(newTestOrchestrator(), state)

	wantTop := "╔ Sets " + strings.Repeat("═", testWidth-8) + "╗"
	if got := buf.Row(0); got != wantTop {
		t.Errorf("Top border:\nexpected %q\ngot      %q", wantTop, got)
	}

	tests := []struct {
		row  int
		name string
	}{
		{1, "Test"},
		{2, "Test2"},
	}
	for _, tt := range tests {
		row := buf.Row(tt.row)
		want := "║" + tt.name + strings.Repeat(" ", testWidth-2-len(tt.name)-len("0 cards")) + "0 cards║"
		if row != want {
			t.Errorf("Row %d:\nexpected %q\ngot      %q", tt.row, want, row)
		}
		if bg := buf.Get(1, tt.row).Bg; bg != tcell.ColorDarkGray {
			t.Errorf("Row %d: expected dark gray name background, got %v", tt.row, bg)
		}
	}

	// Nothing below the last set
	if got := buf.Row(3); got != "║"+strings.Repeat(" ", testWidth-2)+"║" {
		t.Errorf("Expected empty row after sets, got %q", got)
	}
}

func TestSetListFooter(t *testing.T) {
	buf := renderState(newTestOrchestrator(), app.NewState())

	footer := " New set [N] Quit [Q] "
	want := "╚" + footer + strings.Repeat("═", testWidth-2-len(footer)) + "╝"
	if got := buf.Row(testHeight - 1); got != want {
		t.Fatalf("Footer:\nexpected %q\ngot      %q", want, got)
	}

	tests := []struct {
		name string
		x    int
		fg   tcell.Color
	}{
		{"new set hotkey", 1 + len(" New set "), tcell.ColorBlue},
		{"quit hotkey", 1 + len(" New set [N] Quit "), tcell.ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for dx := 0; dx < 3; dx++ {
				c := buf.Get(tt.x+dx, testHeight-1)
				if c.Fg != tt.fg {
					t.Errorf("Cell %d: expected fg %v, got %v", dx, tt.fg, c.Fg)
				}
				if c.Attrs&terminal.AttrBold == 0 {
					t.Errorf("Cell %d: expected bold", dx)
				}
			}
		})
	}
}

func TestSetListCardCount(t *testing.T) {
	set := flashcard.NewSet("Vocab")
	set.AddCard("hola", "hello")
	state := app.NewState(set)

	buf := renderState(newTestOrchestrator(), state)
	if row := buf.Row(1); !strings.HasSuffix(row, "1 card║") {
		t.Errorf("Expected singular card count, got %q", row)
	}
}

func TestSetListClipsRows(t *testing.T) {
	sets := make([]flashcard.Set, 20)
	for i := range sets {
		sets[i] = flashcard.NewSet(string(rune('A' + i)))
	}
	buf := renderState(newTestOrchestrator(), app.NewState(sets...))

	// 8 content rows between the borders
	if got := buf.Row(8); !strings.HasPrefix(got, "║H") {
		t.Errorf("Expected last visible row to be H, got %q", got)
	}
	if got := buf.Row(testHeight - 1); !strings.HasPrefix(got, "╚ New set") {
		t.Errorf("Expected footer to survive clipping, got %q", got)
	}
}

func TestCreateSetShowsInput(t *testing.T) {
	buf := renderState(newTestOrchestrator(), createSetState("Hi"))

	if got := buf.Row(0); !strings.HasPrefix(got, "╔ Create Set ═") {
		t.Errorf("Expected page title, got %q", got)
	}

	var labelRow = -1
	for y := 0; y < testHeight; y++ {
		if strings.Contains(buf.Row(y), "╔ Set Name ") {
			labelRow = y
			break
		}
	}
	if labelRow < 0 {
		t.Fatalf("Expected entry box label, got:\n%s", buf.String())
	}
	if got := buf.Row(labelRow + 1); !strings.Contains(got, "║Hi ") {
		t.Errorf("Expected buffer inside entry box, got %q", got)
	}
}

func TestCreateSetShowsTail(t *testing.T) {
	long := strings.Repeat("a", 60) + "END"
	buf := renderState(newTestOrchestrator(), createSetState(long))

	found := false
	for y := 0; y < testHeight; y++ {
		if strings.Contains(buf.Row(y), "aEND║") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected tail of long input to be visible, got:\n%s", buf.String())
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	o := newTestOrchestrator()

	views := []struct {
		name  string
		state *app.State
	}{
		{"set list", app.NewState(flashcard.NewSet("Test"), flashcard.NewSet("Test2"))},
		{"create set", createSetState("draft")},
	}

	for _, v := range views {
		t.Run(v.name, func(t *testing.T) {
			first := renderState(o, v.state)
			second := renderState(o, v.state)
			if !first.Equal(second) {
				t.Errorf("Frames differ:\n%s\n---\n%s", first.String(), second.String())
			}

			// Reusing a dirty buffer yields the same frame
			dirty := terminal.NewBuffer(testWidth, testHeight)
			dirty.Set(3, 3, terminal.Cell{Rune: '#', Bg: tcell.ColorRed})
			o.Render(dirty, v.state)
			if !first.Equal(dirty) {
				t.Error("Expected render into a dirty buffer to match a fresh one")
			}
		})
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	state := createSetState("abc")
	beforeSets := state.Sets()

	renderState(newTestOrchestrator(), state)

	if state.Page() != app.PageCreateSet {
		t.Errorf("Page changed to %v", state.Page())
	}
	if state.SetNameInput() != "abc" {
		t.Errorf("Input changed to %q", state.SetNameInput())
	}
	after := state.Sets()
	if len(after) != len(beforeSets) || after[0].ID != beforeSets[0].ID {
		t.Errorf("Sets changed: %v -> %v", beforeSets, after)
	}
}

func TestCreateSetShowsHintWhenEmpty(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantHint bool
	}{
		{"empty", "", true},
		{"typed", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := renderState(newTestOrchestrator(), createSetState(tt.text))

			hintRow := -1
			for y := 0; y < testHeight; y++ {
				if strings.Contains(buf.Row(y), "║"+setNameHint) {
					hintRow = y
				}
			}
			if got := hintRow >= 0; got != tt.wantHint {
				t.Fatalf("Expected hint shown = %v, got:\n%s", tt.wantHint, buf.String())
			}
			if tt.wantHint {
				x := strings.Index(buf.Row(hintRow), "║") + 1
				if c := buf.Get(x, hintRow); c.Attrs&terminal.AttrDim == 0 || c.Fg != tui.DefaultTheme.HintFg {
					t.Errorf("Expected dim hint colors, got fg %v attrs %v", c.Fg, c.Attrs)
				}
			}
		})
	}
}

func TestSetListWideNameOnScreen(t *testing.T) {
	const w, h = 30, 6

	sim := tcell.NewSimulationScreen("UTF-8")
	scr := terminal.NewWithScreen(sim)
	if err := scr.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer scr.Fini()
	sim.SetSize(w, h)

	o := newTestOrchestrator()
	state := app.NewState(flashcard.NewSet("日本語"))

	var frame *terminal.Buffer
	if err := scr.Draw(func(buf *terminal.Buffer) {
		o.Render(buf, state)
		frame = buf
	}); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := "║日本語" + strings.Repeat(" ", w-2-6-len("0 cards")) + "0 cards║"
	if got := frame.Row(1); got != want {
		t.Errorf("Buffer row:\nexpected %q\ngot      %q", want, got)
	}

	cells, sw, _ := sim.GetContents()
	if sw != w {
		t.Fatalf("Expected screen width %d, got %d", w, sw)
	}
	var row strings.Builder
	for x := 0; x < w; x++ {
		ch := ' '
		if runes := cells[w+x].Runes; len(runes) > 0 {
			ch = runes[0]
		}
		row.WriteRune(ch)
		if terminal.RuneWidth(ch) == 2 {
			x++
		}
	}
	if got := row.String(); got != want {
		t.Errorf("Screen row:\nexpected %q\ngot      %q", want, got)
	}

	for x, ch := range map[int]rune{1: '日', 3: '本', 5: '語'} {
		if runes := cells[w+x].Runes; len(runes) == 0 || runes[0] != ch {
			t.Errorf("Column %d: expected %q, got %q", x, ch, string(runes))
		}
	}
}
