package app

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flashcards/flashcard"
)

func runeKey(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(h *InputHandler, s string) {
	for _, ch := range s {
		h.HandleEvent(runeKey(ch))
	}
}

// recordingSound counts cues
type recordingSound struct {
	commits  int
	discards int
}

func (r *recordingSound) PlayCommit()  { r.commits++ }
func (r *recordingSound) PlayDiscard() { r.discards++ }

func setNames(v View) []string {
	sets := v.Sets()
	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = s.Name
	}
	return names
}

func TestCreateSetScenario(t *testing.T) {
	state := NewState()
	h := NewInputHandler(state, nil, nil)

	h.HandleEvent(runeKey('n'))
	require.Equal(t, PageCreateSet, state.Page())
	assert.Equal(t, "", state.SetNameInput())

	typeText(h, "ABC")
	assert.Equal(t, "ABC", state.SetNameInput())

	h.HandleEvent(key(tcell.KeyEnter))

	assert.Equal(t, PageSetList, state.Page())
	sets := state.Sets()
	require.Len(t, sets, 1)
	assert.Equal(t, "ABC", sets[0].Name)
	assert.Empty(t, sets[0].Cards)
}

func TestBackspaceThenEscapeDiscards(t *testing.T) {
	state := NewState()
	sound := &recordingSound{}
	h := NewInputHandler(state, sound, nil)

	h.HandleEvent(runeKey('n'))
	typeText(h, "Hi")
	require.Equal(t, "Hi", state.SetNameInput())

	h.HandleEvent(key(tcell.KeyBackspace2))
	assert.Equal(t, "H", state.SetNameInput())

	h.HandleEvent(key(tcell.KeyEscape))
	assert.Equal(t, PageSetList, state.Page())
	assert.Equal(t, 0, state.SetCount(), "Escape must not create a set")
	assert.False(t, state.Exiting(), "Escape on CreateSet goes back, it does not quit")
	assert.Equal(t, 1, sound.discards)
	assert.Equal(t, 0, sound.commits)
}

func TestEscapeDiscardsRegardlessOfBuffer(t *testing.T) {
	for _, text := range []string{"", "x", "a longer name", "日本"} {
		t.Run(text, func(t *testing.T) {
			state := NewState(flashcard.NewSet("Existing"))
			h := NewInputHandler(state, nil, nil)

			h.HandleEvent(runeKey('n'))
			typeText(h, text)
			h.HandleEvent(key(tcell.KeyEscape))

			assert.Equal(t, PageSetList, state.Page())
			assert.Equal(t, []string{"Existing"}, setNames(state))
		})
	}
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	state := NewState()
	h := NewInputHandler(state, nil, nil)

	h.HandleEvent(runeKey('n'))
	for _, k := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyBackspace} {
		h.HandleEvent(key(k))
		assert.Equal(t, "", state.SetNameInput())
	}
	assert.Equal(t, PageCreateSet, state.Page())
}

func TestReenteringCreateSetClearsBuffer(t *testing.T) {
	state := NewState()
	h := NewInputHandler(state, nil, nil)

	h.HandleEvent(runeKey('n'))
	typeText(h, "stale")
	h.HandleEvent(key(tcell.KeyEscape))

	h.HandleEvent(runeKey('n'))
	assert.Equal(t, "", state.SetNameInput())
}

func TestTypedNameMatchesCommittedSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_.!?éüñ日本語")

	for i := 0; i < 50; i++ {
		n := rng.IntN(20)
		runes := make([]rune, n)
		for j := range runes {
			runes[j] = alphabet[rng.IntN(len(alphabet))]
		}
		name := string(runes)

		state := NewState()
		h := NewInputHandler(state, nil, nil)
		h.HandleEvent(runeKey('n'))
		typeText(h, name)
		h.HandleEvent(key(tcell.KeyEnter))

		require.Equal(t, PageSetList, state.Page(), "name %q", name)
		require.Equal(t, []string{name}, setNames(state), "name %q", name)
	}
}

func TestQuitKeysOnSetList(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", runeKey('q')},
		{"Escape", key(tcell.KeyEscape)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(flashcard.NewSet("Test"))
			h := NewInputHandler(state, nil, nil)

			assert.False(t, h.HandleEvent(tt.ev), "Expected HandleEvent to report exit")
			assert.True(t, state.Exiting())
			assert.Equal(t, PageSetList, state.Page(), "Exit is a flag, not a page")
		})
	}
}

func TestNoMutationAfterExit(t *testing.T) {
	state := NewState(flashcard.NewSet("Test"))
	h := NewInputHandler(state, nil, nil)

	h.HandleEvent(runeKey('q'))
	require.True(t, state.Exiting())

	h.HandleEvent(runeKey('n'))
	typeText(h, "late")
	h.HandleEvent(key(tcell.KeyEnter))

	assert.Equal(t, PageSetList, state.Page())
	assert.Equal(t, "", state.SetNameInput())
	assert.Equal(t, []string{"Test"}, setNames(state))
}

func TestQInsideCreateSetIsText(t *testing.T) {
	state := NewState()
	h := NewInputHandler(state, nil, nil)

	h.HandleEvent(runeKey('n'))
	typeText(h, "quiz")
	h.HandleEvent(runeKey('n'))

	assert.False(t, state.Exiting())
	assert.Equal(t, "quizn", state.SetNameInput())
}

func TestIgnoredEvents(t *testing.T) {
	tests := []struct {
		name string
		page Page
		ev   tcell.Event
	}{
		{"Resize on list", PageSetList, tcell.NewEventResize(100, 40)},
		{"Resize on create", PageCreateSet, tcell.NewEventResize(100, 40)},
		{"Other rune on list", PageSetList, runeKey('x')},
		{"Enter on list", PageSetList, key(tcell.KeyEnter)},
		{"Backspace on list", PageSetList, key(tcell.KeyBackspace2)},
		{"Arrow on create", PageCreateSet, key(tcell.KeyLeft)},
		{"Tab on create", PageCreateSet, key(tcell.KeyTab)},
		{"Ctrl+N on list", PageSetList, tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl)},
		{"Alt+a on create", PageCreateSet, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(flashcard.NewSet("Test"))
			h := NewInputHandler(state, nil, nil)
			if tt.page == PageCreateSet {
				h.HandleEvent(runeKey('n'))
				typeText(h, "ab")
			}
			wantInput := state.SetNameInput()

			assert.True(t, h.HandleEvent(tt.ev))
			assert.Equal(t, tt.page, state.Page())
			assert.Equal(t, wantInput, state.SetNameInput())
			assert.Equal(t, 1, state.SetCount())
			assert.False(t, state.Exiting())
		})
	}
}

func TestDuplicateAndEmptyNamesAccepted(t *testing.T) {
	state := NewState()
	sound := &recordingSound{}
	h := NewInputHandler(state, sound, nil)

	for _, name := range []string{"Dup", "Dup", ""} {
		h.HandleEvent(runeKey('n'))
		typeText(h, name)
		h.HandleEvent(key(tcell.KeyEnter))
	}

	assert.Equal(t, []string{"Dup", "Dup", ""}, setNames(state))
	assert.Equal(t, 3, sound.commits)
}

func TestEveryPageHandlesInput(t *testing.T) {
	for _, page := range Pages() {
		t.Run(page.String(), func(t *testing.T) {
			state := NewState()
			state.page = page
			h := NewInputHandler(state, nil, nil)
			assert.NotPanics(t, func() { h.HandleEvent(runeKey('x')) })
		})
	}

	state := NewState()
	state.page = Page(len(Pages()))
	h := NewInputHandler(state, nil, nil)
	assert.Panics(t, func() { h.HandleEvent(runeKey('x')) }, "Unknown pages must not be silently ignored")
}
