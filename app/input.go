package app

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// SoundPlayer receives audible feedback cues, implementations must not block
type SoundPlayer interface {
	PlayCommit()
	PlayDiscard()
}

type noSound struct{}

func (noSound) PlayCommit()  {}
func (noSound) PlayDiscard() {}

// InputHandler maps (page, event) to a state transition
type InputHandler struct {
	state  *State
	sound  SoundPlayer
	logger *slog.Logger
}

// NewInputHandler creates an input handler mutating state, sound and logger may be nil
func NewInputHandler(state *State, sound SoundPlayer, logger *slog.Logger) *InputHandler {
	if sound == nil {
		sound = noSound{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InputHandler{
		state:  state,
		sound:  sound,
		logger: logger.With("component", "input"),
	}
}

// HandleEvent processes one tcell event and returns false once the app should exit
// Non-key events and unmatched keys are ignored, events after exit are not applied
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	if h.state.exit {
		return false
	}

	if key, ok := ev.(*tcell.EventKey); ok {
		h.handleKeyEvent(key)
	}
	return !h.state.exit
}

// handleKeyEvent applies the first matching rule: page rules, then the global quit rule
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) {
	var handled bool
	//exhaustive:enforce
	switch h.state.page {
	case PageSetList:
		handled = h.handleSetList(ev)
	case PageCreateSet:
		handled = h.handleCreateSet(ev)
	default:
		panic(fmt.Sprintf("input: unhandled page %v", h.state.page))
	}
	if handled {
		return
	}

	if isQuitKey(ev) {
		h.logger.Info("exit requested", "page", h.state.page)
		h.state.requestExit()
	}
}

// handleSetList handles input on the set list
func (h *InputHandler) handleSetList(ev *tcell.EventKey) bool {
	if isRune(ev, 'n') {
		h.state.openCreateSet()
		h.logger.Debug("page transition", "from", PageSetList, "to", PageCreateSet)
		return true
	}
	return false
}

// handleCreateSet handles input while composing a set name
func (h *InputHandler) handleCreateSet(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		discarded := len(h.state.input)
		h.state.cancelCreateSet()
		h.sound.PlayDiscard()
		h.logger.Debug("page transition", "from", PageCreateSet, "to", PageSetList, "discarded_runes", discarded)
		return true

	case tcell.KeyEnter:
		set := h.state.commitSet()
		h.sound.PlayCommit()
		h.logger.Info("set created", "id", set.ID, "name", set.Name, "total_sets", len(h.state.sets))
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.state.deleteInput()
		return true

	case tcell.KeyRune:
		if isPrintable(ev) {
			h.state.appendInput(ev.Rune())
			return true
		}
	}
	return false
}

// isQuitKey matches 'q' or Escape
func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || isRune(ev, 'q')
}

// isRune matches an unmodified rune key (Shift is allowed)
func isRune(ev *tcell.EventKey, ch rune) bool {
	return isPrintable(ev) && ev.Rune() == ch
}

// isPrintable matches rune keys that type text: printable and without Ctrl/Alt/Meta
func isPrintable(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune())
}
