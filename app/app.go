// Package app holds the application state, its navigation state machine and the event loop.
package app

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flashcards/terminal"
)

// Terminal is the backend contract: paint one frame, block for the next event
type Terminal interface {
	Draw(fn func(buf *terminal.Buffer)) error
	ReadEvent() (tcell.Event, error)
}

// Renderer projects a view into a frame buffer without mutating it
type Renderer interface {
	Render(buf *terminal.Buffer, view View)
}

// App owns the state and drives the render/input loop
type App struct {
	term     Terminal
	renderer Renderer
	state    *State
	input    *InputHandler
	logger   *slog.Logger
}

// New creates an app over state, sound and logger may be nil
func New(term Terminal, renderer Renderer, state *State, sound SoundPlayer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		term:     term,
		renderer: renderer,
		state:    state,
		input:    NewInputHandler(state, sound, logger),
		logger:   logger.With("component", "app"),
	}
}

// State returns the read-only view of the app state
func (a *App) State() View {
	return a.state
}

// Run renders and handles one event per iteration until the exit flag is set
// Terminal failures end the loop and are returned wrapped
func (a *App) Run() error {
	a.logger.Info("event loop started", "sets", a.state.SetCount(), "page", a.state.Page())

	frames := 0
	for !a.state.Exiting() {
		err := a.term.Draw(func(buf *terminal.Buffer) {
			a.renderer.Render(buf, a.state)
		})
		if err != nil {
			a.logger.Error("render failed", "error", err, "frames", frames)
			return fmt.Errorf("render frame: %w", err)
		}
		frames++

		ev, err := a.term.ReadEvent()
		if err != nil {
			a.logger.Error("read failed", "error", err, "frames", frames)
			return fmt.Errorf("read event: %w", err)
		}
		a.input.HandleEvent(ev)
	}

	a.logger.Info("event loop finished", "sets", a.state.SetCount(), "frames", frames)
	return nil
}
