package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by ReadEvent and Draw once the screen has been finalized
var ErrClosed = errors.New("terminal: screen closed")

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
// Zero colors mean the terminal default
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs Attr
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg).
		Background(c.Bg).
		Attributes(TcellAttrs(c.Attrs))
}

// Screen drives a tcell.Screen one frame at a time
type Screen struct {
	screen tcell.Screen
	buf    *Buffer

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		buf:    NewBuffer(0, 0),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Draw paints one frame: the buffer is sized to the screen and cleared, fn paints it, then it is shown
func (s *Screen) Draw(fn func(buf *Buffer)) error {
	if s.closed() {
		return ErrClosed
	}

	w, h := s.screen.Size()
	s.buf.Resize(w, h)
	fn(s.buf)
	s.Flush(s.buf)
	return nil
}

// Flush writes cell buffer to the screen and shows it
// A wide rune owns the next cell, which is not written
func (s *Screen) Flush(buf *Buffer) {
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			s.screen.SetContent(x, y, ch, nil, c.Style())
			if RuneWidth(ch) == 2 {
				x++
			}
		}
	}
	s.screen.Show()
}

// ReadEvent blocks until the next event
// Resize events trigger a full resync before being returned
func (s *Screen) ReadEvent() (tcell.Event, error) {
	if s.closed() {
		return nil, ErrClosed
	}

	ev := s.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return nil, ErrClosed
	case *tcell.EventError:
		return nil, fmt.Errorf("poll event: %w", ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return ev, nil
}

func (s *Screen) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}
