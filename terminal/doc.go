// Package terminal wraps a tcell screen behind a frame-oriented contract.
//
// Features:
//   - Cell buffer that callers paint into without touching the screen
//   - One-shot frame flush: Draw(fn) resizes, clears, paints and shows
//   - Blocking event read with error and closed-screen detection
//   - Idempotent teardown, usable from panic handlers
//
// Usage pattern:
//
//	scr, err := terminal.New()
//	if err := scr.Init(); err != nil { ... }
//	defer scr.Fini()
//
//	scr.Draw(func(buf *terminal.Buffer) {
//	    buf.Set(0, 0, terminal.Cell{Rune: 'x'})
//	})
//	ev, err := scr.ReadEvent()
package terminal
