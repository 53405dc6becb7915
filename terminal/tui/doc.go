// Package tui provides immediate-mode TUI primitives over terminal.Buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Pure: widgets read their inputs and write cells, nothing else
//   - Composable: regions nest via Sub(), Center places fixed-size widgets
//   - Cell-width aware: wide runes take two cells, text never overruns a region
//
// Usage pattern:
//
//	root := tui.NewRegion(buf, 0, 0, w, h)
//	root.Fill(theme.Bg)
//
//	content := root.Pane(tui.PaneOpts{Title: "Sets", Border: tui.LineDouble})
//	content.Text(0, 0, "Hello", fg, bg, terminal.AttrNone)
package tui
