package terminal

import "strings"

// Buffer is a row-major cell grid that frames are painted into before flushing
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions and clears it, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if x, y addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Get returns the cell at x, y or the zero cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Row returns the text of row y as the terminal shows it: empty cells read as
// spaces and the cell covered by a wide rune is skipped
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.width)
	row := b.cells[y*b.width : (y+1)*b.width]
	for x := 0; x < len(row); x++ {
		ch := row[x].Rune
		if ch == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(ch)
		if RuneWidth(ch) == 2 {
			x++
		}
	}
	return sb.String()
}

// String returns all rows joined by newlines
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Equal reports whether both buffers have the same size and cells
func (b *Buffer) Equal(other *Buffer) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
