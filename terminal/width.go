package terminal

import (
	"github.com/mattn/go-runewidth"
)

// widthCond measures runes the way tcell lays them out: ambiguous-width runes
// (box drawing, ellipsis) take one cell regardless of locale
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the number of cells ch occupies: 0, 1 or 2
func RuneWidth(ch rune) int {
	return widthCond.RuneWidth(ch)
}

// StringWidth returns the number of cells s occupies
func StringWidth(s string) int {
	return widthCond.StringWidth(s)
}
