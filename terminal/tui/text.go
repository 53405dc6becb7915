package tui

import "github.com/lixenwraith/flashcards/terminal"

const ellipsis = "…"

// StringWidth returns the number of cells s occupies
func StringWidth(s string) int {
	return terminal.StringWidth(s)
}

// Truncate keeps the head of s within maxW cells, marking the cut with …
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if StringWidth(s) <= maxW {
		return s
	}

	budget := maxW - 1 // Ellipsis takes one cell
	used := 0
	for i, ch := range s {
		w := terminal.RuneWidth(ch)
		if used+w > budget {
			return s[:i] + ellipsis
		}
		used += w
	}
	return s
}

// TruncateLeft keeps the tail of s within maxW cells, marking the cut with …
func TruncateLeft(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if StringWidth(s) <= maxW {
		return s
	}

	runes := []rune(s)
	budget := maxW - 1
	used := 0
	start := len(runes)
	for start > 0 {
		w := terminal.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	return ellipsis + string(runes[start:])
}
