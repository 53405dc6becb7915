package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme defines semantic colors for TUI components
type Theme struct {
	Bg     tcell.Color
	Fg     tcell.Color
	Border tcell.Color
	Title  tcell.Color

	RowBg   tcell.Color // Background behind list entries
	RowFg   tcell.Color
	HintFg  tcell.Color // Secondary text, counts
	InputBg tcell.Color
	InputFg tcell.Color

	KeyPrimary tcell.Color // Hotkey that moves forward (new set)
	KeyDanger  tcell.Color // Hotkey that quits
}

// DefaultTheme follows the terminal palette, dark-gray rows and blue/red hotkeys
var DefaultTheme = Theme{
	Bg:         tcell.ColorDefault,
	Fg:         tcell.ColorWhite,
	Border:     tcell.ColorWhite,
	Title:      tcell.ColorWhite,
	RowBg:      tcell.ColorDarkGray,
	RowFg:      tcell.ColorWhite,
	HintFg:     tcell.ColorSilver,
	InputBg:    tcell.ColorDefault,
	InputFg:    tcell.ColorWhite,
	KeyPrimary: tcell.ColorBlue,
	KeyDanger:  tcell.ColorRed,
}

// MonoTheme uses only terminal defaults, relying on attributes for emphasis
var MonoTheme = Theme{
	Bg:         tcell.ColorDefault,
	Fg:         tcell.ColorDefault,
	Border:     tcell.ColorDefault,
	Title:      tcell.ColorDefault,
	RowBg:      tcell.ColorDefault,
	RowFg:      tcell.ColorDefault,
	HintFg:     tcell.ColorDefault,
	InputBg:    tcell.ColorDefault,
	InputFg:    tcell.ColorDefault,
	KeyPrimary: tcell.ColorDefault,
	KeyDanger:  tcell.ColorDefault,
}

// ThemeByName resolves a configured theme name
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme, nil
	case "mono":
		return MonoTheme, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}
