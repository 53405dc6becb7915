package terminal

import "github.com/gdamore/tcell/v2"

// TcellAttrs converts terminal.Attr to tcell.AttrMask
func TcellAttrs(a Attr) tcell.AttrMask {
	mask := tcell.AttrNone
	if a&AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&AttrUnderline != 0 {
		mask |= tcell.AttrUnderline
	}
	if a&AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	return mask
}
