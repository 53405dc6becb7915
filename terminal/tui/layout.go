package tui

// Center returns a region of at most w by h cells centered in outer
func Center(outer Region, w, h int) Region {
	w = min(w, outer.W)
	h = min(h, outer.H)
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}
