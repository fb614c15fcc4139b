package heatmap

// HoverState is the single optional hover record of one widget instance.
// The host's pointer events drive it: Enter on entering a cell shape, Leave
// on leaving it. Entering a new cell before leaving the previous one simply
// overwrites the state.
type HoverState struct {
	X, Y   int
	Text   string
	active bool
}

// Enter records the pointer coordinates and tooltip text for the hovered cell.
func (h *HoverState) Enter(x, y int, text string) {
	h.X = x
	h.Y = y
	h.Text = text
	h.active = true
}

// Leave clears the hover state.
func (h *HoverState) Leave() {
	*h = HoverState{}
}

// Active reports whether a cell is currently hovered.
func (h *HoverState) Active() bool {
	return h != nil && h.active
}
