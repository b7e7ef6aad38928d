package model

// FrontmostWindow returns the top-level window that currently owns the user's
// attention, or nil when the tree has no realized window.
//
// Strategies, in order:
//  1. Focus-based: the realized window containing the focused element.
//  2. Stacking order: the last realized top-level window (later siblings are
//     stacked above earlier ones).
func FrontmostWindow(elements []Element) *Element {
	for i := range elements {
		win := &elements[i]
		if win.Type == TypeWindow && win.IsRealized() && containsFocused(win) {
			return win
		}
	}
	for i := len(elements) - 1; i >= 0; i-- {
		win := &elements[i]
		if win.Type == TypeWindow && win.IsRealized() {
			return win
		}
	}
	return nil
}

// containsFocused recursively checks if an element or any descendant has focus.
func containsFocused(el *Element) bool {
	if el.Focused {
		return true
	}
	for i := range el.Children {
		if containsFocused(&el.Children[i]) {
			return true
		}
	}
	return false
}
