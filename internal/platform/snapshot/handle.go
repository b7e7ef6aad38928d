package snapshot

import (
	"fmt"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
)

// node is the base handle over one element. Concrete handle types embed it
// and add the capability interfaces their component type supports.
type node struct {
	form *Form
	el   *model.Element
}

// wrap returns the handle type matching el's component type.
func (f *Form) wrap(el *model.Element) platform.Handle {
	n := node{form: f, el: el}
	switch el.Type {
	case model.TypeText, model.TypeTextArea, model.TypeCombo:
		return &textHandle{n}
	case model.TypeButton, model.TypePush:
		return &buttonHandle{n}
	case model.TypeCheck:
		return &checkHandle{n}
	case model.TypeCheckWrap:
		return &checkWrapHandle{n}
	case model.TypeLabel:
		return &labelHandle{n}
	case model.TypeStatusBar:
		return &statusBarHandle{n}
	}
	return &n
}

func (n *node) ID() int { return n.el.ID }

func (n *node) Type() string { return n.el.Type }

func (n *node) Name() string {
	n.form.mu.Lock()
	defer n.form.mu.Unlock()
	return n.el.Name
}

func (n *node) Bounds() (platform.Bounds, error) {
	n.form.mu.Lock()
	defer n.form.mu.Unlock()
	if !n.form.realizedLocked(n.el) {
		return platform.Bounds{}, fmt.Errorf("%s#%d is not realized", n.el.Type, n.el.ID)
	}
	return platform.BoundsFromArray(n.el.Bounds), nil
}

// Children omits closed windows, which are not part of the live tree.
func (n *node) Children() []platform.Handle {
	n.form.mu.Lock()
	defer n.form.mu.Unlock()
	return n.form.wrapAllLocked(n.el.Children)
}

func (f *Form) wrapAllLocked(elements []model.Element) []platform.Handle {
	out := make([]platform.Handle, 0, len(elements))
	for i := range elements {
		el := &elements[i]
		if el.Type == model.TypeWindow && !el.IsRealized() {
			continue
		}
		out = append(out, f.wrap(el))
	}
	return out
}

// click focuses and selects the element, then applies its window
// transitions. Callers hold the lock.
func (n *node) clickLocked() {
	f := n.form
	f.clearLocked(f.elements, true, true)
	n.el.Focused = true
	n.el.Selected = true

	if n.el.Closes {
		if win := f.windowOfLocked(n.el); win != nil {
			closed := false
			win.Realized = &closed
			clearFocus(win)
		}
	}
	if n.el.Opens != "" {
		if win := f.windowByNameLocked(n.el.Opens); win != nil {
			open := true
			win.Realized = &open
			f.clearLocked(f.elements, true, false)
			win.Focused = true
		}
	}
}

func clearFocus(el *model.Element) {
	el.Focused = false
	for i := range el.Children {
		clearFocus(&el.Children[i])
	}
}

func (n *node) Click(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid click count %d", count)
	}
	n.form.mu.Lock()
	defer n.form.mu.Unlock()
	if !n.form.realizedLocked(n.el) {
		return fmt.Errorf("%s#%d is not realized", n.el.Type, n.el.ID)
	}
	n.clickLocked()
	return nil
}

// rootHandle is the synthetic parent of the top-level windows.
type rootHandle struct {
	form *Form
}

func (r *rootHandle) ID() int      { return 0 }
func (r *rootHandle) Type() string { return "root" }
func (r *rootHandle) Name() string { return r.form.name }

func (r *rootHandle) Bounds() (platform.Bounds, error) {
	return platform.Bounds{}, fmt.Errorf("root has no bounds")
}

func (r *rootHandle) Children() []platform.Handle {
	r.form.mu.Lock()
	defer r.form.mu.Unlock()
	return r.form.wrapAllLocked(r.form.elements)
}

// textHandle is a text field, text area or combo box. Text written while the
// field does not have focus is discarded; text written while focused is
// committed when focus is lost.
type textHandle struct{ node }

func (h *textHandle) Text() (string, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	return h.el.Text, nil
}

func (h *textHandle) SetText(text string) error {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	if !h.el.Focused {
		delete(h.form.pending, h.el.ID)
		return nil
	}
	h.form.pending[h.el.ID] = text
	return nil
}

func (h *textHandle) DispatchFocus(gained bool) error {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	if gained {
		h.form.clearLocked(h.form.elements, true, false)
		h.el.Focused = true
		return nil
	}
	if text, ok := h.form.pending[h.el.ID]; ok {
		h.el.Text = text
		delete(h.form.pending, h.el.ID)
	}
	h.el.Focused = false
	return nil
}

type buttonHandle struct{ node }

func (h *buttonHandle) Text() (string, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	if h.el.Text != "" {
		return h.el.Text, nil
	}
	return h.el.Name, nil
}

// checkHandle is the inner two-state toggle of a checkbox.
type checkHandle struct{ node }

func (h *checkHandle) Checked() (bool, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	return h.el.Checked != nil && *h.el.Checked, nil
}

func (h *checkHandle) SetChecked(checked bool) error {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	h.el.Checked = &checked
	return nil
}

func (h *checkHandle) Click(count int) error {
	if err := h.node.Click(count); err != nil {
		return err
	}
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	checked := h.el.Checked != nil && *h.el.Checked
	if count%2 == 1 {
		checked = !checked
	}
	h.el.Checked = &checked
	return nil
}

// checkWrapHandle is the toolkit wrapper around a checkbox. Its toggle state
// is only reachable through Inner.
type checkWrapHandle struct{ node }

// Inner returns the first check child. A wrapper written without an explicit
// child carries its own state, and acts as its own toggle.
func (h *checkWrapHandle) Inner() (platform.Handle, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	for i := range h.el.Children {
		if h.el.Children[i].Type == model.TypeCheck {
			return &checkHandle{node{form: h.form, el: &h.el.Children[i]}}, nil
		}
	}
	return &checkHandle{h.node}, nil
}

// Click toggles the inner state the way a press on the wrapper does.
func (h *checkWrapHandle) Click(count int) error {
	inner, err := h.Inner()
	if err != nil {
		return err
	}
	return inner.(*checkHandle).Click(count)
}

type labelHandle struct{ node }

func (h *labelHandle) Text() (string, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	if h.el.Text != "" {
		return h.el.Text, nil
	}
	return h.el.Name, nil
}

// statusBarHandle exposes its children as items.
type statusBarHandle struct{ node }

func (h *statusBarHandle) Items() ([]platform.Handle, error) {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	return h.form.wrapAllLocked(h.el.Children), nil
}

var (
	_ platform.Handle          = (*node)(nil)
	_ platform.Clicker         = (*node)(nil)
	_ platform.TextReadable    = (*textHandle)(nil)
	_ platform.TextWritable    = (*textHandle)(nil)
	_ platform.FocusDispatcher = (*textHandle)(nil)
	_ platform.Toggle          = (*checkHandle)(nil)
	_ platform.Composite       = (*checkWrapHandle)(nil)
	_ platform.ItemContainer   = (*statusBarHandle)(nil)
	_ platform.Handle          = (*rootHandle)(nil)
)
