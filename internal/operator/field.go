package operator

import (
	"github.com/mj1618/forms-cli/internal/geometry"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/match"
	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/search"
)

// Field operates on stand-alone text fields, labels and buttons.
type Field struct {
	scope
	newWatcher WatcherFunc
}

// NewField returns a field operator over tree. newWatcher may be nil, in which
// case window changes are never detected.
func NewField(tree platform.Tree, s search.Searcher, newWatcher WatcherFunc) *Field {
	return &Field{scope: scope{tree: tree, searcher: s}, newWatcher: newWatcher}
}

// Find returns the first text field named identifier.
func (f *Field) Find(identifier string) (platform.Handle, error) {
	return f.findFirst(search.ByName{Name: identifier, Types: model.TextFieldTypes}, "text field", identifier)
}

// SetField sets the value of the text field named identifier.
func (f *Field) SetField(identifier, value string) error {
	h, err := f.Find(identifier)
	if err != nil {
		return err
	}
	return SetValue(h, value)
}

// GetField returns the value of the text field named identifier.
func (f *Field) GetField(identifier string) (string, error) {
	h, err := f.Find(identifier)
	if err != nil {
		return "", err
	}
	return GetValue(h)
}

// VerifyField checks the value of the text field named identifier against a
// wildcard pattern.
func (f *Field) VerifyField(identifier, pattern string) error {
	h, err := f.Find(identifier)
	if err != nil {
		return err
	}
	return VerifyValue(h, identifier, pattern)
}

// NextToLabel returns the text field immediately right of the label named
// label. Meant for fields that have no name of their own.
func (f *Field) NextToLabel(label string) (platform.Handle, error) {
	l, err := f.findFirst(search.ByName{Name: label, Types: []string{model.TypeLabel}}, "label", label)
	if err != nil {
		return nil, err
	}
	fields, err := f.findAll(search.ByType{Index: -1, Types: model.TextFieldTypes})
	if err != nil {
		return nil, err
	}
	lb, err := platform.BoundsOf(l)
	if err != nil {
		return nil, err
	}
	// Fields not yet realized cannot sit next to anything; skip them rather
	// than fail the whole lookup.
	var (
		realized []platform.Handle
		others   []platform.Bounds
		boxByID  = map[int]platform.Bounds{}
	)
	for _, h := range fields {
		b, err := platform.BoundsOf(h)
		if err != nil {
			continue
		}
		realized = append(realized, h)
		others = append(others, b)
		boxByID[h.ID()] = b
	}
	for _, h := range geometry.Order(realized, func(h platform.Handle) platform.Bounds { return boxByID[h.ID()] }) {
		if f.searcher.Geometry.Adjacent(lb, boxByID[h.ID()], others...) {
			return h, nil
		}
	}
	return nil, &NoMatchError{What: "text field next to label", Identifier: label}
}

// SetFieldNextToLabel sets the field immediately right of a label.
func (f *Field) SetFieldNextToLabel(label, value string) error {
	h, err := f.NextToLabel(label)
	if err != nil {
		return err
	}
	return SetValue(h, value)
}

// GetFieldNextToLabel reads the field immediately right of a label.
func (f *Field) GetFieldNextToLabel(label string) (string, error) {
	h, err := f.NextToLabel(label)
	if err != nil {
		return "", err
	}
	return GetValue(h)
}

// ClickTextField clicks the text field named identifier. With detect set, a
// watcher runs around the click and the result reports whether the window
// context changed.
func (f *Field) ClickTextField(identifier string, detect bool) (bool, error) {
	h, err := f.Find(identifier)
	if err != nil {
		return false, err
	}
	return runWatched(f.newWatcher, detect, func() error { return Push(h) })
}

// PushButton presses the button named identifier.
func (f *Field) PushButton(identifier string, detect bool) (bool, error) {
	h, err := f.findFirst(search.ByName{Name: identifier, Types: model.ButtonTypes}, "button", identifier)
	if err != nil {
		return false, err
	}
	return runWatched(f.newWatcher, detect, func() error { return Push(h) })
}

// FindTextFields returns the names of the text fields whose value matches
// pattern, in traversal order.
func (f *Field) FindTextFields(pattern string) ([]string, error) {
	found, err := f.findAll(search.ByValue{Pattern: pattern, Types: model.TextFieldTypes})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(found))
	for _, h := range found {
		names = append(names, h.Name())
	}
	return names, nil
}

// SetValue writes text into a field. The write is bracketed by focus-gained
// and focus-lost events; the toolkit drops text set without them.
func SetValue(h platform.Handle, value string) error {
	if _, err := platform.Invoke(h, platform.OpFocusGained); err != nil {
		return err
	}
	if _, err := platform.Invoke(h, platform.OpSetText, value); err != nil {
		return err
	}
	if _, err := platform.Invoke(h, platform.OpFocusLost); err != nil {
		return err
	}
	logger.Info("Set field value to '%s'.", value)
	return nil
}

// GetValue reads the text of a field.
func GetValue(h platform.Handle) (string, error) {
	return platform.GetString(h, platform.OpGetText)
}

// VerifyValue fails with a ValueMismatchError unless the field text matches
// the wildcard pattern.
func VerifyValue(h platform.Handle, what, pattern string) error {
	actual, err := GetValue(h)
	if err != nil {
		return err
	}
	if !match.Matches(actual, pattern) {
		return &ValueMismatchError{What: what, Expected: pattern, Actual: actual}
	}
	logger.Info("Value '%s' matches '%s'.", actual, pattern)
	return nil
}

// Push clicks a component once.
func Push(h platform.Handle) error {
	if _, err := platform.Invoke(h, platform.OpClick); err != nil {
		return err
	}
	logger.Debug("Pushed %s#%d.", h.Type(), h.ID())
	return nil
}
