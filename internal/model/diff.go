package model

import (
	"fmt"
	"strconv"
)

// ChangeType represents the kind of form change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// UIChange represents a single change between two reads of a form.
type UIChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Element *FlatElement         `yaml:"el,omitempty"      json:"el,omitempty"`      // For added: the full element
	ID      int                  `yaml:"id,omitempty"      json:"id,omitempty"`      // For removed/changed: element ID
	Kind    string               `yaml:"y,omitempty"       json:"y,omitempty"`       // For removed/changed: type tag
	Name    string               `yaml:"n,omitempty"       json:"n,omitempty"`       // For removed/changed: name
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// DiffElements compares two flat element lists and returns the changes.
// Elements are matched by ID, which bindings keep stable for the lifetime of
// a form. A window that opens shows up as added, one that closes as removed.
func DiffElements(prev, curr []FlatElement) []UIChange {
	prevMap := make(map[int]FlatElement, len(prev))
	for _, el := range prev {
		prevMap[el.ID] = el
	}
	currMap := make(map[int]FlatElement, len(curr))
	for _, el := range curr {
		currMap[el.ID] = el
	}

	var changes []UIChange

	for _, el := range curr {
		prevEl, existed := prevMap[el.ID]
		if !existed {
			elCopy := el
			changes = append(changes, UIChange{Type: ChangeAdded, Element: &elCopy})
			continue
		}
		if diffs := diffProperties(prevEl, el); len(diffs) > 0 {
			changes = append(changes, UIChange{
				Type:    ChangeChanged,
				ID:      el.ID,
				Kind:    el.Type,
				Name:    el.Name,
				Changes: diffs,
			})
		}
	}

	for _, el := range prev {
		if _, exists := currMap[el.ID]; !exists {
			changes = append(changes, UIChange{
				Type: ChangeRemoved,
				ID:   el.ID,
				Kind: el.Type,
				Name: el.Name,
			})
		}
	}

	return changes
}

// diffProperties compares two elements and returns changed fields keyed by
// their short serialized names.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Name != curr.Name {
		diffs["n"] = [2]string{prev.Name, curr.Name}
	}
	if prev.Text != curr.Text {
		diffs["t"] = [2]string{prev.Text, curr.Text}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{fmt.Sprintf("%v", prev.Bounds), fmt.Sprintf("%v", curr.Bounds)}
	}
	if p, c := boolPtr(prev.Checked), boolPtr(curr.Checked); p != c {
		diffs["k"] = [2]string{p, c}
	}
	if p, c := boolPtr(prev.Realized), boolPtr(curr.Realized); p != c {
		diffs["z"] = [2]string{p, c}
	}
	if prev.Focused != curr.Focused {
		diffs["f"] = [2]string{strconv.FormatBool(prev.Focused), strconv.FormatBool(curr.Focused)}
	}
	if prev.Selected != curr.Selected {
		diffs["s"] = [2]string{strconv.FormatBool(prev.Selected), strconv.FormatBool(curr.Selected)}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func boolPtr(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
