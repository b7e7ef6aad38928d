package operator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/forms-cli/internal/geometry"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/search"
)

// Table resolves rows of repeated fields by their column values.
type Table struct {
	scope
}

// NewTable returns a table operator over tree.
func NewTable(tree platform.Tree, s search.Searcher) *Table {
	return &Table{scope: scope{tree: tree, searcher: s}}
}

// Resolution is the outcome of a row lookup.
type Resolution struct {
	// Anchor is the leftmost field of the chosen row.
	Anchor platform.Handle
	// Candidates are every anchor that survived reduction, in traversal
	// order. Anchor is Candidates[0].
	Candidates []platform.Handle
	// Diagnostics are notes about the resolution, such as an ambiguous
	// match resolved to the first candidate.
	Diagnostics []string
}

// Ambiguous reports whether more than one row matched.
func (r *Resolution) Ambiguous() bool { return len(r.Candidates) > 1 }

// FindTextFieldsByValue returns every text field whose value matches the
// wildcard pattern, in traversal order.
func (t *Table) FindTextFieldsByValue(pattern string) ([]platform.Handle, error) {
	return t.findAll(search.ByValue{Pattern: pattern, Types: model.TextFieldTypes})
}

// FindRow locates the row whose fields, read left to right, hold keys in
// order. Each key may be a wildcard pattern.
//
// Candidate fields are collected per key, then reduced right to left: a
// candidate for key i-1 survives only if some surviving candidate for key i
// is adjacent to its right. The surviving candidates for the first key are
// the row anchors; the first in traversal order is chosen.
func (t *Table) FindRow(keys []string) (*Resolution, error) {
	if len(keys) == 0 {
		return nil, &NoRowFoundError{Keys: keys, Reason: "no column values given"}
	}
	logger.Debug("Locating row %s", strings.Join(keys, ", "))

	columns := make([][]platform.Handle, len(keys))
	for i, key := range keys {
		matches, err := t.FindTextFieldsByValue(key)
		if err != nil {
			return nil, err
		}
		columns[i] = matches
		logger.Debug("Found %d potential matches for '%s'.", len(matches), key)
	}
	if len(columns[0]) == 0 {
		return nil, &NoRowFoundError{Keys: keys, Reason: fmt.Sprintf("no column found with value '%s'", keys[0])}
	}

	box, err := boxes(columns...)
	if err != nil {
		return nil, err
	}
	all := make([]platform.Bounds, 0, len(box))
	for _, b := range box {
		all = append(all, b)
	}

	geo := t.searcher.Geometry
	for i := len(columns) - 1; i > 0; i-- {
		right := columns[i]
		var kept []platform.Handle
		for _, left := range columns[i-1] {
			for _, r := range right {
				if geo.Adjacent(box[left.ID()], box[r.ID()], all...) {
					kept = append(kept, left)
					break
				}
			}
		}
		columns[i-1] = kept
	}

	anchors := columns[0]
	if len(anchors) == 0 {
		return nil, &NoRowFoundError{Keys: keys, Reason: "no row holds the values left to right"}
	}

	res := &Resolution{Anchor: anchors[0], Candidates: anchors}
	if len(anchors) > 1 {
		note := fmt.Sprintf("Multiple rows found (%d). Selecting first one.", len(anchors))
		res.Diagnostics = append(res.Diagnostics, note)
		logger.L().WithField("keys", keys).WithField("candidates", len(anchors)).Info(note)
	}
	b := box[res.Anchor.ID()]
	logger.Info("Found matching row @ %d, %d.", b.X, b.Y)
	return res, nil
}

// RowExists reports whether FindRow succeeds. Only NoRowFoundError is turned
// into false; every other error is returned.
func (t *Table) RowExists(keys []string) (bool, error) {
	_, err := t.FindRow(keys)
	if err == nil {
		return true, nil
	}
	var notFound *NoRowFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

// SelectRow clicks the row anchor.
func (t *Table) SelectRow(keys []string) (*Resolution, error) {
	return t.clickRow(keys, 1)
}

// DoubleClickRow double-clicks the row anchor.
func (t *Table) DoubleClickRow(keys []string) (*Resolution, error) {
	return t.clickRow(keys, 2)
}

func (t *Table) clickRow(keys []string, count int) (*Resolution, error) {
	res, err := t.FindRow(keys)
	if err != nil {
		return nil, err
	}
	if _, err := platform.Invoke(res.Anchor, platform.OpClick, count); err != nil {
		return nil, err
	}
	return res, nil
}

// RowComponents returns the components of the given types on the same
// visual row as anchor, ordered left to right.
func (t *Table) RowComponents(anchor platform.Handle, types ...string) ([]platform.Handle, error) {
	ab, err := platform.BoundsOf(anchor)
	if err != nil {
		return nil, err
	}
	all, err := t.findAll(search.ByType{Index: -1, Types: types})
	if err != nil {
		return nil, err
	}
	box, err := boxes(all)
	if err != nil {
		return nil, err
	}
	var onRow []platform.Handle
	for _, h := range all {
		if t.searcher.Geometry.Aligned(ab, box[h.ID()]) {
			onRow = append(onRow, h)
		}
	}
	return geometry.Order(onRow, func(h platform.Handle) platform.Bounds { return box[h.ID()] }), nil
}

// rowElement returns the 1-based index-th component of types on the row.
func (t *Table) rowElement(kind string, index int, keys []string, types ...string) (platform.Handle, *Resolution, error) {
	res, err := t.FindRow(keys)
	if err != nil {
		return nil, nil, err
	}
	items, err := t.RowComponents(res.Anchor, types...)
	if err != nil {
		return nil, nil, err
	}
	if index < 1 || index > len(items) {
		return nil, nil, &InsufficientRowElementsError{Kind: kind, Index: index, Found: len(items)}
	}
	return items[index-1], res, nil
}

// rowCheckbox returns the inner toggle of the index-th checkbox on the row.
func (t *Table) rowCheckbox(index int, keys []string) (platform.Handle, error) {
	wrapper, _, err := t.rowElement("checkbox", index, keys, model.TypeCheckWrap)
	if err != nil {
		return nil, err
	}
	return platform.GetHandle(wrapper, platform.OpGetInner)
}

// SelectRowCheckbox checks the index-th (1-based) checkbox on the row.
func (t *Table) SelectRowCheckbox(index int, keys []string) error {
	return t.setRowCheckbox(index, keys, true)
}

// DeselectRowCheckbox unchecks the index-th (1-based) checkbox on the row.
func (t *Table) DeselectRowCheckbox(index int, keys []string) error {
	return t.setRowCheckbox(index, keys, false)
}

func (t *Table) setRowCheckbox(index int, keys []string, checked bool) error {
	box, err := t.rowCheckbox(index, keys)
	if err != nil {
		return err
	}
	if _, err := platform.Invoke(box, platform.OpSetChecked, checked); err != nil {
		return err
	}
	logger.Info("Set checkbox %d to %v.", index, checked)
	return nil
}

// RowCheckboxState reports whether the index-th checkbox on the row is checked.
func (t *Table) RowCheckboxState(index int, keys []string) (bool, error) {
	box, err := t.rowCheckbox(index, keys)
	if err != nil {
		return false, err
	}
	return platform.GetBool(box, platform.OpIsChecked)
}

// SelectRowButton pushes the index-th (1-based) button on the row.
func (t *Table) SelectRowButton(index int, keys []string) error {
	button, _, err := t.rowElement("button", index, keys, model.ButtonTypes...)
	if err != nil {
		return err
	}
	return Push(button)
}

// RowField returns the text field named identifier on the row.
func (t *Table) RowField(identifier string, keys []string) (platform.Handle, error) {
	res, err := t.FindRow(keys)
	if err != nil {
		return nil, err
	}
	found, err := t.findAll(search.ByRow{Anchor: res.Anchor, Name: identifier, Types: model.TextFieldTypes})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, &NoMatchError{What: "row field", Identifier: identifier}
	}
	return found[0], nil
}

// GetRowField reads the field named identifier on the row.
func (t *Table) GetRowField(identifier string, keys []string) (string, error) {
	h, err := t.RowField(identifier, keys)
	if err != nil {
		return "", err
	}
	value, err := GetValue(h)
	if err != nil {
		return "", err
	}
	logger.Info("Found field value '%s'.", value)
	return value, nil
}

// SetRowField sets the field named identifier on the row.
func (t *Table) SetRowField(identifier, value string, keys []string) error {
	h, err := t.RowField(identifier, keys)
	if err != nil {
		return err
	}
	return SetValue(h, value)
}

// ColumnAtRow returns the rowIndex-th (1-based) field named column, counted
// in traversal order over the whole tree.
//
// Unlike FindRow this does not look at geometry: it assumes traversal order
// equals visual row order, and returns the wrong row when a toolkit lays
// out its rows in a different order than it lists them.
func (t *Table) ColumnAtRow(column string, rowIndex int) (platform.Handle, error) {
	found, err := t.findAll(search.ByName{Name: column, Types: model.TextFieldTypes})
	if err != nil {
		return nil, err
	}
	if rowIndex < 1 || rowIndex > len(found) {
		return nil, &InsufficientRowElementsError{Kind: "row of column '" + column + "'", Index: rowIndex, Found: len(found)}
	}
	return found[rowIndex-1], nil
}

// SetFieldAtIndex sets the rowIndex-th field of a column. See ColumnAtRow for
// how rows are counted.
func (t *Table) SetFieldAtIndex(column string, rowIndex int, value string) error {
	h, err := t.ColumnAtRow(column, rowIndex)
	if err != nil {
		return err
	}
	return SetValue(h, value)
}
