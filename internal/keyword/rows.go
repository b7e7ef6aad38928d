package keyword

import (
	"fmt"

	"github.com/mj1618/forms-cli/internal/operator"
)

var (
	paramKeys  = Param{Name: "keys", Type: TypeArray, Required: true, Description: "The row's column values, left to right; wildcards allowed"}
	paramIndex = Param{Name: "index", Type: TypeNumber, Required: true, Description: "1-based position on the row"}
)

func rowKeyword(name, desc string, mutates bool, run func(s *Session, keys []string) (*operator.Resolution, error)) Keyword {
	return Keyword{
		Name:        name,
		Description: desc,
		Params:      []Param{paramKeys},
		Mutates:     mutates,
		Run: func(s *Session, p Params) (Result, error) {
			keys, err := p.requireKeys()
			if err != nil {
				return Result{}, err
			}
			res, err := run(s, keys)
			if err != nil {
				return Result{}, err
			}
			return Result{Row: rowInfo(res), Diagnostics: res.Diagnostics}, nil
		},
	}
}

// indexedRowKeyword builds a keyword taking keys and a 1-based index.
func indexedRowKeyword(name, desc string, mutates bool, run func(s *Session, index int, keys []string) (Result, error)) Keyword {
	return Keyword{
		Name:        name,
		Description: desc,
		Params:      []Param{paramIndex, paramKeys},
		Mutates:     mutates,
		Run: func(s *Session, p Params) (Result, error) {
			keys, err := p.requireKeys()
			if err != nil {
				return Result{}, err
			}
			if !p.Has("index") {
				return Result{}, fmt.Errorf("parameter \"index\" is required")
			}
			index, err := p.Int("index", 0)
			if err != nil {
				return Result{}, err
			}
			return run(s, index, keys)
		},
	}
}

func init() {
	register(
		rowKeyword("find-row",
			"Locate the row whose fields, read left to right, hold the given values. Reports the anchor field and any ambiguity.",
			false, func(s *Session, keys []string) (*operator.Resolution, error) { return s.Table.FindRow(keys) }),
		rowKeyword("select-row", "Select a row by clicking its first matching field.",
			true, func(s *Session, keys []string) (*operator.Resolution, error) { return s.Table.SelectRow(keys) }),
		rowKeyword("double-click-row", "Double-click the first matching field of a row.",
			true, func(s *Session, keys []string) (*operator.Resolution, error) { return s.Table.DoubleClickRow(keys) }),
		Keyword{
			Name:        "row-exists",
			Description: "Report whether a row with the given column values exists. Never fails for a missing row.",
			Params:      []Param{paramKeys},
			Run: func(s *Session, p Params) (Result, error) {
				keys, err := p.requireKeys()
				if err != nil {
					return Result{}, err
				}
				ok, err := s.Table.RowExists(keys)
				return Result{Exists: boolPtr(ok)}, err
			},
		},
		Keyword{
			Name:        "get-row-field",
			Description: "Get the value of the named field on a row.",
			Params:      []Param{paramName, paramKeys},
			Run: func(s *Session, p Params) (Result, error) {
				keys, err := p.requireKeys()
				if err != nil {
					return Result{}, err
				}
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				value, err := s.Table.GetRowField(name, keys)
				return Result{Value: value}, err
			},
		},
		Keyword{
			Name:        "set-row-field",
			Description: "Set the named field on a row.",
			Params:      []Param{paramName, paramValue, paramKeys},
			Mutates:     true,
			Run: func(s *Session, p Params) (Result, error) {
				keys, err := p.requireKeys()
				if err != nil {
					return Result{}, err
				}
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				value, err := p.requireString("value")
				if err != nil {
					return Result{}, err
				}
				return Result{Value: value}, s.Table.SetRowField(name, value, keys)
			},
		},
		indexedRowKeyword("select-row-checkbox", "Check the Nth checkbox (1-based, left to right) on a row.",
			true, func(s *Session, index int, keys []string) (Result, error) {
				return Result{Checked: boolPtr(true)}, s.Table.SelectRowCheckbox(index, keys)
			}),
		indexedRowKeyword("deselect-row-checkbox", "Uncheck the Nth checkbox (1-based, left to right) on a row.",
			true, func(s *Session, index int, keys []string) (Result, error) {
				return Result{Checked: boolPtr(false)}, s.Table.DeselectRowCheckbox(index, keys)
			}),
		indexedRowKeyword("row-checkbox-state", "Report whether the Nth checkbox (1-based, left to right) on a row is checked.",
			false, func(s *Session, index int, keys []string) (Result, error) {
				on, err := s.Table.RowCheckboxState(index, keys)
				return Result{Checked: boolPtr(on)}, err
			}),
		indexedRowKeyword("select-row-button", "Push the Nth button (1-based, left to right) on a row.",
			true, func(s *Session, index int, keys []string) (Result, error) {
				return Result{}, s.Table.SelectRowButton(index, keys)
			}),
		Keyword{
			Name: "set-field-at-index",
			Description: "Set the Nth (1-based) field of a column. Rows are counted in component order, not by position on " +
				"screen; prefer set-row-field when the row can be identified by its values.",
			Params: []Param{
				{Name: "column", Type: TypeString, Required: true, Description: "Column field name"},
				{Name: "row", Type: TypeNumber, Required: true, Description: "1-based row index"},
				paramValue,
			},
			Mutates: true,
			Run: func(s *Session, p Params) (Result, error) {
				column, err := p.requireString("column")
				if err != nil {
					return Result{}, err
				}
				value, err := p.requireString("value")
				if err != nil {
					return Result{}, err
				}
				row, err := p.Int("row", 0)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: value}, s.Table.SetFieldAtIndex(column, row, value)
			},
		},
	)
}
