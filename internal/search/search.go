// Package search walks a component tree depth-first and collects the handles
// that satisfy a predicate, in traversal order.
package search

import (
	"fmt"
	"strings"

	"github.com/mj1618/forms-cli/internal/geometry"
	"github.com/mj1618/forms-cli/internal/match"
	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
)

// DefaultSeparator is the label separator stripped from names before
// comparison.
const DefaultSeparator = ":"

// Searcher evaluates predicates against a live tree. The zero value uses no
// separator and zero tolerances; use New for the defaults.
type Searcher struct {
	Geometry  geometry.Comparator
	Separator string
}

// New returns a searcher with the default separator and tolerances.
func New() Searcher {
	return Searcher{Geometry: geometry.Default(), Separator: DefaultSeparator}
}

// Search returns every handle under root (root included) matching p, in
// depth-first preorder. Handles are not deduplicated. Errors reading a
// candidate's bounds or text abort the walk.
func (s Searcher) Search(root platform.Handle, p Predicate) ([]platform.Handle, error) {
	if root == nil {
		return nil, fmt.Errorf("search %s: nil root", p)
	}
	m, err := s.matcher(p)
	if err != nil {
		return nil, err
	}
	var out []platform.Handle
	if err := walk(root, func(h platform.Handle) error {
		ok, err := m(h)
		if ok {
			out = append(out, h)
		}
		return err
	}); err != nil {
		return nil, err
	}

	if bt, ok := p.(ByType); ok && bt.Index >= 0 {
		if bt.Index >= len(out) {
			return nil, nil
		}
		return out[bt.Index : bt.Index+1], nil
	}
	return out, nil
}

// walk visits h and its descendants in preorder.
func walk(h platform.Handle, visit func(platform.Handle) error) error {
	if err := visit(h); err != nil {
		return err
	}
	for _, c := range h.Children() {
		if err := walk(c, visit); err != nil {
			return err
		}
	}
	return nil
}

func (s Searcher) matcher(p Predicate) (func(platform.Handle) (bool, error), error) {
	switch p := p.(type) {
	case ByType:
		types := typeSet(p.Types)
		return func(h platform.Handle) (bool, error) {
			return types[h.Type()], nil
		}, nil

	case ByName:
		types := typeSet(p.Types)
		name := s.StripSeparator(p.Name)
		return func(h platform.Handle) (bool, error) {
			return types[h.Type()] && s.StripSeparator(h.Name()) == name, nil
		}, nil

	case ByRow:
		if p.Anchor == nil {
			return nil, fmt.Errorf("search %s: nil anchor", p)
		}
		anchor, err := platform.BoundsOf(p.Anchor)
		if err != nil {
			return nil, err
		}
		types := typeSet(p.Types)
		name := s.StripSeparator(p.Name)
		return func(h platform.Handle) (bool, error) {
			if !types[h.Type()] || s.StripSeparator(h.Name()) != name {
				return false, nil
			}
			b, err := platform.BoundsOf(h)
			if err != nil {
				return false, err
			}
			return s.Geometry.Aligned(anchor, b), nil
		}, nil

	case ByValue:
		t := p.Types
		if len(t) == 0 {
			t = model.TextFieldTypes
		}
		types := typeSet(t)
		return func(h platform.Handle) (bool, error) {
			if !types[h.Type()] {
				return false, nil
			}
			text, err := platform.GetString(h, platform.OpGetText)
			if err != nil {
				return false, err
			}
			return match.Matches(text, p.Pattern), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown predicate %T", p)
}

// StripSeparator trims surrounding space and one trailing separator from a
// display name or identifier.
func (s Searcher) StripSeparator(name string) string {
	name = strings.TrimSpace(name)
	if s.Separator != "" {
		name = strings.TrimSpace(strings.TrimSuffix(name, s.Separator))
	}
	return name
}

func typeSet(types []string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range model.ExpandTypes(types) {
		set[t] = true
	}
	return set
}
