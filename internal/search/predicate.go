package search

import (
	"fmt"
	"strings"

	"github.com/mj1618/forms-cli/internal/platform"
)

// Predicate selects handles during a tree walk. The set of predicates is
// closed: ByType, ByName, ByRow and ByValue.
type Predicate interface {
	fmt.Stringer
	isPredicate()
}

// ByType matches handles whose type is in Types. Index -1 matches every such
// handle; Index N >= 0 matches only the Nth one in traversal order.
type ByType struct {
	Index int
	Types []string
}

// ByName matches handles of Types whose display name, with the label
// separator stripped, equals Name.
type ByName struct {
	Name  string
	Types []string
}

// ByRow is ByName restricted to handles on the same visual row as Anchor.
type ByRow struct {
	Anchor platform.Handle
	Name   string
	Types  []string
}

// ByValue matches handles of Types whose current text matches the wildcard
// Pattern. Empty Types means every text field type.
type ByValue struct {
	Pattern string
	Types   []string
}

func (ByType) isPredicate()  {}
func (ByName) isPredicate()  {}
func (ByRow) isPredicate()   {}
func (ByValue) isPredicate() {}

func (p ByType) String() string {
	if p.Index < 0 {
		return fmt.Sprintf("type in [%s]", strings.Join(p.Types, ","))
	}
	return fmt.Sprintf("type in [%s] at index %d", strings.Join(p.Types, ","), p.Index)
}

func (p ByName) String() string {
	return fmt.Sprintf("name %q, type in [%s]", p.Name, strings.Join(p.Types, ","))
}

func (p ByRow) String() string {
	anchor := 0
	if p.Anchor != nil {
		anchor = p.Anchor.ID()
	}
	return fmt.Sprintf("name %q on row of #%d, type in [%s]", p.Name, anchor, strings.Join(p.Types, ","))
}

func (p ByValue) String() string {
	return fmt.Sprintf("value %q, type in [%s]", p.Pattern, strings.Join(p.Types, ","))
}
