package operator

import (
	"fmt"
	"strings"
)

// Error codes reported by the typed errors. Keyword results carry them so
// callers can branch without parsing messages.
const (
	CodeNoMatch                 = "no_match"
	CodeNoRowFound              = "no_row_found"
	CodeInsufficientRowElements = "insufficient_row_elements"
	CodeValueMismatch           = "value_mismatch"
)

// NoMatchError reports a search that found no component.
type NoMatchError struct {
	What       string // e.g. "text field", "label", "button"
	Identifier string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no %s found with name '%s'", e.What, e.Identifier)
}

// Code is the machine-readable error code.
func (e *NoMatchError) Code() string { return CodeNoMatch }

// NoRowFoundError reports a row resolution without a result: either no field
// holds the first key value, or no left-to-right chain of the key values
// exists.
type NoRowFoundError struct {
	Keys   []string
	Reason string
}

func (e *NoRowFoundError) Error() string {
	return fmt.Sprintf("no matching row found for [%s]: %s", strings.Join(e.Keys, ", "), e.Reason)
}

// Code is the machine-readable error code.
func (e *NoRowFoundError) Code() string { return CodeNoRowFound }

// InsufficientRowElementsError reports a 1-based row-relative index past the
// number of components of the requested kind on the row.
type InsufficientRowElementsError struct {
	Kind  string // "checkbox", "button", "row"
	Index int
	Found int
}

func (e *InsufficientRowElementsError) Error() string {
	return fmt.Sprintf("%s index %d requested, only found %d", e.Kind, e.Index, e.Found)
}

// Code is the machine-readable error code.
func (e *InsufficientRowElementsError) Code() string { return CodeInsufficientRowElements }

// ValueMismatchError reports a verification failure.
type ValueMismatchError struct {
	What     string
	Expected string
	Actual   string
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("%s value '%s' does not match '%s'", e.What, e.Actual, e.Expected)
}

// Code is the machine-readable error code.
func (e *ValueMismatchError) Code() string { return CodeValueMismatch }

// Coded is implemented by every typed error of this module.
type Coded interface {
	error
	Code() string
}
