package platform

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Operation names understood by Invoke. A trailing "()" is accepted, so
// "getText()" and "getText" are equivalent.
const (
	OpGetText     = "getText"
	OpSetText     = "setText"
	OpGetItems    = "getItems"
	OpGetInner    = "getInner"
	OpFocusGained = "focusGained"
	OpFocusLost   = "focusLost"
	OpIsChecked   = "isChecked"
	OpSetChecked  = "setChecked"
	OpClick       = "click"
	OpGetName     = "getName"
	OpGetBounds   = "getBounds"
)

// Invoke runs the named operation on h and returns its result. The operation
// is dispatched to the capability interface the handle implements; arguments
// are coerced to the operation's parameter types. Operations with no result
// return nil.
func Invoke(h Handle, op string, args ...interface{}) (interface{}, error) {
	if h == nil {
		return nil, invocationError(nil, op, "nil handle", nil)
	}
	name := strings.TrimSuffix(strings.TrimSpace(op), "()")

	switch name {
	case OpGetName:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		return h.Name(), nil

	case OpGetBounds:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		return BoundsOf(h)

	case OpGetText:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		r, ok := h.(TextReadable)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		return wrap(h, name)(r.Text())

	case OpSetText:
		if err := wantArgs(h, name, args, 1); err != nil {
			return nil, err
		}
		w, ok := h.(TextWritable)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		text, err := cast.ToStringE(args[0])
		if err != nil {
			return nil, invocationError(h, name, fmt.Sprintf("argument 0: cannot use %T as string", args[0]), err)
		}
		return nil, wrapErr(h, name, w.SetText(text))

	case OpGetItems:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		c, ok := h.(ItemContainer)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		items, err := c.Items()
		if err != nil {
			return nil, invocationError(h, name, "call failed", err)
		}
		return items, nil

	case OpGetInner:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		c, ok := h.(Composite)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		inner, err := c.Inner()
		if err != nil {
			return nil, invocationError(h, name, "call failed", err)
		}
		return inner, nil

	case OpFocusGained, OpFocusLost:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		f, ok := h.(FocusDispatcher)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		return nil, wrapErr(h, name, f.DispatchFocus(name == OpFocusGained))

	case OpIsChecked:
		if err := wantArgs(h, name, args, 0); err != nil {
			return nil, err
		}
		t, ok := h.(Toggle)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		checked, err := t.Checked()
		if err != nil {
			return nil, invocationError(h, name, "call failed", err)
		}
		return checked, nil

	case OpSetChecked:
		if err := wantArgs(h, name, args, 1); err != nil {
			return nil, err
		}
		t, ok := h.(Toggle)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		checked, err := cast.ToBoolE(args[0])
		if err != nil {
			return nil, invocationError(h, name, fmt.Sprintf("argument 0: cannot use %T as bool", args[0]), err)
		}
		return nil, wrapErr(h, name, t.SetChecked(checked))

	case OpClick:
		if len(args) > 1 {
			return nil, invocationError(h, name, fmt.Sprintf("expected at most 1 argument, got %d", len(args)), nil)
		}
		c, ok := h.(Clicker)
		if !ok {
			return nil, invocationError(h, name, "operation not supported", nil)
		}
		count := 1
		if len(args) == 1 {
			n, err := cast.ToIntE(args[0])
			if err != nil || n < 1 {
				return nil, invocationError(h, name, fmt.Sprintf("argument 0: invalid click count %v", args[0]), err)
			}
			count = n
		}
		return nil, wrapErr(h, name, c.Click(count))
	}

	return nil, invocationError(h, name, "unknown operation", nil)
}

// GetString invokes op and returns its result as a string.
func GetString(h Handle, op string, args ...interface{}) (string, error) {
	v, err := Invoke(h, op, args...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", invocationError(h, op, fmt.Sprintf("returned %T, want string", v), nil)
	}
	return s, nil
}

// GetArray invokes op and returns its result as a handle list.
func GetArray(h Handle, op string, args ...interface{}) ([]Handle, error) {
	v, err := Invoke(h, op, args...)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]Handle)
	if !ok {
		return nil, invocationError(h, op, fmt.Sprintf("returned %T, want handle list", v), nil)
	}
	return items, nil
}

// GetBool invokes op and returns its result as a bool.
func GetBool(h Handle, op string, args ...interface{}) (bool, error) {
	v, err := Invoke(h, op, args...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, invocationError(h, op, fmt.Sprintf("returned %T, want bool", v), nil)
	}
	return b, nil
}

// GetHandle invokes op and returns its result as a derived handle.
func GetHandle(h Handle, op string, args ...interface{}) (Handle, error) {
	v, err := Invoke(h, op, args...)
	if err != nil {
		return nil, err
	}
	d, ok := v.(Handle)
	if !ok || d == nil {
		return nil, invocationError(h, op, fmt.Sprintf("returned %T, want handle", v), nil)
	}
	return d, nil
}

// BoundsOf reads the live screen box of h. A component that is not realized,
// or that reports an empty box, is an error: a zero box would silently corrupt
// alignment and adjacency comparisons.
func BoundsOf(h Handle) (Bounds, error) {
	b, err := h.Bounds()
	if err != nil {
		return Bounds{}, invocationError(h, OpGetBounds, "bounds not readable", err)
	}
	if b.IsZero() {
		return Bounds{}, invocationError(h, OpGetBounds, "component has an empty box (not realized?)", nil)
	}
	return b, nil
}

func wantArgs(h Handle, op string, args []interface{}, n int) error {
	if len(args) != n {
		return invocationError(h, op, fmt.Sprintf("expected %d argument(s), got %d", n, len(args)), nil)
	}
	return nil
}

func wrap(h Handle, op string) func(string, error) (interface{}, error) {
	return func(s string, err error) (interface{}, error) {
		if err != nil {
			return nil, invocationError(h, op, "call failed", err)
		}
		return s, nil
	}
}

func wrapErr(h Handle, op string, err error) error {
	if err != nil {
		return invocationError(h, op, "call failed", err)
	}
	return nil
}
