package keyword

import (
	"fmt"

	"github.com/spf13/cast"
)

// Params are the raw arguments of one keyword call, as decoded from YAML
// steps, MCP tool arguments or command-line flags. Values are coerced on
// access, so "3", 3 and 3.0 all read as the integer 3.
type Params map[string]interface{}

// String returns the string value of key, or def when absent.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}

// Int returns the integer value of key, or def when absent. A value that
// cannot be read as an integer is an error.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %v is not an integer", key, v)
	}
	return n, nil
}

// Bool returns the boolean value of key, or def when absent. A value that
// cannot be read as a boolean is an error.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("parameter %q: %v is not a boolean", key, v)
	}
	return b, nil
}

// Strings returns a list value. A scalar is a one-element list and is never
// split, so a key value such as "Smith, John" stays whole; several values
// must be passed as an array.
func (p Params) Strings(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return []string{p.String(key, "")}
	}
	return list
}

// Has reports whether key was given.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// requireString returns the value of a mandatory string parameter.
func (p Params) requireString(key string) (string, error) {
	if !p.Has(key) {
		return "", fmt.Errorf("parameter %q is required", key)
	}
	return p.String(key, ""), nil
}

// requireKeys returns the mandatory row key values.
func (p Params) requireKeys() ([]string, error) {
	keys := p.Strings("keys")
	if len(keys) == 0 {
		return nil, fmt.Errorf("parameter \"keys\" is required: the row's column values, left to right")
	}
	return keys, nil
}
