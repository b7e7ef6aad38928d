package platform

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ContextFunc reports the identity of the window or context that currently
// owns user attention. Watchers sample it to detect transitions.
type ContextFunc func() (string, error)

// Provider bundles the backends of one toolkit binding.
type Provider struct {
	Name    string // form or application name, for display
	Reader  Reader
	Tree    Tree
	Context ContextFunc
	Saver   Saver // nil when the binding cannot persist mutations
}

// NewProviderFunc opens a binding against a source (a file path, an address,
// or whatever the binding understands).
type NewProviderFunc func(source string) (*Provider, error)

var (
	bindingsMu sync.RWMutex
	bindings   = map[string]NewProviderFunc{}
)

// RegisterBinding makes a toolkit binding available by name. Binding
// packages call it from init().
func RegisterBinding(name string, fn NewProviderFunc) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	if fn == nil {
		panic("platform: RegisterBinding with nil func for " + name)
	}
	bindings[name] = fn
}

// Bindings returns the registered binding names, sorted.
func Bindings() []string {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider opens the named binding against source.
func NewProvider(binding, source string) (*Provider, error) {
	bindingsMu.RLock()
	fn, ok := bindings[binding]
	bindingsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown binding %q (registered: %s)", binding, strings.Join(Bindings(), ", "))
	}
	return fn(source)
}
