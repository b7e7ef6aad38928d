// Package operator resolves symbolic requests (a field by name, a row by its
// column values, the Nth checkbox on a row) against the live component tree
// and performs the requested reads and writes.
//
// Every call re-walks the tree and re-reads bounding boxes. Nothing is cached
// between calls.
package operator

import (
	"fmt"

	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/search"
	"github.com/mj1618/forms-cli/internal/watch"
)

// WatcherFunc creates a fresh watcher for one action.
type WatcherFunc func() watch.Watcher

// scope is the part shared by all operators: the tree and the searcher.
type scope struct {
	tree     platform.Tree
	searcher search.Searcher
}

func (c scope) root() (platform.Handle, error) {
	if c.tree == nil {
		return nil, fmt.Errorf("no component tree available")
	}
	return c.tree.Root()
}

// findAll returns every handle matching p, in traversal order.
func (c scope) findAll(p search.Predicate) ([]platform.Handle, error) {
	root, err := c.root()
	if err != nil {
		return nil, err
	}
	return c.searcher.Search(root, p)
}

// findFirst returns the first handle matching p, or a NoMatchError naming
// what and identifier.
func (c scope) findFirst(p search.Predicate, what, identifier string) (platform.Handle, error) {
	found, err := c.findAll(p)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, &NoMatchError{What: what, Identifier: identifier}
	}
	return found[0], nil
}

// boxes reads the current bounds of every handle, keyed by ID.
func boxes(handles ...[]platform.Handle) (map[int]platform.Bounds, error) {
	out := make(map[int]platform.Bounds)
	for _, hs := range handles {
		for _, h := range hs {
			if _, ok := out[h.ID()]; ok {
				continue
			}
			b, err := platform.BoundsOf(h)
			if err != nil {
				return nil, err
			}
			out[h.ID()] = b
		}
	}
	return out, nil
}

// runWatched runs action between Start and Stop of a watcher from newWatcher
// and reports whether a transition was observed.
func runWatched(newWatcher WatcherFunc, detect bool, action func() error) (bool, error) {
	if !detect || newWatcher == nil {
		return false, action()
	}
	w := newWatcher()
	w.Start()
	err := action()
	changed := w.Stop()
	return changed, err
}
