package operator

import (
	"testing"
	"time"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/platform/snapshot"
	"github.com/mj1618/forms-cli/internal/search"
	"github.com/mj1618/forms-cli/internal/watch"
)

const ordersYAML = `
form: orders
elements:
  - y: window
    n: Orders
    b: [0, 0, 800, 600]
    c:
      - {y: label, n: "Customer:", b: [10, 10, 70, 20]}
      - {y: text, n: customer, t: acme, b: [90, 10, 150, 20]}
      - {y: label, n: "Notes:", b: [10, 40, 50, 20]}
      - {y: textarea, b: [70, 40, 200, 20]}
      - y: panel
        b: [0, 90, 800, 100]
        c:
          - {y: text, n: name, t: jeff, b: [10, 100, 100, 20]}
          - {y: text, n: dept, t: sales, b: [110, 100, 100, 20]}
          - {y: text, n: amount, t: "100", b: [210, 100, 80, 20]}
          - {y: checkwrap, n: active, b: [300, 100, 20, 20], c: [{y: check, k: true, b: [300, 100, 20, 20]}]}
          - {y: checkwrap, n: flag, b: [330, 100, 20, 20], c: [{y: check, b: [330, 100, 20, 20]}]}
          - {y: push, n: Edit, b: [360, 100, 60, 20]}
          - {y: push, n: Del, b: [430, 100, 60, 20]}

          - {y: text, n: name, t: jeff, b: [10, 130, 100, 20]}
          - {y: text, n: dept, t: accounting, b: [110, 130, 100, 20]}
          - {y: text, n: amount, t: "200", b: [210, 130, 80, 20]}
          - {y: checkwrap, n: active, b: [300, 130, 20, 20], c: [{y: check, b: [300, 130, 20, 20]}]}
          - {y: checkwrap, n: flag, b: [330, 130, 20, 20], c: [{y: check, b: [330, 130, 20, 20]}]}
          - {y: push, n: Edit, b: [360, 130, 60, 20]}
          - {y: push, n: Del, b: [430, 130, 60, 20]}

          - {y: text, n: name, t: anne, b: [10, 160, 100, 20]}
          - {y: text, n: dept, t: sales, b: [110, 160, 100, 20]}
          - {y: text, n: amount, t: "300", b: [210, 160, 80, 20]}
          - {y: checkwrap, n: active, b: [300, 160, 20, 20], c: [{y: check, b: [300, 160, 20, 20]}]}
          - {y: checkwrap, n: flag, b: [330, 160, 20, 20], c: [{y: check, b: [330, 160, 20, 20]}]}
          - {y: push, n: Edit, b: [360, 160, 60, 20]}
          - {y: push, n: Del, b: [430, 160, 60, 20]}
      - {y: push, n: Save, open: Confirm, b: [10, 500, 80, 24]}
  - y: window
    n: Confirm
    z: false
    b: [200, 200, 300, 120]
    c:
      - {y: push, n: OK, close: true, b: [210, 280, 60, 24]}
`

func loadOrders(t *testing.T) *snapshot.Form {
	t.Helper()
	f, err := snapshot.Parse([]byte(ordersYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return f
}

func newSearcher() search.Searcher { return search.New() }

func snapshotOf(elements []model.Element) *snapshot.Form {
	return snapshot.New("", elements)
}

func newTable(t *testing.T) (*Table, *snapshot.Form) {
	t.Helper()
	f := loadOrders(t)
	return NewTable(f, search.New()), f
}

func newField(t *testing.T) (*Field, *snapshot.Form) {
	t.Helper()
	f := loadOrders(t)
	newWatcher := func() watch.Watcher { return watch.NewPoller(f.Context, time.Millisecond) }
	return NewField(f, search.New(), newWatcher), f
}

// selected returns the element last clicked.
func selected(t *testing.T, f *snapshot.Form) *model.FlatElement {
	t.Helper()
	elements, err := f.ReadElements(platform.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadElements() error: %v", err)
	}
	for _, fe := range model.FlattenElements(elements) {
		if fe.Selected {
			fe := fe
			return &fe
		}
	}
	return nil
}
