package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
)

const ordersYAML = `
form: orders
elements:
  - y: window
    n: Orders
    b: [0, 0, 800, 600]
    c:
      - y: label
        n: "Customer:"
        b: [10, 10, 70, 20]
      - y: oracle.forms.ui.VTextField
        n: customer
        b: [90, 10, 150, 20]
      - y: text
        t: jeff
        b: [10, 100, 100, 20]
      - y: text
        t: sales
        b: [120, 100, 100, 20]
      - y: checkwrap
        b: [230, 100, 20, 20]
        c:
          - y: check
            b: [230, 100, 20, 20]
      - y: text
        n: hidden
        z: false
        b: [0, 0, 0, 0]
      - y: push
        n: Save
        open: Confirm
        b: [10, 500, 80, 24]
      - y: statusbar
        b: [0, 580, 800, 20]
        c:
          - y: label
            t: Ready
            b: [0, 580, 200, 20]
  - y: window
    n: Confirm
    z: false
    b: [200, 200, 300, 120]
    c:
      - y: push
        n: OK
        close: true
        b: [210, 280, 60, 24]
`

func loadOrders(t *testing.T) *Form {
	t.Helper()
	f, err := Parse([]byte(ordersYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return f
}

func child(t *testing.T, h platform.Handle, path ...int) platform.Handle {
	t.Helper()
	for _, i := range path {
		kids := h.Children()
		if i >= len(kids) {
			t.Fatalf("child %d of %s#%d: only %d children", i, h.Type(), h.ID(), len(kids))
		}
		h = kids[i]
	}
	return h
}

func TestParseAssignsIDsAndMapsTypes(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	field := child(t, root, 0, 1)
	if field.Type() != model.TypeText {
		t.Errorf("Type() = %q, want %q", field.Type(), model.TypeText)
	}
	if field.ID() != 3 {
		t.Errorf("ID() = %d, want 3", field.ID())
	}
}

func TestParseJSON(t *testing.T) {
	f, err := Parse([]byte(`{"form":"x","elements":[{"y":"window","n":"W","b":[0,0,10,10]}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, _ := f.Root()
	if got := len(root.Children()); got != 1 {
		t.Fatalf("got %d windows, want 1", got)
	}
}

func TestRootSkipsClosedWindows(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	kids := root.Children()
	if len(kids) != 1 || kids[0].Name() != "Orders" {
		t.Fatalf("root children = %d, want only Orders", len(kids))
	}
}

func TestBoundsUnrealized(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	hidden := child(t, root, 0, 5)
	if _, err := hidden.Bounds(); err == nil {
		t.Error("Bounds() on unrealized component should fail")
	}
	if _, err := root.Bounds(); err == nil {
		t.Error("Bounds() on root should fail")
	}
	b, err := child(t, root, 0, 2).Bounds()
	if err != nil {
		t.Fatalf("Bounds() error: %v", err)
	}
	if b != (platform.Bounds{X: 10, Y: 100, Width: 100, Height: 20}) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestSetTextNeedsFocus(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	field := child(t, root, 0, 1)

	if _, err := platform.Invoke(field, platform.OpSetText, "ignored"); err != nil {
		t.Fatalf("setText error: %v", err)
	}
	if got, _ := platform.GetString(field, platform.OpGetText); got != "" {
		t.Errorf("text without focus = %q, want empty", got)
	}

	for _, step := range []struct {
		op   string
		args []interface{}
	}{
		{platform.OpFocusGained, nil},
		{platform.OpSetText, []interface{}{"acme"}},
		{platform.OpFocusLost, nil},
	} {
		if _, err := platform.Invoke(field, step.op, step.args...); err != nil {
			t.Fatalf("%s error: %v", step.op, err)
		}
	}
	if got, _ := platform.GetString(field, platform.OpGetText); got != "acme" {
		t.Errorf("text = %q, want %q", got, "acme")
	}
}

func TestClickOpensAndClosesWindows(t *testing.T) {
	f := loadOrders(t)
	ctx, _ := f.Context()
	if ctx != "Orders" {
		t.Fatalf("Context() = %q, want Orders", ctx)
	}

	root, _ := f.Root()
	save := child(t, root, 0, 6)
	if _, err := platform.Invoke(save, platform.OpClick); err != nil {
		t.Fatalf("click error: %v", err)
	}
	if ctx, _ = f.Context(); ctx != "Confirm" {
		t.Fatalf("Context() after Save = %q, want Confirm", ctx)
	}

	ok := child(t, root, 1, 0)
	if ok.Name() != "OK" {
		t.Fatalf("got %q, want OK", ok.Name())
	}
	if _, err := platform.Invoke(ok, platform.OpClick); err != nil {
		t.Fatalf("click error: %v", err)
	}
	if ctx, _ = f.Context(); ctx != "Orders" {
		t.Errorf("Context() after OK = %q, want Orders", ctx)
	}
}

func TestCheckboxInner(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	wrap := child(t, root, 0, 4)

	if _, err := platform.Invoke(wrap, platform.OpIsChecked); err == nil {
		t.Error("isChecked on the wrapper should fail")
	}
	inner, err := platform.GetHandle(wrap, platform.OpGetInner)
	if err != nil {
		t.Fatalf("getInner error: %v", err)
	}
	if _, err := platform.Invoke(inner, platform.OpSetChecked, "true"); err != nil {
		t.Fatalf("setChecked error: %v", err)
	}
	if on, _ := platform.GetBool(inner, platform.OpIsChecked); !on {
		t.Error("isChecked = false after setChecked(true)")
	}
	if _, err := platform.Invoke(wrap, platform.OpClick); err != nil {
		t.Fatalf("click error: %v", err)
	}
	if on, _ := platform.GetBool(inner, platform.OpIsChecked); on {
		t.Error("isChecked = true after clicking the wrapper")
	}
}

func TestStatusBarItems(t *testing.T) {
	f := loadOrders(t)
	root, _ := f.Root()
	items, err := platform.GetArray(child(t, root, 0, 7), platform.OpGetItems)
	if err != nil {
		t.Fatalf("getItems error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if got, _ := platform.GetString(items[0], platform.OpGetText); got != "Ready" {
		t.Errorf("item text = %q, want Ready", got)
	}
}

func TestReadElements(t *testing.T) {
	f := loadOrders(t)
	elements, err := f.ReadElements(platform.ReadOptions{Types: []string{"textfield"}})
	if err != nil {
		t.Fatalf("ReadElements() error: %v", err)
	}
	if len(elements) != 4 {
		t.Errorf("got %d text fields, want 4", len(elements))
	}

	elements, _ = f.ReadElements(platform.ReadOptions{Text: "sales"})
	flat := model.FlattenElements(elements)
	if len(flat) != 2 {
		t.Errorf("text filter kept %d elements, want window + field", len(flat))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"form.yaml", "form.json"} {
		t.Run(name, func(t *testing.T) {
			f := loadOrders(t)
			path := filepath.Join(t.TempDir(), name)
			if err := f.Save(path); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			root, _ := loaded.Root()
			if got := child(t, root, 0, 2); got.Type() != model.TypeText {
				t.Errorf("reloaded type = %q", got.Type())
			}
		})
	}
}

func TestRegisteredBinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.yaml")
	if err := os.WriteFile(path, []byte(ordersYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := platform.NewProvider(BindingName, path)
	if err != nil {
		t.Fatalf("NewProvider() error: %v", err)
	}
	if p.Tree == nil || p.Context == nil || p.Saver == nil {
		t.Error("provider is missing a backend")
	}
	if _, err := platform.NewProvider(BindingName, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("NewProvider() with a missing file should fail")
	}
}
