package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/platform/snapshot"
)

func TestRowFind(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "find", "--snapshot", path, "--keys", "jeff,accounting")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ok: true") || !strings.Contains(out, "anchor: 9") {
		t.Errorf("row find output = %q", out)
	}
}

func TestRowFindAmbiguous(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "find", "--snapshot", path, "--keys", "jeff")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Multiple rows found (2)") {
		t.Errorf("expected ambiguity diagnostic, got %q", out)
	}
}

func TestRowFindMissing(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "find", "--snapshot", path, "--keys", "anne")
	if err == nil {
		t.Fatal("expected non-zero exit for missing row")
	}
	if !strings.Contains(out, "code: no_row_found") {
		t.Errorf("output = %q, want no_row_found code", out)
	}
}

func TestRowExists(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "exists", "--snapshot", path, "--keys", "anne")
	if err != nil {
		t.Fatalf("row exists must not fail for a missing row: %v", err)
	}
	if !strings.Contains(out, "exists: false") {
		t.Errorf("output = %q", out)
	}
}

func TestRowRequiresKeys(t *testing.T) {
	path := writeOrders(t)
	if _, err := executeCommand(t, "", "row", "find", "--snapshot", path); err == nil {
		t.Error("expected error without --keys")
	}
}

func TestRowSetFieldWrite(t *testing.T) {
	path := writeOrders(t)
	if _, err := executeCommand(t, "", "row", "set-field", "--snapshot", path, "--write",
		"--keys", "jeff,sales", "--name", "dept", "--value", "legal"); err != nil {
		t.Fatal(err)
	}
	f, err := snapshot.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s := keyword.NewSession(f.Provider(), nil)
	if ok, _ := s.Table.RowExists([]string{"jeff", "legal"}); !ok {
		t.Error("set-field was not written back")
	}
}

func TestRowSetFieldWithoutWrite(t *testing.T) {
	path := writeOrders(t)
	if _, err := executeCommand(t, "", "row", "set-field", "--snapshot", path,
		"--keys", "jeff,sales", "--name", "dept", "--value", "legal"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ordersYAML {
		t.Error("snapshot changed without --write")
	}
}

func TestRowCheckbox(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "checkbox", "--snapshot", path, "--keys", "jeff,accounting")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "checked: true") {
		t.Errorf("state output = %q", out)
	}

	if _, err := executeCommand(t, "", "row", "checkbox", "--snapshot", path, "--write",
		"--keys", "jeff,sales", "--check"); err != nil {
		t.Fatal(err)
	}
	out, err = executeCommand(t, "", "row", "checkbox", "--snapshot", path, "--keys", "jeff,sales")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "checked: true") {
		t.Errorf("checkbox not checked after --check: %q", out)
	}

	if _, err := executeCommand(t, "", "row", "checkbox", "--snapshot", path,
		"--keys", "jeff", "--check", "--uncheck"); err == nil {
		t.Error("expected error for --check with --uncheck")
	}
}

func TestRowCheckboxIndexOutOfRange(t *testing.T) {
	path := writeOrders(t)
	out, err := executeCommand(t, "", "row", "checkbox", "--snapshot", path, "--keys", "jeff,sales", "--index", "3")
	if err == nil {
		t.Fatal("expected failure for missing checkbox")
	}
	if !strings.Contains(out, "code: insufficient_row_elements") {
		t.Errorf("output = %q", out)
	}
}

func TestRowDraw(t *testing.T) {
	path := writeOrders(t)
	pngPath := filepath.Join(t.TempDir(), "row.png")
	out, err := executeCommand(t, "", "row", "draw", "--snapshot", path, "--keys", "jeff", "--out", pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, pngPath) {
		t.Errorf("output = %q, want the PNG path", out)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Error("empty image")
	}
}
