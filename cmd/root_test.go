package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
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
      - {y: text, n: name, t: jeff, b: [10, 100, 100, 20]}
      - {y: text, n: dept, t: sales, b: [110, 100, 100, 20]}
      - {y: checkwrap, b: [220, 100, 20, 20], c: [{y: check, b: [220, 100, 20, 20]}]}
      - {y: push, n: Edit, b: [250, 100, 40, 20]}
      - {y: text, n: name, t: jeff, b: [10, 130, 100, 20]}
      - {y: text, n: dept, t: accounting, b: [110, 130, 100, 20]}
      - {y: checkwrap, b: [220, 130, 20, 20], c: [{y: check, k: true, b: [220, 130, 20, 20]}]}
      - {y: push, n: Edit, b: [250, 130, 40, 20]}
      - {y: push, n: Save, open: Confirm, b: [10, 500, 80, 24]}
  - y: window
    n: Confirm
    z: false
    b: [200, 200, 300, 120]
    c:
      - {y: push, n: OK, close: true, b: [210, 280, 60, 24]}
`

// writeOrders writes the fixture form to a temp file and returns its path.
func writeOrders(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.yaml")
	if err := os.WriteFile(path, []byte(ordersYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// resetFlags restores every flag of c and its subcommands to its default,
// since the command tree is shared between test runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	c.SilenceErrors = false
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the CLI with args and returns its output.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"read", "row", "field", "push", "do", "serve", "wait", "keywords"}
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	path := writeOrders(t)
	if _, err := executeCommand(t, "", "read", "--snapshot", path, "--format", "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRootCommand_MissingSnapshot(t *testing.T) {
	_, err := executeCommand(t, "", "field", "get", "--name", "customer")
	if err == nil || !strings.Contains(err.Error(), "--snapshot") {
		t.Errorf("err = %v, want missing --snapshot", err)
	}
}

func TestRootCommand_ConfigOverride(t *testing.T) {
	path := writeOrders(t)
	if _, err := executeCommand(t, "", "read", "--snapshot", path, "--set", "geometry.gap_tolerance=20"); err != nil {
		t.Fatalf("valid override rejected: %v", err)
	}
	if _, err := executeCommand(t, "", "read", "--snapshot", path, "--set", "geometry.gap_tolerance"); err == nil {
		t.Error("expected error for override without value")
	}
	if _, err := executeCommand(t, "", "read", "--snapshot", path, "--set", "no.such_key=1"); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := writeOrders(t)
	cfgPath := filepath.Join(t.TempDir(), "forms-cli.yaml")
	if err := os.WriteFile(cfgPath, []byte("geometry:\n  gap_tolerance: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := executeCommand(t, "", "read", "--snapshot", path, "--config", cfgPath); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}

func TestKeywordsCommand(t *testing.T) {
	out, err := executeCommand(t, "", "keywords")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"find-row", "set-field", "select-row-checkbox", "sleep"} {
		if !strings.Contains(out, "name: "+name) {
			t.Errorf("keywords output missing %s", name)
		}
	}
}
