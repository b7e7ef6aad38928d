package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/operator"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/spf13/cobra"
)

// WaitResult is the output of a wait command.
type WaitResult struct {
	OK       bool   `yaml:"ok"                  json:"ok"`
	Action   string `yaml:"action"              json:"action"`
	Elapsed  string `yaml:"elapsed"             json:"elapsed"`
	Match    string `yaml:"match,omitempty"     json:"match,omitempty"`
	TimedOut bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

// waitCondition is what wait polls for. All set criteria must hold.
type waitCondition struct {
	Window string
	Field  string
	Row    []string
	Gone   bool
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a window, field or row to appear",
	Long: `Reopen the form until a condition is met or the timeout is reached. The form
is read afresh on every poll, so another process updating it is seen.`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("for-window", "", "Wait until this window is frontmost")
	waitCmd.Flags().String("for-field", "", "Wait for a text field with this name")
	waitCmd.Flags().StringSlice("for-row", nil, "Wait for a row with these column values")
	waitCmd.Flags().Bool("gone", false, "Invert: wait until the condition is NO LONGER true")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

func runWait(cmd *cobra.Command, args []string) error {
	var cond waitCondition
	cond.Window, _ = cmd.Flags().GetString("for-window")
	cond.Field, _ = cmd.Flags().GetString("for-field")
	cond.Row, _ = cmd.Flags().GetStringSlice("for-row")
	cond.Gone, _ = cmd.Flags().GetBool("gone")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	if cond.Window == "" && cond.Field == "" && len(cond.Row) == 0 {
		return fmt.Errorf("specify at least one condition: --for-window, --for-field, or --for-row")
	}

	timeout := time.Duration(timeoutSec) * time.Second
	interval := time.Duration(intervalMs) * time.Millisecond
	deadline := time.Now().Add(timeout)
	start := time.Now()

	for {
		session, err := openSession(cmd)
		if err == nil {
			var matched bool
			matched, err = checkWaitCondition(session, cond)
			if err == nil && matched != cond.Gone {
				return output.Fprint(cmd.OutOrStdout(), WaitResult{
					OK:      true,
					Action:  "wait",
					Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
					Match:   cond.String(),
				})
			}
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("timeout after %s (last error: %w)", timeout, err)
			}
			_ = output.Fprint(cmd.OutOrStdout(), WaitResult{
				Action:   "wait",
				Elapsed:  fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				Match:    cond.String(),
				TimedOut: true,
			})
			return fmt.Errorf("timed out waiting for condition: %s", cond)
		}
		time.Sleep(interval)
	}
}

// checkWaitCondition reports whether every criterion of cond holds.
func checkWaitCondition(session *keyword.Session, cond waitCondition) (bool, error) {
	if cond.Window != "" {
		if session.Provider.Context == nil {
			return false, fmt.Errorf("binding cannot report the frontmost window")
		}
		window, err := session.Provider.Context()
		if err != nil {
			return false, err
		}
		if window != cond.Window {
			return false, nil
		}
	}
	if cond.Field != "" {
		_, err := session.Field.Find(cond.Field)
		var noMatch *operator.NoMatchError
		if errors.As(err, &noMatch) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
	if len(cond.Row) > 0 {
		ok, err := session.Table.RowExists(cond.Row)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// String describes the condition for output.
func (c waitCondition) String() string {
	var parts []string
	if c.Window != "" {
		parts = append(parts, fmt.Sprintf("window=%q", c.Window))
	}
	if c.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%q", c.Field))
	}
	if len(c.Row) > 0 {
		parts = append(parts, fmt.Sprintf("row=%s", strings.Join(c.Row, ",")))
	}
	desc := strings.Join(parts, " ")
	if c.Gone {
		desc += " (gone)"
	}
	return desc
}
