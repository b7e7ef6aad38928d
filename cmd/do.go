package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/spf13/cobra"
)

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Run a sequence of keywords",
	Long: `Run a sequence of keywords from a YAML list on stdin.

Each step is a keyword name with its parameters as a map. Steps execute
sequentially against the same form, and by default execution stops on the
first error. Run "forms-cli keywords" for the keyword list.

Example:
  forms-cli do --snapshot orders.yaml --write <<'EOF'
  - set-field: { name: customer, value: acme }
  - select-row: { keys: [jeff, accounting] }
  - select-row-checkbox: { keys: [jeff, accounting], index: 1 }
  - push-button: { name: Save }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("no steps provided on stdin, pipe a YAML list of keywords")
	}
	steps, err := keyword.ParseSteps(data)
	if err != nil {
		return err
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	result := session.RunSteps(steps, stopOnError)
	if result.Completed > 0 {
		if err := writeBack(cmd, session); err != nil {
			return err
		}
	}
	if err := output.Fprint(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.OK {
		cmd.SilenceErrors = true
		return errReported
	}
	return nil
}
