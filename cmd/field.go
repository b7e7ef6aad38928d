package cmd

import (
	"fmt"

	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/spf13/cobra"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Read and write text fields",
	Long: `Operate on text fields found by name, by the label to their left, by value,
or by column and row index.

Examples:
  forms-cli field get --name customer --snapshot orders.yaml
  forms-cli field set --name customer --value acme --write
  forms-cli field verify --name customer --pattern 'ac*'
  forms-cli field next-to-label --label 'Customer:' --value acme --write`,
}

var fieldGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a text field's value",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		return runKeyword(cmd, "get-field", keyword.Params{"name": name})
	},
}

var fieldSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a text field's value",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		value, _ := cmd.Flags().GetString("value")
		return runKeyword(cmd, "set-field", keyword.Params{"name": name, "value": value})
	},
}

var fieldVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a text field's value against a wildcard pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		pattern, _ := cmd.Flags().GetString("pattern")
		return runKeyword(cmd, "verify-field", keyword.Params{"name": name, "pattern": pattern})
	},
}

var fieldFindCmd = &cobra.Command{
	Use:   "find",
	Short: "List the names of text fields whose value matches a pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")
		return runKeyword(cmd, "find-text-fields", keyword.Params{"pattern": pattern})
	},
}

var fieldSetAtIndexCmd = &cobra.Command{
	Use:   "set-at-index",
	Short: "Set the Nth field of a column",
	Long: `Set the Nth (1-based) field named --column, counting in the order the form
lists its components. Prefer "row set-field" when rows can be told apart by
their values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		column, _ := cmd.Flags().GetString("column")
		row, _ := cmd.Flags().GetInt("row")
		value, _ := cmd.Flags().GetString("value")
		return runKeyword(cmd, "set-field-at-index", keyword.Params{"column": column, "row": row, "value": value})
	},
}

var fieldNextToLabelCmd = &cobra.Command{
	Use:   "next-to-label",
	Short: "Get or set the text field to the right of a label",
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("label")
		if cmd.Flags().Changed("value") {
			value, _ := cmd.Flags().GetString("value")
			return runKeyword(cmd, "set-field-next-to-label", keyword.Params{"label": label, "value": value})
		}
		return runKeyword(cmd, "get-field-next-to-label", keyword.Params{"label": label})
	},
}

var fieldClickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click a text field, reporting whether a window opened or closed",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		detect, _ := cmd.Flags().GetBool("detect-window-change")
		return runKeyword(cmd, "click-text-field", keyword.Params{"name": name, "detect-window-change": detect})
	},
}

func init() {
	rootCmd.AddCommand(fieldCmd)
	for _, c := range []*cobra.Command{fieldGetCmd, fieldSetCmd, fieldVerifyCmd, fieldFindCmd,
		fieldSetAtIndexCmd, fieldNextToLabelCmd, fieldClickCmd} {
		fieldCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{fieldGetCmd, fieldSetCmd, fieldVerifyCmd, fieldClickCmd} {
		c.Flags().String("name", "", "Field name (a trailing ':' is ignored)")
		_ = c.MarkFlagRequired("name")
	}
	fieldSetCmd.Flags().String("value", "", "Value to set")
	fieldVerifyCmd.Flags().String("pattern", "", "Expected value; * and ? are wildcards")
	fieldFindCmd.Flags().String("pattern", "", "Value pattern; * and ? are wildcards")
	_ = fieldFindCmd.MarkFlagRequired("pattern")
	fieldSetAtIndexCmd.Flags().String("column", "", "Column field name")
	fieldSetAtIndexCmd.Flags().Int("row", 1, "1-based row index")
	fieldSetAtIndexCmd.Flags().String("value", "", "Value to set")
	_ = fieldSetAtIndexCmd.MarkFlagRequired("column")
	fieldNextToLabelCmd.Flags().String("label", "", "Label text (a trailing ':' is ignored)")
	fieldNextToLabelCmd.Flags().String("value", "", "Set the field to this value instead of reading it")
	_ = fieldNextToLabelCmd.MarkFlagRequired("label")
	fieldClickCmd.Flags().Bool("detect-window-change", true, "Report whether the click opened or closed a window")
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Press a button",
	Long: `Press the button with the given name. By default the result reports whether
pressing it opened or closed a window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		detect, _ := cmd.Flags().GetBool("detect-window-change")
		return runKeyword(cmd, "push-button", keyword.Params{"name": name, "detect-window-change": detect})
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().String("name", "", "Button name")
	pushCmd.Flags().Bool("detect-window-change", true, "Report whether pressing opened or closed a window")
}
