package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/render"
	"github.com/spf13/cobra"
)

var rowCmd = &cobra.Command{
	Use:   "row",
	Short: "Find and operate on table rows",
	Long: `Locate a table row by its column values, read left to right, and operate on
it. Keys may contain * and ? wildcards. When several rows match, the first in
traversal order is used and the result carries a diagnostic.

Examples:
  forms-cli row find --keys jeff,accounting --snapshot orders.yaml
  forms-cli row set-field --keys 'jeff,acc*' --name amount --value 250 --write
  forms-cli row checkbox --keys anne --index 2 --check`,
}

var rowFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate a row and report its anchor field",
	RunE:  rowKeywordRunE("find-row"),
}

var rowExistsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Report whether a row exists",
	RunE:  rowKeywordRunE("row-exists"),
}

var rowSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a row by clicking its anchor field",
	RunE:  rowKeywordRunE("select-row"),
}

var rowDoubleClickCmd = &cobra.Command{
	Use:   "double-click",
	Short: "Double-click a row's anchor field",
	RunE:  rowKeywordRunE("double-click-row"),
}

var rowGetFieldCmd = &cobra.Command{
	Use:   "get-field",
	Short: "Get the value of a named field on a row",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := rowParams(cmd)
		if err != nil {
			return err
		}
		params["name"], _ = cmd.Flags().GetString("name")
		return runKeyword(cmd, "get-row-field", params)
	},
}

var rowSetFieldCmd = &cobra.Command{
	Use:   "set-field",
	Short: "Set a named field on a row",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := rowParams(cmd)
		if err != nil {
			return err
		}
		params["name"], _ = cmd.Flags().GetString("name")
		params["value"], _ = cmd.Flags().GetString("value")
		return runKeyword(cmd, "set-row-field", params)
	},
}

var rowCheckboxCmd = &cobra.Command{
	Use:   "checkbox",
	Short: "Check, uncheck or report the Nth checkbox on a row",
	Long: `Operate on the Nth checkbox (1-based, counted left to right) on a row.
With --check or --uncheck the checkbox is set; otherwise its state is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := rowParams(cmd)
		if err != nil {
			return err
		}
		params["index"], _ = cmd.Flags().GetInt("index")
		check, _ := cmd.Flags().GetBool("check")
		uncheck, _ := cmd.Flags().GetBool("uncheck")
		switch {
		case check && uncheck:
			return fmt.Errorf("--check and --uncheck are mutually exclusive")
		case check:
			return runKeyword(cmd, "select-row-checkbox", params)
		case uncheck:
			return runKeyword(cmd, "deselect-row-checkbox", params)
		default:
			return runKeyword(cmd, "row-checkbox-state", params)
		}
	},
}

var rowButtonCmd = &cobra.Command{
	Use:   "button",
	Short: "Press the Nth button on a row",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := rowParams(cmd)
		if err != nil {
			return err
		}
		params["index"], _ = cmd.Flags().GetInt("index")
		return runKeyword(cmd, "select-row-button", params)
	},
}

var rowDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a resolved row as a PNG",
	Long: `Resolve a row and draw every component on it as an outlined box. The chosen
anchor is red, other matching anchors orange, the row's components blue.`,
	RunE: runRowDraw,
}

func init() {
	rootCmd.AddCommand(rowCmd)
	rowCmd.PersistentFlags().StringSlice("keys", nil, "Column values of the row, left to right (comma-separated; wildcards allowed)")

	for _, c := range []*cobra.Command{rowFindCmd, rowExistsCmd, rowSelectCmd, rowDoubleClickCmd,
		rowGetFieldCmd, rowSetFieldCmd, rowCheckboxCmd, rowButtonCmd, rowDrawCmd} {
		rowCmd.AddCommand(c)
	}

	rowGetFieldCmd.Flags().String("name", "", "Field name")
	rowSetFieldCmd.Flags().String("name", "", "Field name")
	rowSetFieldCmd.Flags().String("value", "", "Value to set")
	rowCheckboxCmd.Flags().Int("index", 1, "1-based checkbox position on the row")
	rowCheckboxCmd.Flags().Bool("check", false, "Check the checkbox")
	rowCheckboxCmd.Flags().Bool("uncheck", false, "Uncheck the checkbox")
	rowButtonCmd.Flags().Int("index", 1, "1-based button position on the row")
	rowDrawCmd.Flags().String("out", "row.png", "Output PNG path")
	rowDrawCmd.Flags().Bool("ids", false, "Label boxes with component IDs instead of names")
}

// rowParams collects --keys into keyword parameters.
func rowParams(cmd *cobra.Command) (keyword.Params, error) {
	keys, _ := cmd.Flags().GetStringSlice("keys")
	if len(keys) == 0 {
		return nil, fmt.Errorf("--keys is required")
	}
	return keyword.Params{"keys": keys}, nil
}

func rowKeywordRunE(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		params, err := rowParams(cmd)
		if err != nil {
			return err
		}
		return runKeyword(cmd, name, params)
	}
}

func runRowDraw(cmd *cobra.Command, args []string) error {
	params, err := rowParams(cmd)
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("out")
	ids, _ := cmd.Flags().GetBool("ids")
	mode := render.LabelNames
	if ids {
		mode = render.LabelIDs
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	res, err := session.Table.FindRow(params.Strings("keys"))
	if err != nil {
		return err
	}
	row, err := session.Table.RowComponents(res.Anchor, "textfield", "buttons", "checkbox", "label")
	if err != nil {
		return err
	}

	var boxes []render.Box
	add := func(h platform.Handle, role render.Role) error {
		b, err := render.BoxFor(h, role, mode)
		if err != nil {
			return err
		}
		boxes = append(boxes, b)
		return nil
	}
	for _, h := range row {
		if h.ID() != res.Anchor.ID() {
			if err := add(h, render.RoleRow); err != nil {
				return err
			}
		}
	}
	for _, h := range res.Candidates[1:] {
		if err := add(h, render.RoleCandidate); err != nil {
			return err
		}
	}
	if err := add(res.Anchor, render.RoleAnchor); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := render.WritePNG(f, boxes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), keyword.Result{
		OK:          true,
		Keyword:     "draw-row",
		Value:       outPath,
		Diagnostics: res.Diagnostics,
	})
}
