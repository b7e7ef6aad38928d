package cmd

import (
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the form's component tree",
	Long: `Read the component tree of the open form: IDs, type tags, names, text,
bounds and state. Closed windows are not part of the tree.`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().String("types", "", "Comma-separated type tags or groups to include (e.g. \"textfield,buttons\")")
	readCmd.Flags().String("bbox", "", "Only include components intersecting the box (x,y,w,h)")
	readCmd.Flags().String("text", "", "Only include components whose name or text contains this")
	readCmd.Flags().Bool("prune", false, "Drop anonymous containers")
	readCmd.Flags().Bool("flat", false, "Flatten the tree with path breadcrumbs")
}

func runRead(cmd *cobra.Command, args []string) error {
	types, _ := cmd.Flags().GetString("types")
	bboxStr, _ := cmd.Flags().GetString("bbox")
	text, _ := cmd.Flags().GetString("text")
	prune, _ := cmd.Flags().GetBool("prune")
	flat, _ := cmd.Flags().GetBool("flat")

	opts := platform.ReadOptions{
		Types: splitList(types),
		Text:  text,
		Prune: prune,
	}
	if bboxStr != "" {
		b, err := platform.ParseBBox(bboxStr)
		if err != nil {
			return err
		}
		opts.BBox = b
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	result, err := session.Read(opts, flat)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), result)
}
