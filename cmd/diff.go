package cmd

import (
	"context"

	"github.com/spf13/cobra"

	m "github.com/mbarton/javasphinx/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <input_path> [exclude_paths...]",
		Short: "Show differences between the output directory and a fresh build",
		Long:  diffLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openCache(m.Path(args[0]))
			if err != nil {
				return err
			}
			defer closeCache(store)

			return workflow.Diff(context.Background(), newBuildArgs(args, m.PolicyForce, store))
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
