package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "github.com/mbarton/javasphinx/internal/model"
)

var forceFlag bool
var updateFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <input_path> [exclude_paths...]",
		Short: "Generate the documentation tree",
		Long:  buildLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			policy, err := m.ResolveConflictPolicy(viper.GetBool(forceKey), viper.GetBool(updateKey))
			if err != nil {
				return err
			}

			store, err := openCache(m.Path(args[0]))
			if err != nil {
				return err
			}
			defer closeCache(store)

			return workflow.Build(context.Background(), newBuildArgs(args, policy, store))
		},
	}

	configurePolicyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// configurePolicyFlags adds --force and --update. build and watch share the
// config keys, so the binding happens when the command runs.
func configurePolicyFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&forceFlag, forceFlagName, "f", false, "overwrite existing output files")
	cmd.Flags().BoolVarP(&updateFlag, updateFlagName, "u", false, "overwrite output files only when their source is newer")

	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		bindFlagToConfig(cmd.Flags().Lookup(forceFlagName), forceKey)
		bindFlagToConfig(cmd.Flags().Lookup(updateFlagName), updateKey)
	}
}
