package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "github.com/mbarton/javasphinx/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <input_path> [exclude_paths...]",
		Short: "Rebuild the documentation tree when sources change",
		Long:  watchLongDescription,
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

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return workflow.Watch(ctx, newBuildArgs(args, policy, store))
		},
	}

	configurePolicyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
