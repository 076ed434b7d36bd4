package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbarton/javasphinx/internal/controller"
	"github.com/mbarton/javasphinx/internal/domain"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <input_path> [exclude_paths...]",
		Short: "List documentable packages and types",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := controller.ParseListFormat(viper.GetString(listFormatKey))
			if err != nil {
				return err
			}

			root, excludes := splitPathArgs(args)

			store, err := openCache(root)
			if err != nil {
				return err
			}
			defer closeCache(store)

			return workflow.List(context.Background(), domain.ListArgs{
				Root:    root,
				Exclude: excludes,
				Cache:   store,
				Threads: viper.GetInt(parallelKey),
				Format:  format,
			})
		},
	}

	cmd.Flags().StringVar(&listFormatFlag, formatFlagName, defaultListFormat, "output format: table, tree or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
