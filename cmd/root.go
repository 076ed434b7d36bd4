// Package cmd provides the root command and CLI setup for javasphinx.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mbarton/javasphinx/internal/adapter"
	"github.com/mbarton/javasphinx/internal/controller"
	"github.com/mbarton/javasphinx/internal/domain"
	m "github.com/mbarton/javasphinx/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var javaParser adapter.JavaParser
var docCompiler adapter.DocCompiler
var workflow domain.Workflow
var ui controller.UI

// Persistent flag values. Commands read the bound viper keys instead, so
// config and env values win over the flag defaults below.
var (
	outputDirFlag    string
	cacheDirFlag     string
	cacheBackendFlag string
	suffixFlag       string
	noTocFlag        bool
	excludePatterns  []string
	parallelFlag     int
	verboseFlag      bool
	logFileFlag      string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	javaParser = adapter.NewLocalJavaParser()
	docCompiler = adapter.NewJavadocRSTCompiler()
	workflow = domain.NewWorkflow(fsAdapter, javaParser, docCompiler, ui)
}

const pathArgsHelp = `Arguments:
  <input_path>        root directory of the Java source tree
  [exclude_paths...]  directories to skip; relative paths are resolved
                      against the input path`

const rootLongDescription = `Javasphinx generates reStructuredText API documentation for the Sphinx
java domain from a tree of Java sources. Unchanged sources are served from a
per-file cache and up-to-date output files can be left untouched.

` + pathArgsHelp

const buildLongDescription = `Build the documentation tree for <input_path> into the output directory.

One file is written per documentable type, plus a package-index per package
and a packages table of contents at the output root.

` + pathArgsHelp

const listLongDescription = `List the packages and types that would be documented.

` + pathArgsHelp

const diffLongDescription = `Show how the output directory differs from what a build would write.
Exits non-zero when any file differs.

` + pathArgsHelp

const watchLongDescription = `Build once and rebuild whenever a Java source changes.

` + pathArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "javasphinx",
		Short:         "Java API documentation for Sphinx",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputDirFlagName, "o", "", "directory to write the documentation tree to")
	bindFlagToConfig(flags.Lookup(outputDirFlagName), outputDirKey)

	flags.StringVarP(&cacheDirFlag, cacheDirFlagName, "c", "", "directory for cached compilation results (caching is off when empty)")
	bindFlagToConfig(flags.Lookup(cacheDirFlagName), cacheDirKey)

	flags.StringVar(&cacheBackendFlag, cacheBackendFlagName, defaultCacheBackend, "cache backend: fs or sqlite")
	bindFlagToConfig(flags.Lookup(cacheBackendFlagName), cacheBackendKey)

	flags.StringVarP(&suffixFlag, suffixFlagName, "s", defaultSuffix, "suffix of generated files")
	bindFlagToConfig(flags.Lookup(suffixFlagName), suffixKey)

	flags.BoolVarP(&noTocFlag, noTocFlagName, "T", false, "do not write the packages table of contents")
	bindFlagToConfig(flags.Lookup(noTocFlagName), noTocKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude a directory (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of sources compiled in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// splitPathArgs separates the input root from positional exclusions and
// appends the configured ones.
func splitPathArgs(args []string) (m.Path, []string) {
	if len(args) == 0 {
		return "", viper.GetStringSlice(excludeKey)
	}

	excludes := make([]string, 0, len(args)-1)
	excludes = append(excludes, args[1:]...)
	excludes = append(excludes, viper.GetStringSlice(excludeKey)...)

	return m.Path(args[0]), excludes
}

// openCache opens the configured cache store, or returns nil when caching is off.
// The input root is checked first so a bad root never creates a cache directory.
func openCache(root m.Path) (adapter.CacheStore, error) {
	info, err := fsAdapter.FileInfo(context.Background(), root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInputPath, root)
	}

	dir := viper.GetString(cacheDirKey)
	if dir == "" {
		return nil, nil
	}

	store, err := adapter.OpenCacheStore(viper.GetString(cacheBackendKey), m.Path(dir))
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return store, nil
}

func closeCache(store adapter.CacheStore) {
	if store == nil {
		return
	}

	if err := store.Close(); err != nil {
		slog.Warn("failed to close cache", "error", err)
	}
}

// newBuildArgs assembles the arguments shared by build, diff and watch.
func newBuildArgs(args []string, policy m.ConflictPolicy, store adapter.CacheStore) domain.BuildArgs {
	root, excludes := splitPathArgs(args)

	return domain.BuildArgs{
		Root:    root,
		Exclude: excludes,
		Output:  m.Path(viper.GetString(outputDirKey)),
		Cache:   store,
		Policy:  policy,
		Suffix:  viper.GetString(suffixKey),
		NoToc:   viper.GetBool(noTocKey),
		Threads: viper.GetInt(parallelKey),
	}
}
