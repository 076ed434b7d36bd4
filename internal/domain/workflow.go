// Package domain implements the incremental documentation build: source
// discovery, cached compilation, aggregation and output writing.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mbarton/javasphinx/internal/adapter"
	"github.com/mbarton/javasphinx/internal/controller"
	m "github.com/mbarton/javasphinx/internal/model"
)

// DefaultSuffix is the output file suffix used when none is configured.
const DefaultSuffix = "rst"

// BuildArgs contains the arguments shared by build, diff and watch.
type BuildArgs struct {
	Root    m.Path
	Exclude []string
	Output  m.Path
	Cache   adapter.CacheStore // nil disables caching
	Policy  m.ConflictPolicy
	Suffix  string
	NoToc   bool
	Threads int
}

// ListArgs contains the arguments for listing documentable types.
type ListArgs struct {
	Root    m.Path
	Exclude []string
	Cache   adapter.CacheStore
	Threads int
	Format  controller.ListFormat
}

// Workflow defines the documentation build operations exposed to the CLI.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	List(ctx context.Context, args ListArgs) error
	Diff(ctx context.Context, args BuildArgs) error
	Watch(ctx context.Context, args BuildArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.JavaParser
	adapter.DocCompiler
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.JavaParser,
	compiler adapter.DocCompiler,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		JavaParser:      parser,
		DocCompiler:     compiler,
		UI:              ui,
	}
}

// NormalizeSuffix strips a single leading dot and applies the default.
func NormalizeSuffix(suffix string) string {
	suffix = strings.TrimPrefix(suffix, ".")
	if suffix == "" {
		return DefaultSuffix
	}

	return suffix
}

// Build discovers, compiles and writes the documentation tree.
func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	if err := w.Start(ctx, controller.WithBuildMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	summary, err := w.build(ctx, args)
	if err != nil {
		w.DisplayError(ctx, err)
		w.Close(ctx)

		return err
	}

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// buildInput is the validated and normalised form of the arguments.
type buildInput struct {
	root       m.Path
	exclusions []string
	layout     outputLayout
}

func (w *workflow) prepare(ctx context.Context, args BuildArgs, requireOutput bool) (buildInput, error) {
	if requireOutput && args.Output == "" {
		return buildInput{}, ErrMissingOutput
	}

	info, err := w.FileInfo(ctx, args.Root)
	if err != nil || !info.IsDir() {
		slog.Error("input path is not a directory", "path", args.Root, "error", err)
		return buildInput{}, fmt.Errorf("%w: %s", ErrInvalidInputPath, args.Root)
	}

	root, err := w.AbsPath(ctx, args.Root)
	if err != nil {
		return buildInput{}, fmt.Errorf("resolve %s: %w", args.Root, err)
	}

	exclusions, err := NormalizeExcludes(string(args.Root), args.Exclude)
	if err != nil {
		return buildInput{}, err
	}

	return buildInput{
		root:       root,
		exclusions: exclusions,
		layout:     outputLayout{dir: args.Output, suffix: NormalizeSuffix(args.Suffix)},
	}, nil
}

// resolveRegistry discovers and resolves every source and merges the results.
func (w *workflow) resolveRegistry(
	ctx context.Context,
	in buildInput,
	store adapter.CacheStore,
	threads int,
) (m.Registry, m.BuildSummary, error) {
	var summary m.BuildSummary

	sources, err := w.Discover(ctx, in.root, in.exclusions)
	if err != nil {
		return m.Registry{}, summary, err
	}

	w.DisplaySources(ctx, sources)

	results, err := w.ResolveAll(ctx, store, sources, threads, func(result m.FileResult) {
		w.DisplayResolved(ctx, result)
	})
	if err != nil {
		return m.Registry{}, summary, err
	}

	registry := Aggregate(results)

	summary.Sources = len(sources)
	for _, result := range results {
		if result.Cached {
			summary.Cached++
		} else {
			summary.Compiled++
		}
	}

	summary.Documents = registry.Len()
	summary.Packages = len(registry.Packages())

	return registry, summary, nil
}

// plan lays out every artifact of a build in write order.
func plan(layout outputLayout, registry m.Registry, noToc bool) []artifact {
	artifacts := planDocuments(layout, registry)
	if !noToc {
		artifacts = append(artifacts, planToc(layout, registry.Packages()))
	}

	return artifacts
}

func (w *workflow) build(ctx context.Context, args BuildArgs) (m.BuildSummary, error) {
	started := time.Now()

	in, err := w.prepare(ctx, args, true)
	if err != nil {
		return m.BuildSummary{}, err
	}

	if err := w.MkdirAll(ctx, args.Output); err != nil {
		slog.Error("failed to create output directory", "path", args.Output, "error", err)
		return m.BuildSummary{}, fmt.Errorf("create output directory %s: %w", args.Output, err)
	}

	registry, summary, err := w.resolveRegistry(ctx, in, args.Cache, args.Threads)
	if err != nil {
		return summary, err
	}

	policy := args.Policy
	if policy == "" {
		policy = m.PolicyStrict
	}

	for _, a := range plan(in.layout, registry, args.NoToc) {
		event, err := w.writeArtifact(ctx, a, policy)
		if err != nil {
			return summary, err
		}

		summary.Record(event)
		w.DisplayWrite(ctx, event)
	}

	summary.Duration = time.Since(started)

	slog.Info("build finished",
		"root", in.root,
		"sources", summary.Sources,
		"cached", summary.Cached,
		"documents", summary.Documents,
		"written", summary.Written,
		"skipped", summary.Skipped,
		"duration", summary.Duration,
	)

	return summary, nil
}
