// Package controller provides output adapters for displaying documentation build progress and results.
package controller

import (
	"context"
	"fmt"

	m "github.com/mbarton/javasphinx/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBuild StartMode = iota
	ModeList
	ModeDiff
	ModeWatch
)

func (s StartMode) String() string {
	switch s {
	case ModeBuild:
		return "build"
	case ModeList:
		return "list"
	case ModeDiff:
		return "diff"
	case ModeWatch:
		return "watch"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// NewStartConfig applies options over the default (build) configuration.
func NewStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBuild}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithBuildMode sets the UI to build mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithListMode sets the UI to listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithDiffMode sets the UI to diff mode.
func WithDiffMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDiff
	}
}

// WithWatchMode sets the UI to watch mode, where builds repeat until cancelled.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// ListFormat selects how a registry listing is rendered.
type ListFormat string

// Supported listing formats.
const (
	FormatTable ListFormat = "table"
	FormatTree  ListFormat = "tree"
	FormatYAML  ListFormat = "yaml"
)

// ParseListFormat validates a listing format name. Empty selects the table.
func ParseListFormat(value string) (ListFormat, error) {
	switch f := ListFormat(value); f {
	case FormatTable, FormatTree, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown list format %q (want table, tree or yaml)", value)
	}
}

// UI defines the interface for reporting a documentation build.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplaySources(ctx context.Context, sources []m.Path)
	DisplayResolved(ctx context.Context, result m.FileResult)
	DisplayWrite(ctx context.Context, event m.WriteEvent)
	DisplaySummary(ctx context.Context, summary m.BuildSummary)
	DisplayListing(ctx context.Context, registry m.Registry, format ListFormat) error
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplayError(ctx context.Context, err error)
}
