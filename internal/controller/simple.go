package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mbarton/javasphinx/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = NewStartConfig(options...).Mode()
	if s.mode == ModeWatch {
		s.printf("Watching for changes (press Ctrl+C to stop)\n")
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplaySources prints how many source files were discovered.
func (s *SimpleUI) DisplaySources(ctx context.Context, sources []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d source file(s)\n", len(sources))
}

// DisplayResolved prints one line per resolved source file.
func (s *SimpleUI) DisplayResolved(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	origin := "compiled"
	if result.Cached {
		origin = "cached"
	}

	s.printf("%-8s %s (%d document(s))\n", origin, result.Source, len(result.Documents))
}

// DisplayWrite prints the outcome of writing one output file.
func (s *SimpleUI) DisplayWrite(ctx context.Context, event m.WriteEvent) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%-8s %s\n", event.Outcome, event.Path)
}

// DisplaySummary prints the build totals as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.BuildSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(summary))
}

func renderSummaryTable(summary m.BuildSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stage", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := []struct {
		label string
		count int
	}{
		{"Sources", summary.Sources},
		{"Cached", summary.Cached},
		{"Compiled", summary.Compiled},
		{"Documents", summary.Documents},
		{"Packages", summary.Packages},
		{"Written", summary.Written},
		{"Skipped", summary.Skipped},
	}

	for _, row := range rows {
		table.Append([]string{row.label, fmt.Sprintf("%d", row.count)})
	}

	table.SetFooter([]string{"Duration", summary.Duration.Round(time.Millisecond).String()})
	table.Render()

	return tableBuffer.String()
}

// DisplayListing prints the registry in the requested format.
func (s *SimpleUI) DisplayListing(ctx context.Context, registry m.Registry, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := RenderListing(registry, format)
	if err != nil {
		return err
	}

	s.printf("%s", text)

	return nil
}

// DisplayDiff prints a unified diff for one output file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, _ m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", diff)
}

// DisplayError prints err.
func (s *SimpleUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
