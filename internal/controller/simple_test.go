package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mbarton/javasphinx/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_BuildProgress(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	if err := ui.Start(ctx, WithBuildMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplaySources(ctx, []m.Path{"src/a/Foo.java", "src/a/b/Bar.java"})
	ui.DisplayResolved(ctx, m.FileResult{Source: "src/a/Foo.java", Documents: m.Documents{"a.Foo": {}}})
	ui.DisplayResolved(ctx, m.FileResult{Source: "src/a/b/Bar.java", Documents: m.Documents{"a.b.Bar": {}}, Cached: true})
	ui.DisplayWrite(ctx, m.WriteEvent{Path: "docs/a/Foo.rst", Outcome: m.Written})
	ui.DisplayWrite(ctx, m.WriteEvent{Path: "docs/a/b/Bar.rst", Outcome: m.Skipped})
	ui.DisplaySummary(ctx, m.BuildSummary{Sources: 2, Cached: 1, Compiled: 1, Documents: 2, Written: 1, Skipped: 1, Duration: 1500 * time.Millisecond})
	ui.Wait(ctx)
	ui.Close(ctx)

	output := out.String()
	for _, want := range []string{
		"Found 2 source file(s)",
		"compiled src/a/Foo.java (1 document(s))",
		"cached   src/a/b/Bar.java (1 document(s))",
		"written  docs/a/Foo.rst",
		"skipped  docs/a/b/Bar.rst",
		"Compiled",
		"DURATION",
		"1.5S",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_WatchBanner(t *testing.T) {
	cmd, out, _ := newTestCommand()

	if err := NewSimpleUI(cmd).Start(context.Background(), WithWatchMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if !strings.Contains(out.String(), "Watching for changes") {
		t.Errorf("expected watch banner, got %q", out.String())
	}
}

func TestSimpleUI_DisplayError(t *testing.T) {
	cmd, out, errOut := newTestCommand()

	NewSimpleUI(cmd).DisplayError(context.Background(), errors.New("boom"))

	if errOut.String() != "error: boom\n" {
		t.Errorf("stderr = %q", errOut.String())
	}

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	cmd, out, _ := newTestCommand()

	NewSimpleUI(cmd).DisplayDiff(context.Background(), "docs/a/Foo.rst", "--- a\n+++ b\n")

	if out.String() != "--- a\n+++ b\n\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ui.Start(ctx); err == nil {
		t.Error("Start() should fail on a cancelled context")
	}

	ui.DisplaySources(ctx, []m.Path{"a.java"})
	ui.DisplaySummary(ctx, m.BuildSummary{})

	if err := ui.DisplayListing(ctx, m.NewRegistry(), FormatTable); err == nil {
		t.Error("DisplayListing() should fail on a cancelled context")
	}

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
