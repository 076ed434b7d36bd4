package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mbarton/javasphinx/internal/model"
)

func update(t *testing.T, model progressModel, msg tea.Msg) (progressModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	pm, ok := next.(progressModel)
	require.True(t, ok)

	return pm, cmd
}

func TestProgressModel_TracksRun(t *testing.T) {
	model := newProgressModel(ModeBuild)
	assert.Contains(t, model.View(), "discovering sources")

	model, _ = update(t, model, sourcesMsg{total: 2})
	model, _ = update(t, model, resolvedMsg{result: m.FileResult{Source: "src/a/Foo.java"}})
	model, _ = update(t, model, resolvedMsg{result: m.FileResult{Source: "src/a/Bar.java", Cached: true}})
	model, _ = update(t, model, writeMsg{event: m.WriteEvent{Path: "docs/a/Foo.rst", Outcome: m.Written}})
	model, _ = update(t, model, writeMsg{event: m.WriteEvent{Path: "docs/a/Bar.rst", Outcome: m.Skipped}})

	assert.Equal(t, 2, model.resolved)
	assert.Equal(t, 1, model.cached)
	assert.Equal(t, 1, model.written)
	assert.Equal(t, 1, model.skipped)
	assert.InDelta(t, 1.0, model.percent(), 0.001)

	view := model.View()
	assert.Contains(t, view, "2/2")
	assert.Contains(t, view, "Bar.rst")

	model, _ = update(t, model, summaryMsg{summary: m.BuildSummary{Documents: 2, Packages: 1, Written: 1, Skipped: 1}})
	assert.Contains(t, model.View(), "2 document(s) in 1 package(s)")

	model, cmd := update(t, model, finishedMsg{})
	assert.True(t, model.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestProgressModel_NewRunResetsCounters(t *testing.T) {
	model := newProgressModel(ModeWatch)

	model, _ = update(t, model, sourcesMsg{total: 1})
	model, _ = update(t, model, resolvedMsg{result: m.FileResult{Source: "A.java"}})
	model, _ = update(t, model, errorMsg{err: errors.New("broken")})
	assert.Contains(t, model.View(), "broken")
	assert.Contains(t, model.View(), "watching for changes")

	model, _ = update(t, model, sourcesMsg{total: 3})
	assert.Zero(t, model.resolved)
	assert.NoError(t, model.err)
	assert.Equal(t, 2, model.runs)
	assert.Contains(t, model.View(), "0/3")
}

func TestTUI_ListingAndDiffPrintDirectly(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithListMode()))
	require.NoError(t, ui.DisplayListing(ctx, sampleRegistry(), FormatYAML))
	ui.DisplayDiff(ctx, "docs/a/Foo.rst", "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n")
	ui.DisplayError(ctx, errors.New("out of date"))
	ui.Wait(ctx)
	ui.Close(ctx)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "packages:"))
	assert.Contains(t, output, "-old")
	assert.Contains(t, output, "+new")
	assert.Contains(t, output, "out of date")
}

func TestTUI_StartTwice(t *testing.T) {
	ui := NewTUI(&bytes.Buffer{})
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithBuildMode()))
	require.ErrorIs(t, ui.Start(ctx, WithBuildMode()), errUIStarted)

	ui.Close(ctx)
	ui.Close(ctx)
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.False(t, IsTTY(nil))
}
