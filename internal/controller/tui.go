package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mbarton/javasphinx/internal/model"
)

const progressWidth = 40

var errUIStarted = errors.New("ui already started")

// Color palette shared by the interactive output.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// TUI implements UI using Bubble Tea for interactive display. Build and watch
// runs drive a live progress view; listings and diffs are printed directly.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view for build and watch runs.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := NewStartConfig(options...)
	if cfg.Mode() != ModeBuild && cfg.Mode() != ModeWatch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errUIStarted
	}

	t.program = tea.NewProgram(newProgressModel(cfg.Mode()), tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("progress view failed", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress view, leaving its final frame on screen.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done
}

// Wait blocks until the progress view has rendered its final frame.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplaySources resets the progress view for a new run.
func (t *TUI) DisplaySources(ctx context.Context, sources []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(sourcesMsg{total: len(sources)})
}

// DisplayResolved advances the progress bar.
func (t *TUI) DisplayResolved(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(resolvedMsg{result: result})
}

// DisplayWrite reports an output file.
func (t *TUI) DisplayWrite(ctx context.Context, event m.WriteEvent) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(writeMsg{event: event})
}

// DisplaySummary shows the totals of a finished run.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.BuildSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !t.send(summaryMsg{summary: summary}) {
		_, _ = fmt.Fprintln(t.output, renderSummaryLine(summary))
	}
}

// DisplayListing prints the registry in the requested format.
func (t *TUI) DisplayListing(ctx context.Context, registry m.Registry, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := RenderListing(registry, format)
	if err != nil {
		return err
	}

	if format == FormatYAML {
		_, err = fmt.Fprint(t.output, text)
		return err
	}

	_, err = fmt.Fprintf(t.output, "%s\n%s", titleStyle.Render("Javadoc"), text)

	return err
}

// DisplayDiff prints a colorized unified diff.
func (t *TUI) DisplayDiff(ctx context.Context, _ m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.output, colorizeDiff(diff))
}

// DisplayError reports err in the progress view, or prints it when no view runs.
func (t *TUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	if !t.send(errorMsg{err: err}) {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render("✗ "+err.Error()))
	}
}

func colorizeDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = successStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = errorStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func renderSummaryLine(summary m.BuildSummary) string {
	return fmt.Sprintf("%s %d document(s) in %d package(s): %d written, %d skipped, %d cached, %s",
		successStyle.Render("✓"),
		summary.Documents,
		summary.Packages,
		summary.Written,
		summary.Skipped,
		summary.Cached,
		summary.Duration.Round(time.Millisecond),
	)
}

type (
	sourcesMsg  struct{ total int }
	resolvedMsg struct{ result m.FileResult }
	writeMsg    struct{ event m.WriteEvent }
	summaryMsg  struct{ summary m.BuildSummary }
	errorMsg    struct{ err error }
	finishedMsg struct{}
)

// progressModel is the Bubble Tea model behind a build or watch run.
type progressModel struct {
	mode     StartMode
	spinner  spinner.Model
	progress progress.Model

	total    int
	resolved int
	cached   int
	written  int
	skipped  int
	current  string

	summary  *m.BuildSummary
	err      error
	runs     int
	quitting bool
}

func newProgressModel(mode StartMode) progressModel {
	return progressModel{
		mode:     mode,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sourcesMsg:
		pm.total = msg.total
		pm.resolved, pm.cached, pm.written, pm.skipped = 0, 0, 0, 0
		pm.current = ""
		pm.summary = nil
		pm.err = nil
		pm.runs++

	case resolvedMsg:
		pm.resolved++
		if msg.result.Cached {
			pm.cached++
		}

		pm.current = msg.result.Source.Base()

	case writeMsg:
		if msg.event.Outcome == m.Skipped {
			pm.skipped++
		} else {
			pm.written++
		}

		pm.current = msg.event.Path.Base()

	case summaryMsg:
		summary := msg.summary
		pm.summary = &summary

	case errorMsg:
		pm.err = msg.err

	case finishedMsg:
		pm.quitting = true
		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		return 0
	}

	return float64(pm.resolved) / float64(pm.total)
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("javasphinx "+pm.mode.String()) + "\n\n")

	switch {
	case pm.err != nil:
		b.WriteString(errorStyle.Render("✗ "+pm.err.Error()) + "\n")
	case pm.summary != nil:
		b.WriteString(renderSummaryLine(*pm.summary) + "\n")
	case pm.runs == 0:
		b.WriteString(pm.spinner.View() + " discovering sources\n")
	default:
		fmt.Fprintf(&b, "%s %s %d/%d\n", pm.spinner.View(), pm.progress.ViewAs(pm.percent()), pm.resolved, pm.total)
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("cached %d  written %d  skipped %d  %s",
			pm.cached, pm.written, pm.skipped, pm.current)))
	}

	if pm.mode == ModeWatch && !pm.quitting {
		b.WriteString("\n" + warningStyle.Render("watching for changes, press Ctrl+C to stop") + "\n")
	}

	return b.String()
}
