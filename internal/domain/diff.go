package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mbarton/javasphinx/internal/controller"
)

const diffContextLines = 3

// Diff plans a build without writing and reports every artifact whose content
// on disk differs from what a build would write. It returns
// ErrOutputOutOfDate when anything differs.
func (w *workflow) Diff(ctx context.Context, args BuildArgs) error {
	if err := w.Start(ctx, controller.WithDiffMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	changed, err := w.diff(ctx, args)
	if err != nil {
		w.DisplayError(ctx, err)
		w.Close(ctx)

		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	if changed > 0 {
		return fmt.Errorf("%w: %d file(s) differ", ErrOutputOutOfDate, changed)
	}

	return nil
}

func (w *workflow) diff(ctx context.Context, args BuildArgs) (int, error) {
	in, err := w.prepare(ctx, args, true)
	if err != nil {
		return 0, err
	}

	registry, _, err := w.resolveRegistry(ctx, in, args.Cache, args.Threads)
	if err != nil {
		return 0, err
	}

	changed := 0

	for _, a := range plan(in.layout, registry, args.NoToc) {
		text, err := w.diffArtifact(ctx, a)
		if err != nil {
			return changed, err
		}

		if text == "" {
			continue
		}

		changed++

		w.DisplayDiff(ctx, a.Path, text)
	}

	slog.Info("diff finished", "root", in.root, "changed", changed)

	return changed, nil
}

// diffArtifact returns a unified diff between the file on disk and the
// planned content, or "" when they are identical.
func (w *workflow) diffArtifact(ctx context.Context, a artifact) (string, error) {
	fromFile := string(a.Path)

	var before []string

	current, err := w.ReadFile(ctx, a.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		fromFile = "/dev/null"
	case err != nil:
		return "", fmt.Errorf("read %s: %w", a.Path, err)
	case string(current) == a.Content:
		return "", nil
	default:
		before = difflib.SplitLines(string(current))
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        difflib.SplitLines(a.Content),
		FromFile: fromFile,
		ToFile:   string(a.Path),
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", a.Path, err)
	}

	return text, nil
}
