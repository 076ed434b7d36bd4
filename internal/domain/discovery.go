package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	m "github.com/mbarton/javasphinx/internal/model"
)

// Discover returns every Java source file below root in lexical walk order.
// Excluded directories, including root itself, are not descended into.
func (w *workflow) Discover(ctx context.Context, root m.Path, exclusions []string) ([]m.Path, error) {
	var sources []m.Path

	err := w.Walk(ctx, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if IsExcluded(path, exclusions) {
				slog.Debug("skipping excluded directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if m.IsSource(entry.Name()) {
			sources = append(sources, m.Path(path))
		}

		return nil
	})
	if err != nil {
		slog.Error("failed to discover sources", "root", root, "error", err)
		return nil, fmt.Errorf("discover sources in %s: %w", root, err)
	}

	slog.Debug("discovered sources", "root", root, "count", len(sources))

	return sources, nil
}
