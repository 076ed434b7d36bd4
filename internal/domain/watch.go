package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mbarton/javasphinx/internal/controller"
	m "github.com/mbarton/javasphinx/internal/model"
)

// WatchDebounce is the quiet period after the last change before a rebuild.
const WatchDebounce = 300 * time.Millisecond

// Watch builds once and then rebuilds whenever a Java source below the root
// changes, until ctx is cancelled. Rebuilds use the update policy unless force
// was requested. A failed rebuild is reported and watching continues.
func (w *workflow) Watch(ctx context.Context, args BuildArgs) error {
	if args.Policy != m.PolicyForce {
		args.Policy = m.PolicyUpdate
	}

	in, err := w.prepare(ctx, args, true)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.watchTree(ctx, watcher, in.root, in.exclusions); err != nil {
		return err
	}

	w.rebuild(ctx, args)

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped", "root", in.root)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if w.handleWatchEvent(ctx, watcher, event, in.exclusions) {
				pending = time.After(WatchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch error", "error", err)

		case <-pending:
			pending = nil

			w.rebuild(ctx, args)
		}
	}
}

// handleWatchEvent registers new directories and reports whether the event
// should trigger a rebuild.
func (w *workflow) handleWatchEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, exclusions []string) bool {
	slog.Debug("watch event", "path", event.Name, "op", event.Op.String())

	if event.Has(fsnotify.Create) {
		info, err := w.FileInfo(ctx, m.Path(event.Name))
		if err == nil && info.IsDir() {
			if IsExcluded(event.Name, exclusions) {
				return false
			}

			if err := w.watchTree(ctx, watcher, m.Path(event.Name), exclusions); err != nil {
				slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}

			return true
		}
	}

	if !m.IsSource(filepath.Base(event.Name)) {
		return false
	}

	if IsExcluded(filepath.Dir(event.Name), exclusions) {
		return false
	}

	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// watchTree adds root and every non-excluded directory below it to watcher.
func (w *workflow) watchTree(ctx context.Context, watcher *fsnotify.Watcher, root m.Path, exclusions []string) error {
	return w.Walk(ctx, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() {
			return nil
		}

		if IsExcluded(path, exclusions) {
			return filepath.SkipDir
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}

func (w *workflow) rebuild(ctx context.Context, args BuildArgs) {
	summary, err := w.build(ctx, args)
	if err != nil {
		slog.Error("rebuild failed", "root", args.Root, "error", err)
		w.DisplayError(ctx, err)

		return
	}

	w.DisplaySummary(ctx, summary)
}
