package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mbarton/javasphinx/internal/adapter"
	m "github.com/mbarton/javasphinx/internal/model"
)

// cacheIsNewer decides between a source file and its cache record. Either
// side may be missing. Timestamps are compared in whole seconds and a tie
// goes to the source, so the file is recompiled.
func cacheIsNewer(source time.Time, sourceOK bool, cached time.Time, cachedOK bool) bool {
	if !sourceOK {
		return cachedOK
	}

	if !cachedOK {
		return false
	}

	return source.Unix() < cached.Unix()
}

// Resolve produces the documents of one source file, loading them from store
// when the cache record is newer than the source. A nil store disables caching.
func (w *workflow) Resolve(ctx context.Context, store adapter.CacheStore, source m.Path) (m.FileResult, error) {
	if store == nil {
		docs, err := w.compile(ctx, source)
		if err != nil {
			return m.FileResult{}, err
		}

		return m.FileResult{Source: source, Documents: docs}, nil
	}

	key := store.Key(source)

	var (
		sourceTime time.Time
		sourceOK   bool
	)

	info, err := w.FileInfo(ctx, source)

	switch {
	case err == nil:
		sourceTime, sourceOK = info.ModTime(), true
	case !errors.Is(err, fs.ErrNotExist):
		return m.FileResult{}, fmt.Errorf("stat %s: %w", source, err)
	}

	cachedTime, cachedOK, err := store.Stat(ctx, key)
	if err != nil {
		slog.Error("failed to stat cache record", "source", source, "key", key, "error", err)
		return m.FileResult{}, err
	}

	if cacheIsNewer(sourceTime, sourceOK, cachedTime, cachedOK) {
		docs, err := store.Get(ctx, key)
		if err == nil {
			slog.Debug("cache hit", "source", source, "documents", len(docs))
			return m.FileResult{Source: source, Documents: docs, Cached: true}, nil
		}

		slog.Warn("discarding unreadable cache record", "source", source, "key", key, "error", err)
	}

	docs, err := w.compile(ctx, source)
	if err != nil {
		return m.FileResult{}, err
	}

	if err := store.Put(ctx, key, docs); err != nil {
		slog.Error("failed to store cache record", "source", source, "key", key, "error", err)
		return m.FileResult{}, fmt.Errorf("store cache record for %s: %w", source, err)
	}

	return m.FileResult{Source: source, Documents: docs}, nil
}

func (w *workflow) compile(ctx context.Context, source m.Path) (m.Documents, error) {
	content, err := w.ReadFile(ctx, source)
	if err != nil {
		slog.Error("failed to read source", "source", source, "error", err)
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	unit, err := w.Parse(string(source), content)
	if err != nil {
		slog.Error("failed to parse source", "source", source, "error", err)
		return nil, parseFailure(source, err)
	}

	docs := w.Compile(unit)
	if docs == nil {
		docs = m.Documents{}
	}

	slog.Debug("compiled source", "source", source, "documents", len(docs))

	return docs, nil
}

// ResolveAll resolves sources on up to threads workers. Results keep the order
// of sources. onResolved, if set, is called once per file and never
// concurrently. The first error cancels the remaining work.
func (w *workflow) ResolveAll(
	ctx context.Context,
	store adapter.CacheStore,
	sources []m.Path,
	threads int,
	onResolved func(m.FileResult),
) ([]m.FileResult, error) {
	results := make([]m.FileResult, len(sources))

	if threads < 1 {
		threads = 1
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	var callbackMu sync.Mutex

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := w.Resolve(groupCtx, store, source)
			if err != nil {
				return err
			}

			results[i] = result

			if onResolved != nil {
				callbackMu.Lock()
				onResolved(result)
				callbackMu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
