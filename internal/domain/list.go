package domain

import (
	"context"
	"log/slog"

	"github.com/mbarton/javasphinx/internal/controller"
)

// List resolves every source under the root and displays the resulting
// packages and types without writing any output.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	in, err := w.prepare(ctx, BuildArgs{Root: args.Root, Exclude: args.Exclude}, false)
	if err != nil {
		w.DisplayError(ctx, err)
		w.Close(ctx)

		return err
	}

	registry, _, err := w.resolveRegistry(ctx, in, args.Cache, args.Threads)
	if err != nil {
		w.DisplayError(ctx, err)
		w.Close(ctx)

		return err
	}

	if err := w.DisplayListing(ctx, registry, args.Format); err != nil {
		slog.Error("Failed to display listing", "error", err)
		w.Close(ctx)

		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
