package domain

import (
	"log/slog"

	m "github.com/mbarton/javasphinx/internal/model"
)

// Aggregate merges per-file results in order. When two files produce the same
// fully-qualified name, the later file wins.
func Aggregate(results []m.FileResult) m.Registry {
	registry := m.NewRegistry()

	for _, result := range results {
		for fullName, doc := range result.Documents {
			if previous, ok := registry.Sources[fullName]; ok {
				slog.Debug("duplicate document replaced", "name", fullName, "previous", previous, "source", result.Source)
			}

			registry.Add(fullName, doc, result.Source)
		}
	}

	return registry
}
