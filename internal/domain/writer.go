package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/internal/rst"
)

const (
	packageIndexName = "package-index"
	outputFileMode   = 0o644
)

// artifact is one output file planned by a build.
type artifact struct {
	Path    m.Path
	Kind    m.ArtifactKind
	Content string
	Source  m.Path // originating source of a document; empty for aggregate artifacts
}

type outputLayout struct {
	dir    m.Path
	suffix string
}

func (l outputLayout) packageDir(pkg string) string {
	return filepath.Join(string(l.dir), strings.ReplaceAll(pkg, ".", separator))
}

func (l outputLayout) file(pkg, base string) m.Path {
	return m.Path(filepath.Join(l.packageDir(pkg), base+"."+l.suffix))
}

// planDocuments lays out one artifact per document in fully-qualified-name
// order, followed by one package index per package.
func planDocuments(layout outputLayout, registry m.Registry) []artifact {
	artifacts := make([]artifact, 0, registry.Len()+len(registry.Packages()))

	for _, fullName := range registry.FullNames() {
		doc := registry.Documents[fullName]

		artifacts = append(artifacts, artifact{
			Path:    layout.file(doc.Package, doc.BaseName()),
			Kind:    m.ArtifactDocument,
			Content: doc.Text,
			Source:  registry.Sources[fullName],
		})
	}

	for _, pkg := range registry.Packages() {
		artifacts = append(artifacts, artifact{
			Path:    layout.file(pkg, packageIndexName),
			Kind:    m.ArtifactPackageIndex,
			Content: renderPackageIndex(pkg, registry.Names(pkg)),
		})
	}

	return artifacts
}

// renderPackageIndex builds the index page listing a package's documents.
func renderPackageIndex(pkg string, names []string) string {
	doc := rst.NewDocument()

	if pkg == "" {
		doc.AddHeading(defaultPackageTitle, '=')
	} else {
		doc.AddHeading(pkg, '=')
		doc.AddObject(rst.NewDirective("java:package", pkg))
	}

	toc := rst.NewDirective("toctree", "").AddOption("maxdepth", "1")
	for _, name := range names {
		toc.AddContent(name + "\n")
	}

	doc.AddObject(toc)

	return doc.Build()
}

const defaultPackageTitle = "Default package"

// writeArtifact writes a single artifact according to policy.
//
// A missing destination directory is created and is never a conflict. An
// existing file fails under strict, is replaced under force, and under update
// is skipped only when its originating source is strictly older than it.
func (w *workflow) writeArtifact(ctx context.Context, a artifact, policy m.ConflictPolicy) (m.WriteEvent, error) {
	event := m.WriteEvent{Path: a.Path, Kind: a.Kind, Outcome: m.Written}
	dir := m.Path(filepath.Dir(string(a.Path)))

	dirInfo, err := w.FileInfo(ctx, dir)

	switch {
	case err == nil && dirInfo.IsDir():
		skip, err := w.checkDestination(ctx, a, policy)
		if err != nil {
			return event, err
		}

		if skip {
			event.Outcome = m.Skipped
			slog.Debug("destination is newer than source", "path", a.Path, "source", a.Source)

			return event, nil
		}

	case err == nil || errors.Is(err, fs.ErrNotExist):
		if err := w.MkdirAll(ctx, dir); err != nil {
			slog.Error("failed to create output directory", "path", dir, "error", err)
			return event, fmt.Errorf("create directory %s: %w", dir, err)
		}

	default:
		return event, fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := w.WriteFile(ctx, a.Path, []byte(a.Content), outputFileMode); err != nil {
		slog.Error("failed to write output", "path", a.Path, "error", err)
		return event, fmt.Errorf("write %s: %w", a.Path, err)
	}

	return event, nil
}

// checkDestination applies the conflict policy to an existing destination.
// It reports true when the write should be skipped.
func (w *workflow) checkDestination(ctx context.Context, a artifact, policy m.ConflictPolicy) (bool, error) {
	dest, err := w.FileInfo(ctx, a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("stat %s: %w", a.Path, err)
	}

	if !policy.AllowsOverwrite() {
		slog.Error("destination already exists", "path", a.Path)
		return false, &ConflictError{Path: a.Path}
	}

	if policy != m.PolicyUpdate || a.Source == "" {
		return false, nil
	}

	source, err := w.FileInfo(ctx, a.Source)
	if err != nil {
		return false, nil //nolint:nilerr // an unreadable source is rewritten
	}

	return source.ModTime().Before(dest.ModTime()), nil
}
