// Package model defines the data structures shared by the documentation build.
package model

import (
	"sort"
	"strings"
)

// Document is one rendered documentation page for a documentable unit.
type Document struct {
	Package string // dotted package name, empty for the default package
	Name    string // simple name; nested types are joined with "."
	Text    string // rendered body
}

// BaseName returns the file name of the document without suffix.
// Nested type separators are replaced by a dash so "Outer.Inner" becomes "Outer-Inner".
func (d Document) BaseName() string {
	return strings.ReplaceAll(d.Name, ".", "-")
}

// Documents maps fully-qualified names to documents produced from one source file.
type Documents map[string]Document

// FileResult holds the documents resolved for a single source file.
type FileResult struct {
	Source    Path
	Documents Documents
	Cached    bool // true if the documents were loaded from the cache
}

// Registry is the merged view of every document in a build.
// Documents and Sources always share the same key set.
type Registry struct {
	Documents map[string]Document
	Sources   map[string]Path
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return Registry{
		Documents: make(map[string]Document),
		Sources:   make(map[string]Path),
	}
}

// Add records a document and the source that produced it. An existing entry
// with the same name is replaced.
func (r Registry) Add(fullName string, doc Document, source Path) {
	r.Documents[fullName] = doc
	r.Sources[fullName] = source
}

// Len returns the number of documents in the registry.
func (r Registry) Len() int {
	return len(r.Documents)
}

// FullNames returns every fully-qualified name in lexicographic order.
func (r Registry) FullNames() []string {
	names := make([]string, 0, len(r.Documents))
	for name := range r.Documents {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Packages returns the distinct package names in lexicographic order.
func (r Registry) Packages() []string {
	seen := make(map[string]struct{})
	for _, doc := range r.Documents {
		seen[doc.Package] = struct{}{}
	}

	packages := make([]string, 0, len(seen))
	for pkg := range seen {
		packages = append(packages, pkg)
	}

	sort.Strings(packages)

	return packages
}

// Names returns the document base names of a package in lexicographic order.
func (r Registry) Names(pkg string) []string {
	var names []string

	for _, doc := range r.Documents {
		if doc.Package == pkg {
			names = append(names, doc.BaseName())
		}
	}

	sort.Strings(names)

	return names
}
