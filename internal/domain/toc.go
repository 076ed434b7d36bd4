package domain

import (
	"path"
	"path/filepath"
	"strings"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/internal/rst"
)

const tocName = "packages"

// planToc lays out the top-level table of contents.
func planToc(layout outputLayout, packages []string) artifact {
	return artifact{
		Path:    m.Path(filepath.Join(string(layout.dir), tocName+"."+layout.suffix)),
		Kind:    m.ArtifactToc,
		Content: renderToc(packages),
	}
}

// renderToc lists the package index of every package. Entries always use
// forward slashes.
func renderToc(packages []string) string {
	doc := rst.NewDocument()
	doc.AddHeading("Javadoc", '=')

	toc := rst.NewDirective("toctree", "").AddOption("maxdepth", "2")
	for _, pkg := range packages {
		toc.AddContent(path.Join(strings.ReplaceAll(pkg, ".", "/"), packageIndexName) + "\n")
	}

	doc.AddObject(toc)

	return doc.Build()
}
