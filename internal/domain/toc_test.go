package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mbarton/javasphinx/internal/model"
)

func TestPlanToc(t *testing.T) {
	toc := planToc(outputLayout{dir: "/out", suffix: "txt"}, []string{"a", "a.b"})

	assert.Equal(t, m.Path(filepath.Join("/out", "packages.txt")), toc.Path)
	assert.Equal(t, m.ArtifactToc, toc.Kind)
	assert.Empty(t, toc.Source)
	assert.Equal(t, "Javadoc\n=======\n\n"+
		".. toctree::\n   :maxdepth: 2\n\n"+
		"   a/package-index\n   a/b/package-index\n\n", toc.Content)
}

func TestRenderToc_DefaultPackage(t *testing.T) {
	assert.Contains(t, renderToc([]string{""}), "   package-index\n")
}
