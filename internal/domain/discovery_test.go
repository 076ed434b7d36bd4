package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mbarton/javasphinx/internal/model"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Foo.java"), "package a; public class Foo {}")
	writeFile(t, filepath.Join(root, "a", "b", "Bar.java"), "package a.b; public class Bar {}")
	writeFile(t, filepath.Join(root, "a", "notes.txt"), "not java")
	writeFile(t, filepath.Join(root, "gen", "Gen.java"), "class Gen {}")

	wf := newLocalWorkflow()

	t.Run("finds every java file in walk order", func(t *testing.T) {
		sources, err := wf.Discover(context.Background(), m.Path(root), nil)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a", "Foo.java")),
			m.Path(filepath.Join(root, "a", "b", "Bar.java")),
			m.Path(filepath.Join(root, "gen", "Gen.java")),
		}, sources)
	})

	t.Run("skips excluded directories", func(t *testing.T) {
		exclusions, err := NormalizeExcludes(root, []string{"gen", filepath.Join("a", "b")})
		require.NoError(t, err)

		sources, err := wf.Discover(context.Background(), m.Path(root), exclusions)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "a", "Foo.java"))}, sources)
	})

	t.Run("excluded root yields nothing", func(t *testing.T) {
		exclusions, err := NormalizeExcludes(root, []string{root})
		require.NoError(t, err)

		sources, err := wf.Discover(context.Background(), m.Path(root), exclusions)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := wf.Discover(context.Background(), m.Path(filepath.Join(root, "missing")), nil)
		require.Error(t, err)
	})
}
