package domain

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mbarton/javasphinx/internal/adapter"
)

func newLocalWorkflow() *workflow {
	return &workflow{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		JavaParser:      adapter.NewLocalJavaParser(),
		DocCompiler:     adapter.NewJavadocRSTCompiler(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setModTime(t *testing.T, path string, when time.Time) {
	t.Helper()

	require.NoError(t, os.Chtimes(path, when, when))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
