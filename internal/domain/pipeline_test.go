package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mbarton/javasphinx/internal/adapter"
	adaptermocks "github.com/mbarton/javasphinx/internal/adapter/mocks"
	m "github.com/mbarton/javasphinx/internal/model"
)

func TestCacheIsNewer(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		source   time.Time
		sourceOK bool
		cached   time.Time
		cachedOK bool
		want     bool
	}{
		{"neither exists", time.Time{}, false, time.Time{}, false, false},
		{"only cache exists", time.Time{}, false, base, true, true},
		{"only source exists", base, true, time.Time{}, false, false},
		{"cache is newer", base, true, base.Add(2 * time.Second), true, true},
		{"source is newer", base.Add(2 * time.Second), true, base, true, false},
		{"same second is a tie", base.Add(100 * time.Millisecond), true, base.Add(900 * time.Millisecond), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cacheIsNewer(tt.source, tt.sourceOK, tt.cached, tt.cachedOK))
		})
	}
}

func TestResolve_CachesCompiledDocuments(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Foo.java")
	writeFile(t, source, "package a; public class Foo {}")
	setModTime(t, source, time.Now().Add(-time.Hour))

	unit := &m.CompilationUnit{Package: "a"}
	docs := m.Documents{"a.Foo": {Package: "a", Name: "Foo", Text: "Foo\n===\n"}}

	parser := adaptermocks.NewMockJavaParser(t)
	parser.EXPECT().Parse(source, []byte("package a; public class Foo {}")).Return(unit, nil).Once()

	compiler := adaptermocks.NewMockDocCompiler(t)
	compiler.EXPECT().Compile(unit).Return(docs).Once()

	wf := &workflow{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		JavaParser:      parser,
		DocCompiler:     compiler,
	}
	store := adapter.NewMemoryCacheStore(time.Now)

	first, err := wf.Resolve(context.Background(), store, m.Path(source))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, docs, first.Documents)
	assert.Equal(t, 1, store.Len())

	second, err := wf.Resolve(context.Background(), store, m.Path(source))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, docs, second.Documents)
}

func TestResolve_TieRecompiles(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Foo.java")
	writeFile(t, source, "package a; public class Foo {}")

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	setModTime(t, source, stamp)

	parser := adaptermocks.NewMockJavaParser(t)
	parser.EXPECT().Parse(source, mock.Anything).Return(&m.CompilationUnit{}, nil).Twice()

	compiler := adaptermocks.NewMockDocCompiler(t)
	compiler.EXPECT().Compile(mock.Anything).Return(m.Documents{}).Twice()

	wf := &workflow{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		JavaParser:      parser,
		DocCompiler:     compiler,
	}
	store := adapter.NewMemoryCacheStore(func() time.Time { return stamp.Add(500 * time.Millisecond) })

	for range 2 {
		result, err := wf.Resolve(context.Background(), store, m.Path(source))
		require.NoError(t, err)
		assert.False(t, result.Cached)
	}
}

func TestResolve_StaleRecordRecompiles(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "src", "Foo.java")
	writeFile(t, source, "package a;\npublic class Foo {}\n")
	setModTime(t, source, time.Now().Add(-time.Hour))

	store := adapter.NewFSCacheStore(m.Path(filepath.Join(root, "cache")))
	key := store.Key(m.Path(source))
	wf := newLocalWorkflow()

	first, err := wf.Resolve(context.Background(), store, m.Path(source))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Contains(t, first.Documents, "a.Foo")

	writeFile(t, source, "package a;\npublic class Bar {}\n")
	setModTime(t, source, time.Now().Add(time.Hour))

	second, err := wf.Resolve(context.Background(), store, m.Path(source))
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.Contains(t, second.Documents, "a.Bar")
	assert.NotContains(t, second.Documents, "a.Foo")

	cached, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, second.Documents, cached)
}

func TestResolve_CorruptRecordIsMiss(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "src", "Foo.java")
	writeFile(t, source, "package a;\n/** Foo. */\npublic class Foo {}\n")
	setModTime(t, source, time.Now().Add(-time.Hour))

	cacheDir := filepath.Join(root, "cache")
	store := adapter.NewFSCacheStore(m.Path(cacheDir))
	record := filepath.Join(cacheDir, store.Key(m.Path(source)))
	writeFile(t, record, "not a gob record")

	result, err := newLocalWorkflow().Resolve(context.Background(), store, m.Path(source))
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Contains(t, result.Documents, "a.Foo")

	cached, err := store.Get(context.Background(), store.Key(m.Path(source)))
	require.NoError(t, err)
	assert.Equal(t, result.Documents, cached)
}

func TestResolve_WithoutStore(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Foo.java")
	writeFile(t, source, "package a; public class Foo { public static class Inner {} }")

	result, err := newLocalWorkflow().Resolve(context.Background(), nil, m.Path(source))
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, m.Path(source), result.Source)
	assert.Len(t, result.Documents, 2)
}

func TestResolve_ParseFailure(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Broken.java")
	writeFile(t, source, "package a;\npublic class Broken {\n  void run() {\n")

	_, err := newLocalWorkflow().Resolve(context.Background(), adapter.NewMemoryCacheStore(time.Now), m.Path(source))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailure)

	var syntaxErr *m.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, source, syntaxErr.File)
	assert.Contains(t, err.Error(), source)
}

func TestResolve_ParserErrorWithoutLocation(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Foo.java")
	writeFile(t, source, "class Foo {}")

	parser := adaptermocks.NewMockJavaParser(t)
	parser.EXPECT().Parse(source, mock.Anything).Return(nil, errors.New("boom")).Once()

	wf := &workflow{SourceFSAdapter: adapter.NewLocalSourceFSAdapter(), JavaParser: parser}

	_, err := wf.Resolve(context.Background(), nil, m.Path(source))
	require.ErrorIs(t, err, ErrParseFailure)
	assert.Contains(t, err.Error(), source)
}

func TestResolveAll_KeepsSourceOrder(t *testing.T) {
	root := t.TempDir()

	var sources []m.Path

	for i := range 12 {
		path := filepath.Join(root, fmt.Sprintf("T%02d.java", i))
		writeFile(t, path, fmt.Sprintf("package p; public class T%02d {}", i))
		sources = append(sources, m.Path(path))
	}

	var (
		mu   sync.Mutex
		seen []m.Path
	)

	results, err := newLocalWorkflow().ResolveAll(context.Background(), nil, sources, 4, func(result m.FileResult) {
		mu.Lock()
		defer mu.Unlock()

		seen = append(seen, result.Source)
	})
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for i, result := range results {
		assert.Equal(t, sources[i], result.Source)
		assert.Contains(t, result.Documents, fmt.Sprintf("p.T%02d", i))
	}

	assert.ElementsMatch(t, sources, seen)
}

func TestResolveAll_StopsOnFirstError(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "Good.java")
	bad := filepath.Join(root, "Bad.java")
	writeFile(t, good, "public class Good {}")
	writeFile(t, bad, "public class Bad {")

	_, err := newLocalWorkflow().ResolveAll(context.Background(), nil, []m.Path{m.Path(good), m.Path(bad)}, 0, nil)
	require.ErrorIs(t, err, ErrParseFailure)
}

func TestResolveAll_MissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "Gone.java")

	_, err := newLocalWorkflow().ResolveAll(context.Background(), adapter.NewMemoryCacheStore(time.Now), []m.Path{m.Path(missing)}, 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
