package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mbarton/javasphinx/internal/model"
)

func sampleRegistry() m.Registry {
	registry := m.NewRegistry()
	registry.Add("a.Foo", m.Document{Package: "a", Name: "Foo"}, "src/a/Foo.java")
	registry.Add("a.Foo.Inner", m.Document{Package: "a", Name: "Foo.Inner"}, "src/a/Foo.java")
	registry.Add("a.b.Bar", m.Document{Package: "a.b", Name: "Bar"}, "src/a/b/Bar.java")
	registry.Add("Main", m.Document{Name: "Main"}, "src/Main.java")

	return registry
}

func TestRenderListing_Table(t *testing.T) {
	text, err := RenderListing(sampleRegistry(), FormatTable)
	require.NoError(t, err)

	assert.Contains(t, text, "PACKAGE")
	assert.Contains(t, text, "Foo.Inner")
	assert.Contains(t, text, "src/a/b/Bar.java")
	assert.Contains(t, text, defaultPackageLabel)
	assert.Contains(t, text, "TOTAL PACKAGES 3")
}

func TestRenderListing_Tree(t *testing.T) {
	text, err := RenderListing(sampleRegistry(), FormatTree)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Javadoc", lines[0])
	assert.Contains(t, text, defaultPackageLabel)
	assert.Contains(t, text, "── a\n")
	assert.Contains(t, text, "── a.b\n")
	assert.Contains(t, text, "── Foo.Inner")
	assert.Contains(t, text, "── Bar")
}

func TestRenderListing_YAML(t *testing.T) {
	text, err := RenderListing(sampleRegistry(), FormatYAML)
	require.NoError(t, err)

	var got listing
	require.NoError(t, yaml.Unmarshal([]byte(text), &got))

	require.Len(t, got.Packages, 3)
	assert.Equal(t, "", got.Packages[0].Name)
	assert.Equal(t, "a", got.Packages[1].Name)
	assert.Equal(t, []listingType{
		{Name: "Foo", Document: "Foo", Source: "src/a/Foo.java"},
		{Name: "Foo.Inner", Document: "Foo-Inner", Source: "src/a/Foo.java"},
	}, got.Packages[1].Types)
	assert.Equal(t, "a.b", got.Packages[2].Name)
}

func TestRenderListing_UnknownFormat(t *testing.T) {
	_, err := RenderListing(sampleRegistry(), ListFormat("xml"))
	require.Error(t, err)
}

func TestParseListFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ListFormat
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"tree", FormatTree, false},
		{"yaml", FormatYAML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		got, err := ParseListFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSimpleUI_DisplayListing(t *testing.T) {
	cmd, out, _ := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayListing(context.Background(), sampleRegistry(), FormatTree))
	assert.True(t, strings.HasPrefix(out.String(), "Javadoc\n"))
}

func TestStartConfig(t *testing.T) {
	assert.Equal(t, ModeBuild, NewStartConfig().Mode())
	assert.Equal(t, ModeWatch, NewStartConfig(WithListMode(), WithWatchMode()).Mode())
	assert.Equal(t, "diff", NewStartConfig(WithDiffMode()).Mode().String())
	assert.Equal(t, "unknown", StartMode(42).String())
}
