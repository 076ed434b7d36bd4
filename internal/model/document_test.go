package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_BaseName(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"top level", Document{Name: "Foo"}, "Foo"},
		{"nested", Document{Name: "Outer.Inner"}, "Outer-Inner"},
		{"deeply nested", Document{Name: "A.B.C"}, "A-B-C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.BaseName())
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Add("a.Foo", Document{Package: "a", Name: "Foo"}, "/src/a/Foo.java")
	reg.Add("a.Foo.Inner", Document{Package: "a", Name: "Foo.Inner"}, "/src/a/Foo.java")
	reg.Add("a.b.Bar", Document{Package: "a.b", Name: "Bar"}, "/src/a/b/Bar.java")
	reg.Add("a.Baz", Document{Package: "a", Name: "Baz"}, "/src/a/Baz.java")

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"a", "a.b"}, reg.Packages())
	assert.Equal(t, []string{"Baz", "Foo", "Foo-Inner"}, reg.Names("a"))
	assert.Equal(t, []string{"a.Baz", "a.Foo", "a.Foo.Inner", "a.b.Bar"}, reg.FullNames())
	assert.Empty(t, reg.Names("missing"))
}

func TestRegistry_AddReplacesExisting(t *testing.T) {
	reg := NewRegistry()
	reg.Add("a.Foo", Document{Package: "a", Name: "Foo", Text: "first"}, "/one/Foo.java")
	reg.Add("a.Foo", Document{Package: "a", Name: "Foo", Text: "second"}, "/two/Foo.java")

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, "second", reg.Documents["a.Foo"].Text)
	assert.Equal(t, Path("/two/Foo.java"), reg.Sources["a.Foo"])
}
