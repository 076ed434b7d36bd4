package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mbarton/javasphinx/internal/model"
)

func TestAggregate(t *testing.T) {
	results := []m.FileResult{
		{
			Source: "/src/a/Foo.java",
			Documents: m.Documents{
				"a.Foo":       {Package: "a", Name: "Foo", Text: "first"},
				"a.Foo.Inner": {Package: "a", Name: "Foo.Inner", Text: "inner"},
			},
		},
		{
			Source:    "/src/b/Bar.java",
			Documents: m.Documents{"b.Bar": {Package: "b", Name: "Bar", Text: "bar"}},
		},
		{
			Source:    "/src/other/Foo.java",
			Documents: m.Documents{"a.Foo": {Package: "a", Name: "Foo", Text: "second"}},
		},
		{Source: "/src/Empty.java", Documents: m.Documents{}},
	}

	registry := Aggregate(results)

	assert.Equal(t, []string{"a.Foo", "a.Foo.Inner", "b.Bar"}, registry.FullNames())
	assert.Equal(t, "second", registry.Documents["a.Foo"].Text)
	assert.Equal(t, m.Path("/src/other/Foo.java"), registry.Sources["a.Foo"])
	assert.Equal(t, []string{"a", "b"}, registry.Packages())
	assert.Equal(t, []string{"Foo", "Foo-Inner"}, registry.Names("a"))
}

func TestAggregate_Empty(t *testing.T) {
	registry := Aggregate(nil)

	assert.Zero(t, registry.Len())
	assert.Empty(t, registry.Packages())
}
