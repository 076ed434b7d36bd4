package controller

import (
	"bytes"
	"fmt"

	"github.com/disiqueira/gotree/v3"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	m "github.com/mbarton/javasphinx/internal/model"
)

const defaultPackageLabel = "(default package)"

// RenderListing formats the documentable types of a registry.
func RenderListing(registry m.Registry, format ListFormat) (string, error) {
	switch format {
	case FormatTable, "":
		return renderListingTable(registry), nil
	case FormatTree:
		return renderListingTree(registry), nil
	case FormatYAML:
		return renderListingYAML(registry)
	default:
		return "", fmt.Errorf("unknown list format %q", format)
	}
}

func packageLabel(pkg string) string {
	if pkg == "" {
		return defaultPackageLabel
	}

	return pkg
}

func renderListingTable(registry m.Registry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Type", "Source"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, fullName := range registry.FullNames() {
		doc := registry.Documents[fullName]
		table.Append([]string{packageLabel(doc.Package), doc.Name, string(registry.Sources[fullName])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Packages %d", len(registry.Packages())),
		fmt.Sprintf("%d", registry.Len()),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderListingTree(registry m.Registry) string {
	root := gotree.New("Javadoc")
	packages := make(map[string]gotree.Tree)

	for _, fullName := range registry.FullNames() {
		doc := registry.Documents[fullName]

		node, ok := packages[doc.Package]
		if !ok {
			node = root.Add(packageLabel(doc.Package))
			packages[doc.Package] = node
		}

		node.Add(doc.Name)
	}

	return root.Print()
}

type listingType struct {
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
	Source   string `yaml:"source"`
}

type listingPackage struct {
	Name  string        `yaml:"name"`
	Types []listingType `yaml:"types"`
}

type listing struct {
	Packages []listingPackage `yaml:"packages"`
}

func renderListingYAML(registry m.Registry) (string, error) {
	var out listing

	index := make(map[string]int)

	for _, fullName := range registry.FullNames() {
		doc := registry.Documents[fullName]

		i, ok := index[doc.Package]
		if !ok {
			i = len(out.Packages)
			index[doc.Package] = i
			out.Packages = append(out.Packages, listingPackage{Name: doc.Package})
		}

		out.Packages[i].Types = append(out.Packages[i].Types, listingType{
			Name:     doc.Name,
			Document: doc.BaseName(),
			Source:   string(registry.Sources[fullName]),
		})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode listing: %w", err)
	}

	return string(data), nil
}
