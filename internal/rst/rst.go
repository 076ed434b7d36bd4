// Package rst builds reStructuredText documents from headings, paragraphs and directives.
package rst

import (
	"strings"
	"unicode/utf8"
)

const indent = "   "

// Node is anything that can be rendered into a document.
type Node interface {
	render(b *strings.Builder, depth int)
}

// Document is an ordered sequence of reST nodes.
type Document struct {
	nodes []Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddHeading appends a section title underlined with char.
func (d *Document) AddHeading(title string, char rune) {
	d.nodes = append(d.nodes, heading{title: title, char: char})
}

// AddParagraph appends a block of text. Empty text is ignored.
func (d *Document) AddParagraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	d.nodes = append(d.nodes, paragraph(text))
}

// AddObject appends an arbitrary node, typically a Directive.
func (d *Document) AddObject(node Node) {
	d.nodes = append(d.nodes, node)
}

// Build renders the document.
func (d *Document) Build() string {
	var b strings.Builder

	for _, node := range d.nodes {
		node.render(&b, 0)
	}

	return b.String()
}

type heading struct {
	title string
	char  rune
}

func (h heading) render(b *strings.Builder, depth int) {
	prefix := strings.Repeat(indent, depth)
	b.WriteString(prefix + h.title + "\n")
	b.WriteString(prefix + strings.Repeat(string(h.char), utf8.RuneCountInString(h.title)) + "\n\n")
}

type paragraph string

func (p paragraph) render(b *strings.Builder, depth int) {
	writeIndented(b, string(p), depth)
	b.WriteString("\n")
}

type option struct {
	name  string
	value string
}

// Directive is a reST explicit markup block such as ".. toctree::".
type Directive struct {
	name     string
	argument string
	options  []option
	content  []string
	children []Node
}

// NewDirective creates a directive with an optional argument.
func NewDirective(name, argument string) *Directive {
	return &Directive{name: name, argument: argument}
}

// AddOption appends a ":name: value" option line.
func (d *Directive) AddOption(name, value string) *Directive {
	d.options = append(d.options, option{name: name, value: value})
	return d
}

// AddContent appends body lines. A trailing newline is trimmed.
func (d *Directive) AddContent(text string) *Directive {
	text = strings.TrimRight(text, "\n")
	d.content = append(d.content, strings.Split(text, "\n")...)

	return d
}

// AddParagraph appends a paragraph to the directive body.
func (d *Directive) AddParagraph(text string) *Directive {
	if strings.TrimSpace(text) == "" {
		return d
	}

	d.children = append(d.children, paragraph(text))

	return d
}

// AddObject nests a node inside the directive body.
func (d *Directive) AddObject(node Node) *Directive {
	d.children = append(d.children, node)
	return d
}

func (d *Directive) render(b *strings.Builder, depth int) {
	prefix := strings.Repeat(indent, depth)

	b.WriteString(prefix + ".. " + d.name + "::")

	if d.argument != "" {
		b.WriteString(" " + d.argument)
	}

	b.WriteString("\n")

	for _, opt := range d.options {
		line := prefix + indent + ":" + opt.name + ":"
		if opt.value != "" {
			line += " " + opt.value
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n")

	if len(d.content) > 0 {
		for _, line := range d.content {
			if line == "" {
				b.WriteString("\n")
				continue
			}

			b.WriteString(prefix + indent + line + "\n")
		}

		b.WriteString("\n")
	}

	for _, child := range d.children {
		child.render(b, depth+1)
	}
}

// Literal renders text as inline literal markup.
func Literal(text string) string {
	if text == "" {
		return ""
	}

	return "``" + text + "``"
}

// Escape backslash-escapes characters that reST would otherwise interpret inline.
func Escape(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"`", "\\`",
		"_", `\_`,
		"|", `\|`,
	)

	return replacer.Replace(text)
}

func writeIndented(b *strings.Builder, text string, depth int) {
	prefix := strings.Repeat(indent, depth)

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}

		b.WriteString(prefix + line + "\n")
	}
}
