package adapter

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mbarton/javasphinx/internal/rst"
)

type javadocTag struct {
	name string
	arg  string
	text string
}

type javadoc struct {
	description string
	tags        []javadocTag
}

var (
	blockTagPattern = regexp.MustCompile(`^@([A-Za-z]+)\b\s*(.*)$`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// parseJavadoc strips comment delimiters and leading asterisks and splits the
// comment into its main description and block tags.
func parseJavadoc(raw string) javadoc {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "/**")
	body = strings.TrimSuffix(body, "*/")

	var (
		doc     javadoc
		desc    []string
		current *javadocTag
	)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t\r")

		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = strings.TrimPrefix(trimmed, "*")
			trimmed = strings.TrimPrefix(trimmed, " ")
			line = trimmed
		}

		if match := blockTagPattern.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			doc.tags = append(doc.tags, javadocTag{name: match[1], text: match[2]})
			current = &doc.tags[len(doc.tags)-1]

			continue
		}

		if current != nil {
			current.text += "\n" + line
			continue
		}

		desc = append(desc, line)
	}

	doc.description = strings.TrimSpace(strings.Join(desc, "\n"))

	for i := range doc.tags {
		tag := &doc.tags[i]
		tag.text = strings.TrimSpace(tag.text)

		switch tag.name {
		case "param", "throws", "exception":
			fields := strings.Fields(tag.text)
			if len(fields) > 0 {
				tag.arg = fields[0]
				tag.text = strings.TrimSpace(strings.TrimPrefix(tag.text, fields[0]))
			}
		}
	}

	return doc
}

// javadocToRST converts a raw Javadoc comment into reST: the description as
// paragraphs followed by a field list for the block tags.
func javadocToRST(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc := parseJavadoc(raw)

	var parts []string

	if desc := htmlToRST(expandInlineTags(doc.description)); desc != "" {
		parts = append(parts, desc)
	}

	var fields []string

	for _, tag := range doc.tags {
		text := singleLine(htmlToRST(expandInlineTags(tag.text)))

		switch tag.name {
		case "param":
			fields = append(fields, strings.TrimSpace(":param "+tag.arg+": "+text))
		case "return", "returns":
			fields = append(fields, strings.TrimSpace(":return: "+text))
		case "throws", "exception":
			fields = append(fields, strings.TrimSpace(":throws "+tag.arg+": "+text))
		case "see":
			fields = append(fields, ":see: "+seeReference(tag.text))
		case "deprecated", "since", "author", "version":
			fields = append(fields, strings.TrimSpace(":"+tag.name+": "+text))
		}
	}

	if len(fields) > 0 {
		parts = append(parts, strings.Join(fields, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

func seeReference(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "<") || strings.HasPrefix(text, `"`) {
		return singleLine(htmlToRST(text))
	}

	ref, label, _ := strings.Cut(text, " ")

	return javaRef(ref, strings.TrimSpace(label))
}

func javaRef(ref, label string) string {
	if label == "" {
		return ":java:ref:`" + ref + "`"
	}

	return ":java:ref:`" + label + " <" + ref + ">`"
}

func singleLine(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// expandInlineTags rewrites Javadoc inline tags such as {@code x} and
// {@link Foo#bar} into HTML elements so they survive HTML parsing.
func expandInlineTags(text string) string {
	var b strings.Builder

	for {
		start := strings.Index(text, "{@")
		if start < 0 {
			b.WriteString(text)
			break
		}

		end := matchingBrace(text, start)
		if end < 0 {
			b.WriteString(text)
			break
		}

		b.WriteString(text[:start])

		inner := text[start+2 : end]
		name, arg, _ := strings.Cut(inner, " ")
		arg = strings.TrimSpace(arg)

		switch name {
		case "code", "value":
			b.WriteString("<code>" + html.EscapeString(arg) + "</code>")
		case "literal":
			b.WriteString(html.EscapeString(arg))
		case "link", "linkplain":
			ref, label, _ := strings.Cut(arg, " ")
			b.WriteString(`<javadoc-link data-ref="` + html.EscapeString(ref) + `">` +
				html.EscapeString(strings.TrimSpace(label)) + "</javadoc-link>")
		case "inheritDoc", "docRoot":
		default:
			b.WriteString(html.EscapeString(arg))
		}

		text = text[end+1:]
	}

	return b.String()
}

func matchingBrace(text string, start int) int {
	depth := 0

	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// htmlToRST renders a Javadoc HTML fragment as reST.
func htmlToRST(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return rst.Escape(singleLine(fragment))
	}

	var conv htmlConverter
	for _, n := range nodes {
		conv.walk(n)
	}

	return normalizeParagraphs(conv.b.String())
}

type htmlConverter struct {
	b strings.Builder
}

func (c *htmlConverter) blockBreak() {
	c.b.WriteString("\n\n")
}

func (c *htmlConverter) children(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
}

func (c *htmlConverter) inline(n *html.Node) string {
	var sub htmlConverter
	sub.children(n)

	return singleLine(sub.b.String())
}

func (c *htmlConverter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.b.WriteString(rst.Escape(spacePattern.ReplaceAllString(n.Data, " ")))
		return
	case html.ElementNode:
	default:
		c.children(n)
		return
	}

	switch n.Data {
	case "p", "div", "blockquote", "dl", "table":
		c.blockBreak()
		c.children(n)
		c.blockBreak()

	case "br":
		c.b.WriteString("\n")

	case "code", "tt", "samp", "kbd":
		c.b.WriteString(rst.Literal(singleLine(textContent(n))))

	case "b", "strong":
		if text := c.inline(n); text != "" {
			c.b.WriteString("**" + text + "**")
		}

	case "i", "em", "var", "cite":
		if text := c.inline(n); text != "" {
			c.b.WriteString("*" + text + "*")
		}

	case "a":
		text := c.inline(n)

		href := attr(n, "href")
		if href == "" {
			c.b.WriteString(text)
			return
		}

		if text == "" {
			text = href
		}

		c.b.WriteString("`" + text + " <" + href + ">`_")

	case "javadoc-link":
		c.b.WriteString(javaRef(attr(n, "data-ref"), c.inline(n)))

	case "pre":
		c.blockBreak()
		c.b.WriteString("::\n\n")

		for _, line := range strings.Split(strings.Trim(textContent(n), "\n"), "\n") {
			c.b.WriteString("    " + line + "\n")
		}

		c.blockBreak()

	case "ul", "ol":
		bullet := "* "
		if n.Data == "ol" {
			bullet = "#. "
		}

		c.blockBreak()

		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode {
				continue
			}

			c.b.WriteString(bullet + c.inline(li) + "\n")
		}

		c.blockBreak()

	default:
		c.children(n)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(textContent(child))
	}

	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

// normalizeParagraphs trims trailing space and collapses runs of blank lines.
// Literal blocks keep their indentation; other lines lose leading space.
func normalizeParagraphs(text string) string {
	var (
		out   []string
		blank bool
	)

	inLiteral := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")

		if strings.TrimSpace(line) == "" {
			blank = len(out) > 0
			continue
		}

		if strings.HasSuffix(line, "::") {
			inLiteral = true
		} else if !strings.HasPrefix(line, "    ") {
			inLiteral = false
		}

		if !inLiteral || !strings.HasPrefix(line, "    ") {
			line = strings.TrimLeft(line, " ")
		}

		if blank {
			out = append(out, "")
			blank = false
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
