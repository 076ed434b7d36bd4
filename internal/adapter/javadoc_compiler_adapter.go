package adapter

import (
	"strings"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/internal/rst"
)

// DocCompiler turns a parsed compilation unit into rendered documents, one per
// documentable (non-private) type including nested types.
type DocCompiler interface {
	Compile(unit *m.CompilationUnit) m.Documents
}

// JavadocRSTCompiler renders documents as reST using the Sphinx java domain
// directives (java:type, java:method, ...).
type JavadocRSTCompiler struct{}

// NewJavadocRSTCompiler constructs a JavadocRSTCompiler.
func NewJavadocRSTCompiler() *JavadocRSTCompiler {
	return &JavadocRSTCompiler{}
}

type memberSection struct {
	title     string
	kind      m.MemberKind
	directive string
}

var memberSections = []memberSection{
	{title: "Enum Constants", kind: m.MemberConstant, directive: "java:field"},
	{title: "Fields", kind: m.MemberField, directive: "java:field"},
	{title: "Constructors", kind: m.MemberConstructor, directive: "java:constructor"},
	{title: "Methods", kind: m.MemberMethod, directive: "java:method"},
}

// Compile implements DocCompiler.
func (c *JavadocRSTCompiler) Compile(unit *m.CompilationUnit) m.Documents {
	docs := make(m.Documents)

	for _, decl := range unit.Types {
		c.compileType(unit, decl, "", docs)
	}

	return docs
}

func (c *JavadocRSTCompiler) compileType(unit *m.CompilationUnit, decl *m.TypeDecl, outer string, docs m.Documents) {
	if m.HasModifier(decl.Modifiers, "private") {
		return
	}

	name := decl.Name
	if outer != "" {
		name = outer + "." + decl.Name
	}

	fullName := name
	if unit.Package != "" {
		fullName = unit.Package + "." + name
	}

	docs[fullName] = m.Document{
		Package: unit.Package,
		Name:    name,
		Text:    c.render(unit, decl, name, outer),
	}

	for _, nested := range decl.Types {
		c.compileType(unit, nested, name, docs)
	}
}

func (c *JavadocRSTCompiler) render(unit *m.CompilationUnit, decl *m.TypeDecl, name, outer string) string {
	doc := rst.NewDocument()

	for _, imp := range unit.Imports {
		i := strings.LastIndex(imp, ".")
		if i < 0 || strings.HasSuffix(imp, ".*") {
			continue
		}

		doc.AddObject(rst.NewDirective("java:import", imp[:i]+" "+imp[i+1:]))
	}

	doc.AddHeading(name, '=')

	if unit.Package != "" {
		doc.AddObject(rst.NewDirective("java:package", unit.Package).AddOption("noindex", ""))
	}

	typ := rst.NewDirective("java:type", decl.Signature)
	if outer != "" {
		typ.AddOption("outertype", outer)
	}

	typ.AddParagraph(javadocToRST(decl.Doc))
	doc.AddObject(typ)

	for _, section := range memberSections {
		var members []*m.Member

		for _, member := range decl.Members {
			if member.Kind == section.kind && !m.HasModifier(member.Modifiers, "private") {
				members = append(members, member)
			}
		}

		if len(members) == 0 {
			continue
		}

		doc.AddHeading(section.title, '-')

		for _, member := range members {
			signature := member.Signature
			if member.Kind == m.MemberConstant {
				signature = "public static final " + decl.Name + " " + member.Name
			}

			directive := rst.NewDirective(section.directive, signature).AddOption("outertype", name)
			directive.AddParagraph(javadocToRST(member.Doc))
			doc.AddObject(directive)
		}
	}

	return doc.Build()
}
