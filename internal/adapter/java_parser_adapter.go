package adapter

import (
	"fmt"
	"strings"

	m "github.com/mbarton/javasphinx/internal/model"
)

// JavaParser turns Java source text into a declaration-level syntax tree.
// Method bodies, initializers and statements are skipped.
type JavaParser interface {
	// Parse returns the compilation unit for src. Malformed input yields a
	// *model.SyntaxError.
	Parse(filename string, src []byte) (*m.CompilationUnit, error)
}

// LocalJavaParser is the built-in JavaParser.
type LocalJavaParser struct{}

// NewLocalJavaParser constructs a LocalJavaParser.
func NewLocalJavaParser() *LocalJavaParser {
	return &LocalJavaParser{}
}

// Parse implements JavaParser.
func (p *LocalJavaParser) Parse(filename string, src []byte) (*m.CompilationUnit, error) {
	lexer := newJavaLexer(filename, src)

	tokens, err := lexer.tokenize()
	if err != nil {
		return nil, err
	}

	ps := &javaParser{file: filename, tokens: tokens}

	return ps.parseCompilationUnit()
}

var javaModifiers = map[string]bool{
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"final":        true,
	"abstract":     true,
	"native":       true,
	"synchronized": true,
	"transient":    true,
	"volatile":     true,
	"strictfp":     true,
	"default":      true,
	"sealed":       true,
	"non-sealed":   true,
}

type javaParser struct {
	file   string
	tokens []token
	pos    int
}

func (p *javaParser) peek() token {
	return p.peekAt(0)
}

func (p *javaParser) peekAt(offset int) token {
	if p.pos+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[p.pos+offset]
}

func (p *javaParser) next() token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return tok
}

func (p *javaParser) errorAt(tok token, format string, args ...any) *m.SyntaxError {
	msg := fmt.Sprintf(format, args...)
	if tok.kind == tokEOF {
		msg = "unexpected end of file: " + msg
	}

	return &m.SyntaxError{File: p.file, Line: tok.line, Column: tok.col, Msg: msg}
}

func (p *javaParser) expect(text string) (token, error) {
	tok := p.next()
	if !tok.is(text) {
		return tok, p.errorAt(tok, "expected %q, found %q", text, tok.text)
	}

	return tok, nil
}

func (p *javaParser) expectIdent() (token, error) {
	tok := p.next()
	if tok.kind != tokIdent {
		return tok, p.errorAt(tok, "expected identifier, found %q", tok.text)
	}

	return tok, nil
}

func (p *javaParser) parseCompilationUnit() (*m.CompilationUnit, error) {
	unit := &m.CompilationUnit{}

	for p.peek().kind != tokEOF {
		tok := p.peek()

		switch {
		case tok.is(";"):
			p.next()

		case tok.is("package"):
			p.next()

			name, err := p.parseQualifiedName(false)
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(";"); err != nil {
				return nil, err
			}

			unit.Package = name

		case tok.is("import"):
			p.next()

			static := false
			if p.peek().is("static") {
				p.next()

				static = true
			}

			name, err := p.parseQualifiedName(true)
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(";"); err != nil {
				return nil, err
			}

			if !static {
				unit.Imports = append(unit.Imports, name)
			}

		case p.atModuleDeclaration():
			if err := p.skipModuleDeclaration(); err != nil {
				return nil, err
			}

		default:
			doc, line := tok.doc, tok.line

			mods, err := p.parseModifiers()
			if err != nil {
				return nil, err
			}

			if p.peek().is("package") {
				// Annotated package declaration.
				continue
			}

			if !p.atTypeKeyword() {
				return nil, p.errorAt(p.peek(), "expected type declaration, found %q", p.peek().text)
			}

			decl, err := p.parseTypeDecl(mods, doc, line)
			if err != nil {
				return nil, err
			}

			unit.Types = append(unit.Types, decl)
		}
	}

	return unit, nil
}

func (p *javaParser) parseQualifiedName(allowWildcard bool) (string, error) {
	first, err := p.expectIdent()
	if err != nil {
		return "", err
	}

	parts := []string{first.text}

	for p.peek().is(".") {
		p.next()

		if allowWildcard && p.peek().is("*") {
			p.next()

			parts = append(parts, "*")

			break
		}

		part, err := p.expectIdent()
		if err != nil {
			return "", err
		}

		parts = append(parts, part.text)
	}

	return strings.Join(parts, "."), nil
}

func (p *javaParser) atModuleDeclaration() bool {
	tok := p.peek()
	if tok.is("open") && p.peekAt(1).is("module") {
		return true
	}

	return tok.is("module") && p.peekAt(1).kind == tokIdent
}

func (p *javaParser) skipModuleDeclaration() error {
	for !p.peek().is("{") {
		if p.peek().kind == tokEOF {
			return p.errorAt(p.peek(), "expected module body")
		}

		p.next()
	}

	return p.skipBalanced("{", "}")
}

// parseModifiers consumes modifiers and annotations. Annotations are dropped.
func (p *javaParser) parseModifiers() ([]string, error) {
	var mods []string

	for {
		tok := p.peek()

		switch {
		case tok.is("@") && !p.peekAt(1).is("interface"):
			if err := p.skipAnnotation(); err != nil {
				return nil, err
			}

		case tok.is("non") && p.peekAt(1).is("-") && p.peekAt(2).is("sealed"):
			p.next()
			p.next()
			p.next()

			mods = append(mods, "non-sealed")

		case tok.kind == tokIdent && javaModifiers[tok.text]:
			p.next()

			mods = append(mods, tok.text)

		default:
			return mods, nil
		}
	}
}

func (p *javaParser) skipAnnotation() error {
	if _, err := p.expect("@"); err != nil {
		return err
	}

	if _, err := p.parseQualifiedName(false); err != nil {
		return err
	}

	if p.peek().is("(") {
		return p.skipBalanced("(", ")")
	}

	return nil
}

// skipBalanced consumes tokens from an opening delimiter to its matching close.
func (p *javaParser) skipBalanced(open, closing string) error {
	start, err := p.expect(open)
	if err != nil {
		return err
	}

	depth := 1

	for depth > 0 {
		tok := p.next()

		switch {
		case tok.kind == tokEOF:
			return p.errorAt(tok, "unbalanced %q opened at line %d", open, start.line)
		case tok.is(open):
			depth++
		case tok.is(closing):
			depth--
		}
	}

	return nil
}

func (p *javaParser) atTypeKeyword() bool {
	tok := p.peek()

	switch {
	case tok.is("class"), tok.is("interface"), tok.is("enum"):
		return true
	case tok.is("@"):
		return p.peekAt(1).is("interface")
	case tok.is("record"):
		return p.peekAt(1).kind == tokIdent && (p.peekAt(2).is("(") || p.peekAt(2).is("<"))
	}

	return false
}

func (p *javaParser) parseTypeDecl(mods []string, doc string, line int) (*m.TypeDecl, error) {
	decl := &m.TypeDecl{Modifiers: mods, Doc: doc, Line: line}

	kw := p.next()
	if kw.is("@") {
		p.next()

		decl.Kind = m.KindAnnotation
	} else {
		decl.Kind = m.TypeKind(kw.text)
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	decl.Name = name.text

	header, err := p.collectUntil("{")
	if err != nil {
		return nil, err
	}

	sig := append(append([]string{}, mods...), string(decl.Kind), decl.Name)
	decl.Signature = joinTokens(append(sig, header...))

	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	if decl.Kind == m.KindEnum {
		ended, err := p.parseEnumConstants(decl)
		if err != nil {
			return nil, err
		}

		if ended {
			return decl, nil
		}
	}

	if err := p.parseTypeBody(decl); err != nil {
		return nil, err
	}

	return decl, nil
}

// collectUntil gathers signature tokens up to (not including) stop at
// nesting depth zero, dropping annotations.
func (p *javaParser) collectUntil(stop string) ([]string, error) {
	var out []string

	depth := 0

	for {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return nil, p.errorAt(tok, "expected %q", stop)
		case depth == 0 && tok.is(stop):
			return out, nil
		case tok.is("@") && !p.peekAt(1).is("interface"):
			if err := p.skipAnnotation(); err != nil {
				return nil, err
			}

			continue
		case tok.is("(") || tok.is("<") || tok.is("["):
			depth++
		case tok.is(")") || tok.is(">") || tok.is("]"):
			depth--
			if depth < 0 {
				return nil, p.errorAt(tok, "unexpected %q", tok.text)
			}
		case depth == 0 && (tok.is("{") || tok.is("}") || tok.is(";")):
			return nil, p.errorAt(tok, "expected %q, found %q", stop, tok.text)
		}

		out = append(out, p.next().text)
	}
}

// parseEnumConstants reads the constant list at the start of an enum body.
// It reports true when the closing brace of the body was consumed.
func (p *javaParser) parseEnumConstants(decl *m.TypeDecl) (bool, error) {
	for {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return false, p.errorAt(tok, "unterminated enum body")
		case tok.is("}"):
			p.next()
			return true, nil
		case tok.is(";"):
			p.next()
			return false, nil
		case tok.is(","):
			p.next()
			continue
		}

		doc, line := tok.doc, tok.line

		if _, err := p.parseModifiers(); err != nil {
			return false, err
		}

		name, err := p.expectIdent()
		if err != nil {
			return false, err
		}

		if p.peek().is("(") {
			if err := p.skipBalanced("(", ")"); err != nil {
				return false, err
			}
		}

		if p.peek().is("{") {
			if err := p.skipBalanced("{", "}"); err != nil {
				return false, err
			}
		}

		decl.Members = append(decl.Members, &m.Member{
			Kind:      m.MemberConstant,
			Name:      name.text,
			Modifiers: []string{"public", "static", "final"},
			Signature: name.text,
			Doc:       doc,
			Line:      line,
		})
	}
}

func (p *javaParser) parseTypeBody(decl *m.TypeDecl) error {
	for {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return p.errorAt(tok, "unterminated body of %s", decl.Name)
		case tok.is("}"):
			p.next()
			return nil
		case tok.is(";"):
			p.next()
			continue
		}

		doc, line := tok.doc, tok.line

		mods, err := p.parseModifiers()
		if err != nil {
			return err
		}

		switch {
		case p.peek().is("{"):
			// Instance or static initializer.
			if err := p.skipBalanced("{", "}"); err != nil {
				return err
			}

		case p.atTypeKeyword():
			nested, err := p.parseTypeDecl(mods, doc, line)
			if err != nil {
				return err
			}

			decl.Types = append(decl.Types, nested)

		default:
			members, err := p.parseMember(decl, mods, doc, line)
			if err != nil {
				return err
			}

			decl.Members = append(decl.Members, members...)
		}
	}
}

// parseMember parses a method, constructor or field declaration. A field
// declaration with several declarators yields one member per name.
func (p *javaParser) parseMember(decl *m.TypeDecl, mods []string, doc string, line int) ([]*m.Member, error) {
	var head []string

	depth := 0

	for {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return nil, p.errorAt(tok, "unterminated member declaration in %s", decl.Name)

		case tok.is("@"):
			if err := p.skipAnnotation(); err != nil {
				return nil, err
			}

			continue

		case depth == 0 && tok.is("("):
			return p.parseMethod(decl, mods, head, doc, line)

		case depth == 0 && (tok.is("=") || tok.is(";") || tok.is(",")):
			return p.parseFields(mods, head, doc, line)

		case depth == 0 && tok.is("{"):
			// Compact canonical constructor of a record.
			if decl.Kind == m.KindRecord && len(head) == 1 && head[0] == decl.Name {
				if err := p.skipBalanced("{", "}"); err != nil {
					return nil, err
				}

				return []*m.Member{{
					Kind:      m.MemberConstructor,
					Name:      decl.Name,
					Modifiers: mods,
					Signature: joinTokens(append(append([]string{}, mods...), decl.Name)),
					Doc:       doc,
					Line:      line,
				}}, nil
			}

			return nil, p.errorAt(tok, "unexpected %q in declaration", tok.text)

		case depth == 0 && (tok.is("}") || tok.is(")")):
			return nil, p.errorAt(tok, "unexpected %q in declaration", tok.text)

		case tok.is("<") || tok.is("["):
			depth++
		case tok.is(">") || tok.is("]"):
			depth--
		}

		head = append(head, p.next().text)
	}
}

func (p *javaParser) parseMethod(decl *m.TypeDecl, mods, head []string, doc string, line int) ([]*m.Member, error) {
	if len(head) == 0 {
		return nil, p.errorAt(p.peek(), "expected method name")
	}

	name := head[len(head)-1]
	prefix := head[:len(head)-1]

	kind := m.MemberMethod
	if name == decl.Name && !hasReturnType(prefix) {
		kind = m.MemberConstructor
	}

	params, err := p.collectParams()
	if err != nil {
		return nil, err
	}

	// Trailing clauses: array dimensions, throws, annotation defaults.
	var tail []string

	for {
		tok := p.peek()

		if tok.kind == tokEOF {
			return nil, p.errorAt(tok, "unterminated declaration of %s", name)
		}

		if tok.is("{") {
			if err := p.skipBalanced("{", "}"); err != nil {
				return nil, err
			}

			break
		}

		if tok.is(";") {
			p.next()
			break
		}

		if tok.is("default") {
			if err := p.skipExpression(); err != nil {
				return nil, err
			}

			continue
		}

		if tok.is("}") || tok.is(")") {
			return nil, p.errorAt(tok, "unexpected %q in declaration of %s", tok.text, name)
		}

		tail = append(tail, p.next().text)
	}

	sig := append(append([]string{}, mods...), head...)
	sig = append(sig, params...)
	sig = append(sig, tail...)

	return []*m.Member{{
		Kind:      kind,
		Name:      name,
		Modifiers: mods,
		Signature: joinTokens(sig),
		Doc:       doc,
		Line:      line,
	}}, nil
}

// hasReturnType reports whether the tokens before a method name contain
// anything other than type parameters.
func hasReturnType(prefix []string) bool {
	depth := 0

	for _, t := range prefix {
		switch t {
		case "<":
			depth++
		case ">":
			depth--
		default:
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

// collectParams consumes a parenthesised parameter list, dropping annotations.
func (p *javaParser) collectParams() ([]string, error) {
	open, err := p.expect("(")
	if err != nil {
		return nil, err
	}

	out := []string{open.text}
	depth := 1

	for depth > 0 {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return nil, p.errorAt(tok, "unbalanced %q opened at line %d", "(", open.line)
		case tok.is("@"):
			if err := p.skipAnnotation(); err != nil {
				return nil, err
			}

			continue
		case tok.is("("):
			depth++
		case tok.is(")"):
			depth--
		case tok.is("{") || tok.is("}") || tok.is(";"):
			return nil, p.errorAt(tok, "unexpected %q in parameter list", tok.text)
		}

		out = append(out, p.next().text)
	}

	return out, nil
}

// skipExpression consumes tokens up to the ';' or ',' that ends an
// initializer or annotation default, leaving the terminator in place.
func (p *javaParser) skipExpression() error {
	depth := 0

	for {
		tok := p.peek()

		switch {
		case tok.kind == tokEOF:
			return p.errorAt(tok, "unterminated expression")
		case tok.is("(") || tok.is("{") || tok.is("["):
			depth++
		case tok.is(")") || tok.is("}") || tok.is("]"):
			depth--
			if depth < 0 {
				return p.errorAt(tok, "unexpected %q", tok.text)
			}
		case depth == 0 && tok.is(";"):
			return nil
		case depth == 0 && tok.is(",") && p.atDeclaratorAfterComma():
			return nil
		}

		p.next()
	}
}

// atDeclaratorAfterComma distinguishes "int a = 1, b;" from the comma in
// "new HashMap<K, V>()" by looking at what follows the comma.
func (p *javaParser) atDeclaratorAfterComma() bool {
	name := p.peekAt(1)
	if name.kind != tokIdent {
		return false
	}

	after := p.peekAt(2)

	return after.is("=") || after.is(",") || after.is(";") || after.is("[")
}

func (p *javaParser) parseFields(mods, head []string, doc string, line int) ([]*m.Member, error) {
	if len(head) < 2 {
		return nil, p.errorAt(p.peek(), "expected field type and name")
	}

	typ := head[:len(head)-1]
	names := []string{head[len(head)-1]}

	for {
		tok := p.next()

		switch {
		case tok.is(";"):
			members := make([]*m.Member, 0, len(names))

			for _, name := range names {
				sig := append(append([]string{}, mods...), typ...)
				sig = append(sig, name)

				members = append(members, &m.Member{
					Kind:      m.MemberField,
					Name:      name,
					Modifiers: mods,
					Signature: joinTokens(sig),
					Doc:       doc,
					Line:      line,
				})
			}

			return members, nil

		case tok.is("="):
			if err := p.skipExpression(); err != nil {
				return nil, err
			}

		case tok.is(","):
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}

			names = append(names, name.text)

		case tok.is("["):
			if _, err := p.expect("]"); err != nil {
				return nil, err
			}

		default:
			return nil, p.errorAt(tok, "unexpected %q in field declaration", tok.text)
		}
	}
}

// joinTokens renders declaration tokens with conventional Java spacing.
func joinTokens(tokens []string) string {
	var b strings.Builder

	prev := ""

	for _, tok := range tokens {
		if needsSpace(prev, tok) {
			b.WriteByte(' ')
		}

		b.WriteString(tok)

		prev = tok
	}

	return b.String()
}

func needsSpace(prev, next string) bool {
	if prev == "" {
		return false
	}

	switch next {
	case ".", ",", ")", "]", ";", "...", "[", ">", "(":
		return false
	case "<":
		return javaModifiers[prev]
	}

	switch prev {
	case ".", "(", "[", "<", "@":
		return false
	}

	return true
}
