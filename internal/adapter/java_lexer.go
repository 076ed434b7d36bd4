package adapter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mbarton/javasphinx/internal/model"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokChar
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
	doc  string // Javadoc comment immediately preceding the token
}

func (t token) is(text string) bool {
	return t.kind != tokEOF && t.kind != tokString && t.kind != tokChar && t.text == text
}

// javaLexer splits Java source into tokens. Comments are dropped except for
// Javadoc comments, which are attached to the next token.
type javaLexer struct {
	file string
	src  string
	pos  int
	line int
	col  int
	doc  string
}

func newJavaLexer(file string, src []byte) *javaLexer {
	text := string(src)
	text = strings.TrimPrefix(text, "\ufeff")

	return &javaLexer{file: file, src: text, line: 1, col: 1}
}

func (l *javaLexer) errorf(line, col int, msg string) *m.SyntaxError {
	return &m.SyntaxError{File: l.file, Line: line, Column: col, Msg: msg}
}

func (l *javaLexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

func (l *javaLexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

// tokenize returns every token of the source followed by a single EOF token.
func (l *javaLexer) tokenize() ([]token, error) {
	var tokens []token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)

		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *javaLexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}

	tok := token{line: l.line, col: l.col, doc: l.doc}
	l.doc = ""

	if l.pos >= len(l.src) {
		tok.kind = tokEOF
		return tok, nil
	}

	start := l.pos
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case isIdentStart(r):
		for l.pos < len(l.src) {
			r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
			if !isIdentPart(r) {
				break
			}

			l.advance()
		}

		tok.kind = tokIdent

	case isDigit(r) || (r == '.' && isDigit(rune(l.peekByte(1)))):
		l.scanNumber()

		tok.kind = tokNumber

	case r == '"':
		if err := l.scanString(); err != nil {
			return token{}, err
		}

		tok.kind = tokString

	case r == '\'':
		if err := l.scanQuoted('\'', "character literal not terminated"); err != nil {
			return token{}, err
		}

		tok.kind = tokChar

	default:
		if strings.HasPrefix(l.src[l.pos:], "...") || strings.HasPrefix(l.src[l.pos:], "::") ||
			strings.HasPrefix(l.src[l.pos:], "->") {
			l.advance()
			l.advance()

			if l.src[start:l.pos] == ".." {
				l.advance()
			}
		} else {
			l.advance()
		}

		tok.kind = tokPunct
	}

	tok.text = l.src[start:l.pos]

	return tok, nil
}

func (l *javaLexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			l.advance()

		case c == '/' && l.peekByte(1) == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}

		case c == '/' && l.peekByte(1) == '*':
			line, col := l.line, l.col
			start := l.pos

			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return l.errorf(line, col, "comment not terminated")
			}

			for l.pos < start+2+end+2 {
				l.advance()
			}

			comment := l.src[start:l.pos]
			if strings.HasPrefix(comment, "/**") && comment != "/**/" {
				l.doc = comment
			}

		default:
			return nil
		}
	}

	return nil
}

func (l *javaLexer) scanNumber() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case isDigit(rune(c)) || c == '.' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			l.advance()

			if (c == 'e' || c == 'E' || c == 'p' || c == 'P') && (l.peekByte(0) == '+' || l.peekByte(0) == '-') {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *javaLexer) scanString() error {
	if strings.HasPrefix(l.src[l.pos:], `"""`) {
		line, col := l.line, l.col

		l.advance()
		l.advance()
		l.advance()

		for l.pos < len(l.src) {
			if l.src[l.pos] == '\\' {
				l.advance()

				if l.pos < len(l.src) {
					l.advance()
				}

				continue
			}

			if strings.HasPrefix(l.src[l.pos:], `"""`) {
				l.advance()
				l.advance()
				l.advance()

				return nil
			}

			l.advance()
		}

		return l.errorf(line, col, "text block not terminated")
	}

	return l.scanQuoted('"', "string literal not terminated")
}

func (l *javaLexer) scanQuoted(quote rune, msg string) error {
	line, col := l.line, l.col

	l.advance()

	for l.pos < len(l.src) {
		r := l.advance()

		switch r {
		case '\\':
			if l.pos < len(l.src) {
				l.advance()
			}
		case quote:
			return nil
		case '\n':
			return l.errorf(line, col, msg)
		}
	}

	return l.errorf(line, col, msg)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
