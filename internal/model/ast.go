package model

import "fmt"

// TypeKind is the declaration keyword of a Java type.
type TypeKind string

const (
	// KindClass is a class declaration.
	KindClass TypeKind = "class"
	// KindInterface is an interface declaration.
	KindInterface TypeKind = "interface"
	// KindEnum is an enum declaration.
	KindEnum TypeKind = "enum"
	// KindRecord is a record declaration.
	KindRecord TypeKind = "record"
	// KindAnnotation is an annotation type declaration (@interface).
	KindAnnotation TypeKind = "@interface"
)

// MemberKind classifies members of a type body.
type MemberKind string

const (
	// MemberField is a field declaration.
	MemberField MemberKind = "field"
	// MemberMethod is a method declaration.
	MemberMethod MemberKind = "method"
	// MemberConstructor is a constructor declaration.
	MemberConstructor MemberKind = "constructor"
	// MemberConstant is an enum constant.
	MemberConstant MemberKind = "constant"
)

// CompilationUnit is the declaration-level syntax tree of one source file.
type CompilationUnit struct {
	Package string
	Imports []string
	Types   []*TypeDecl
}

// TypeDecl is a class, interface, enum, record or annotation type.
type TypeDecl struct {
	Kind      TypeKind
	Name      string
	Modifiers []string
	Signature string // declaration header, e.g. "public class Foo<T> extends Bar"
	Doc       string // raw Javadoc comment including delimiters, if any
	Line      int
	Members   []*Member
	Types     []*TypeDecl // nested types
}

// Member is a field, method or constructor declared in a type body.
type Member struct {
	Kind      MemberKind
	Name      string
	Modifiers []string
	Signature string
	Doc       string
	Line      int
}

// HasModifier reports whether the modifier list contains mod.
func HasModifier(modifiers []string, mod string) bool {
	for _, m := range modifiers {
		if m == mod {
			return true
		}
	}

	return false
}

// SyntaxError is returned by the parser for malformed source text.
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}

	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}
