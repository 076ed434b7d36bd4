package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// SourceSuffix is the file name suffix of Java source files.
const SourceSuffix = ".java"

// IsSource reports whether the file name looks like a Java source file.
func IsSource(name string) bool {
	return strings.HasSuffix(name, SourceSuffix)
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}
