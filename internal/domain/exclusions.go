package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const separator = string(filepath.Separator)

// NormalizeExcludes turns exclusion patterns into absolute directory prefixes
// terminated by the path separator.
//
// Absolute patterns are only cleaned. A relative pattern that already begins
// with root as typed on the command line is resolved against the working
// directory; any other relative pattern is resolved against root.
func NormalizeExcludes(root string, patterns []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	exclusions := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		var resolved string

		switch {
		case filepath.IsAbs(pattern):
			resolved = filepath.Clean(pattern)
		case underRoot(pattern, root):
			resolved, err = filepath.Abs(pattern)
			if err != nil {
				return nil, fmt.Errorf("resolve exclude %s: %w", pattern, err)
			}
		default:
			resolved = filepath.Join(absRoot, pattern)
		}

		exclusions = append(exclusions, withSeparator(resolved))
	}

	return exclusions, nil
}

// underRoot reports whether a relative pattern was typed with the root as its
// leading path components.
func underRoot(pattern, root string) bool {
	pattern, root = filepath.Clean(pattern), filepath.Clean(root)
	if root == "." {
		return false
	}

	return pattern == root || strings.HasPrefix(pattern, withSeparator(root))
}

// IsExcluded reports whether dir lies inside any of the exclusion prefixes.
// Matching is literal string prefix matching.
func IsExcluded(dir string, exclusions []string) bool {
	dir = withSeparator(dir)

	for _, exclusion := range exclusions {
		if strings.HasPrefix(dir, exclusion) {
			return true
		}
	}

	return false
}

func withSeparator(path string) string {
	if strings.HasSuffix(path, separator) {
		return path
	}

	return path + separator
}
