package model

import "fmt"

// ConflictPolicy decides whether an existing destination file may be overwritten.
type ConflictPolicy string

const (
	// PolicyStrict fails the run when a destination file already exists.
	PolicyStrict ConflictPolicy = "strict"
	// PolicyForce always overwrites.
	PolicyForce ConflictPolicy = "force"
	// PolicyUpdate overwrites unless the destination is newer than its source.
	PolicyUpdate ConflictPolicy = "update"
)

// ResolveConflictPolicy maps the --force/--update flag pair to a policy.
func ResolveConflictPolicy(force, update bool) (ConflictPolicy, error) {
	switch {
	case force && update:
		return "", fmt.Errorf("--force and --update are mutually exclusive")
	case force:
		return PolicyForce, nil
	case update:
		return PolicyUpdate, nil
	default:
		return PolicyStrict, nil
	}
}

// AllowsOverwrite reports whether an existing file may be replaced at all.
func (p ConflictPolicy) AllowsOverwrite() bool {
	return p == PolicyForce || p == PolicyUpdate
}

func (p ConflictPolicy) String() string {
	return string(p)
}
