package domain

import (
	"errors"
	"fmt"

	m "github.com/mbarton/javasphinx/internal/model"
)

// Sentinel errors returned by the workflow.
var (
	ErrInvalidInputPath    = errors.New("input path is not a directory")
	ErrMissingOutput       = errors.New("an output directory is required")
	ErrParseFailure        = errors.New("failed to parse source")
	ErrDestinationConflict = errors.New("destination already exists")
	ErrOutputOutOfDate     = errors.New("generated output is out of date")
)

// ConflictError reports a destination file that may not be overwritten under
// the strict conflict policy.
type ConflictError struct {
	Path m.Path
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists. Use --force to overwrite", e.Path)
}

// Unwrap lets errors.Is match ErrDestinationConflict.
func (e *ConflictError) Unwrap() error {
	return ErrDestinationConflict
}

func parseFailure(source m.Path, err error) error {
	var syntaxErr *m.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.File != "" {
		return fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	return fmt.Errorf("%w %s: %w", ErrParseFailure, source, err)
}
