package model

import "time"

// ArtifactKind identifies the kind of generated output file.
type ArtifactKind string

const (
	// ArtifactDocument is the page of a single documentable unit.
	ArtifactDocument ArtifactKind = "document"
	// ArtifactPackageIndex is the index page of a package.
	ArtifactPackageIndex ArtifactKind = "package-index"
	// ArtifactToc is the top-level table of contents.
	ArtifactToc ArtifactKind = "toc"
)

// WriteOutcome is the result of writing one artifact.
type WriteOutcome int

const (
	// Written indicates the destination file was created or overwritten.
	Written WriteOutcome = iota
	// Skipped indicates the destination was newer than its source and left untouched.
	Skipped
)

func (o WriteOutcome) String() string {
	switch o {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// WriteEvent reports the outcome of writing one artifact.
type WriteEvent struct {
	Path    Path
	Kind    ArtifactKind
	Outcome WriteOutcome
}

// BuildSummary aggregates the totals of a build run.
type BuildSummary struct {
	Sources   int
	Cached    int
	Compiled  int
	Documents int
	Packages  int
	Written   int
	Skipped   int
	Duration  time.Duration
}

// Record accumulates a write event into the summary.
func (s *BuildSummary) Record(event WriteEvent) {
	switch event.Outcome {
	case Written:
		s.Written++
	case Skipped:
		s.Skipped++
	}
}
