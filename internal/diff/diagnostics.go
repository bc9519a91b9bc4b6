package diff

import "fmt"

// DiagnosticKind classifies a recoverable parse failure.
type DiagnosticKind int

const (
	// DiagMissingHeaders indicates a file section without the expected
	// "---" / "+++" header pair; the whole section was skipped.
	DiagMissingHeaders DiagnosticKind = iota
	// DiagBadHunkHeader indicates a hunk whose @@ location header did not
	// match the unified-diff pattern; the hunk was skipped.
	DiagBadHunkHeader
	// DiagOrphanLine indicates a body line referencing a side that was not
	// allocated (e.g. a removed line inside an added file); the line was
	// skipped.
	DiagOrphanLine
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagMissingHeaders:
		return "missing-headers"
	case DiagBadHunkHeader:
		return "bad-hunk-header"
	case DiagOrphanLine:
		return "orphan-line"
	default:
		return "unknown"
	}
}

// Diagnostic describes one skipped piece of the input.
type Diagnostic struct {
	Kind   DiagnosticKind
	File   string // file the problem was found in, when known
	Detail string // offending line or a short description
}

func (d Diagnostic) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.File, d.Detail)
}
