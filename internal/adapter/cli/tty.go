package cli

import (
	"os"

	"golang.org/x/term"
)

// DetectDefaultFormat picks the output format when configuration leaves it
// unset: human-readable text on a terminal, JSON when piped.
func DetectDefaultFormat(f *os.File) string {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		return "text"
	}
	return "json"
}
