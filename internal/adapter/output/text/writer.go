package text

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oWretch/npm-git-diff/internal/domain"
)

var titleCaser = cases.Title(language.English)

// Writer renders a change set as a human-readable listing.
type Writer struct {
	out io.Writer
}

// NewWriter creates a text writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write prints one block per change record: a status headline, the line
// ranges of each side, and the reconstructed contents with -/+ gutters.
func (w *Writer) Write(set domain.ChangeSet) error {
	records := set.Records()
	if len(records) == 0 {
		_, err := fmt.Fprintln(w.out, "No changes.")
		return err
	}

	for _, rec := range records {
		if err := w.writeRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRecord(rec domain.ChangeRecord) error {
	if _, err := fmt.Fprintf(w.out, "%s %s\n", titleCaser.String(rec.Status()), headline(rec)); err != nil {
		return err
	}
	if rec.FromFile != nil {
		if err := writeFragment(w.out, "-", rec.FromFile); err != nil {
			return err
		}
	}
	if rec.ToFile != nil {
		if err := writeFragment(w.out, "+", rec.ToFile); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.out)
	return err
}

func headline(rec domain.ChangeRecord) string {
	switch rec.Status() {
	case domain.FileStatusAdded:
		return rec.ToFile.Name
	case domain.FileStatusDeleted:
		return rec.FromFile.Name
	case domain.FileStatusRenamed:
		return fmt.Sprintf("%s -> %s", rec.FromFile.Name, rec.ToFile.Name)
	default:
		return rec.ToFile.Name
	}
}

func writeFragment(out io.Writer, gutter string, f *domain.FileFragment) error {
	if _, err := fmt.Fprintf(out, "  %s lines %d,%d\n", gutter, f.StartLine, f.LineCount); err != nil {
		return err
	}
	if f.Content == "" {
		return nil
	}
	for _, line := range strings.Split(strings.TrimSuffix(f.Content, "\n"), "\n") {
		if _, err := fmt.Fprintf(out, "  %s %s\n", gutter, line); err != nil {
			return err
		}
	}
	return nil
}
