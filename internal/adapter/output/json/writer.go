package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oWretch/npm-git-diff/internal/domain"
)

// Writer renders a change set as indented JSON.
type Writer struct {
	out io.Writer
}

// NewWriter creates a JSON writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

type payload struct {
	Changes []domain.ChangeRecord `json:"changes"`
	Count   int                   `json:"count"`
}

// Write encodes the change set to the underlying writer.
func (w *Writer) Write(set domain.ChangeSet) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")

	records := set.Records()
	if records == nil {
		records = []domain.ChangeRecord{}
	}
	if err := encoder.Encode(payload{Changes: records, Count: len(records)}); err != nil {
		return fmt.Errorf("encode changes to json: %w", err)
	}
	return nil
}
