package domain

import (
	"errors"
	"fmt"
	"sort"
)

const (
	FileStatusAdded    = "added"
	FileStatusModified = "modified"
	FileStatusDeleted  = "deleted"
	FileStatusRenamed  = "renamed"
)

// ErrEmptyRecord indicates a ChangeRecord with neither side populated.
var ErrEmptyRecord = errors.New("change record has neither a from-file nor a to-file")

// FileFragment is one side (old or new) of a reconstructed hunk.
type FileFragment struct {
	Name      string `json:"name"`      // path relative to the repository root
	StartLine int    `json:"startLine"` // 1-based starting line in this file version
	LineCount int    `json:"lineCount"` // number of lines the fragment spans
	Content   string `json:"content"`   // reconstructed text, newline-terminated per line
}

// ChangeRecord pairs the old and new fragments reconstructed from one hunk.
// FromFile is nil when the file was newly added; ToFile is nil when the file
// was deleted. At least one side is always populated.
type ChangeRecord struct {
	FromFile *FileFragment `json:"fromFile,omitempty"`
	ToFile   *FileFragment `json:"toFile,omitempty"`
}

// Status derives the file status from the record's populated sides.
func (r ChangeRecord) Status() string {
	switch {
	case r.FromFile == nil && r.ToFile == nil:
		return ""
	case r.FromFile == nil:
		return FileStatusAdded
	case r.ToFile == nil:
		return FileStatusDeleted
	case r.FromFile.Name != r.ToFile.Name:
		return FileStatusRenamed
	default:
		return FileStatusModified
	}
}

// Key identifies a record within a ChangeSet. Equality is deliberately keyed
// on file name and start line per side rather than whole-value equality, so
// identical hunk bodies in different files never collide.
func (r ChangeRecord) Key() string {
	return fmt.Sprintf("%s|%s", fragmentKey(r.FromFile), fragmentKey(r.ToFile))
}

func fragmentKey(f *FileFragment) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%s:%d", f.Name, f.StartLine)
}

// ChangeSet is a deduplicating, unordered collection of ChangeRecords.
type ChangeSet struct {
	records map[string]ChangeRecord
}

// NewChangeSet creates an empty ChangeSet.
func NewChangeSet() ChangeSet {
	return ChangeSet{records: make(map[string]ChangeRecord)}
}

// Add inserts a record, replacing any existing record with the same key.
// A record with neither side populated is rejected.
func (s ChangeSet) Add(r ChangeRecord) error {
	if r.FromFile == nil && r.ToFile == nil {
		return ErrEmptyRecord
	}
	s.records[r.Key()] = r
	return nil
}

// Contains reports whether an equivalent record is already present.
func (s ChangeSet) Contains(r ChangeRecord) bool {
	_, ok := s.records[r.Key()]
	return ok
}

// Len returns the number of distinct records.
func (s ChangeSet) Len() int {
	return len(s.records)
}

// Records returns the records in a stable order (sorted by key) so callers
// can render and compare deterministically. Membership semantics are
// unaffected.
func (s ChangeSet) Records() []ChangeRecord {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ChangeRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.records[k])
	}
	return out
}
