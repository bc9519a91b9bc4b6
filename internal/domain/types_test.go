package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oWretch/npm-git-diff/internal/domain"
)

func fragment(name string, start int) *domain.FileFragment {
	return &domain.FileFragment{Name: name, StartLine: start, LineCount: 1, Content: "line\n"}
}

func TestChangeRecordStatus(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.ChangeRecord
		expected string
	}{
		{
			name:     "added file has no from side",
			record:   domain.ChangeRecord{ToFile: fragment("new.go", 1)},
			expected: domain.FileStatusAdded,
		},
		{
			name:     "deleted file has no to side",
			record:   domain.ChangeRecord{FromFile: fragment("gone.go", 1)},
			expected: domain.FileStatusDeleted,
		},
		{
			name:     "renamed file has differing names",
			record:   domain.ChangeRecord{FromFile: fragment("old.go", 3), ToFile: fragment("new.go", 3)},
			expected: domain.FileStatusRenamed,
		},
		{
			name:     "modified file has matching names",
			record:   domain.ChangeRecord{FromFile: fragment("same.go", 3), ToFile: fragment("same.go", 3)},
			expected: domain.FileStatusModified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Status())
		})
	}
}

func TestChangeSetRejectsEmptyRecord(t *testing.T) {
	set := domain.NewChangeSet()

	err := set.Add(domain.ChangeRecord{})

	assert.ErrorIs(t, err, domain.ErrEmptyRecord)
	assert.Equal(t, 0, set.Len())
}

func TestChangeSetDeduplicatesEquivalentRecords(t *testing.T) {
	set := domain.NewChangeSet()
	record := domain.ChangeRecord{
		FromFile: fragment("main.go", 10),
		ToFile:   fragment("main.go", 10),
	}

	require.NoError(t, set.Add(record))
	require.NoError(t, set.Add(record))

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(record))
}

func TestChangeSetKeepsIdenticalHunksFromDifferentFiles(t *testing.T) {
	// Two files with byte-identical hunk bodies at the same line must remain
	// distinct records.
	set := domain.NewChangeSet()
	first := domain.ChangeRecord{
		FromFile: fragment("a.go", 10),
		ToFile:   fragment("a.go", 10),
	}
	second := domain.ChangeRecord{
		FromFile: fragment("b.go", 10),
		ToFile:   fragment("b.go", 10),
	}

	require.NoError(t, set.Add(first))
	require.NoError(t, set.Add(second))

	assert.Equal(t, 2, set.Len())
}

func TestChangeSetRecordsAreSorted(t *testing.T) {
	set := domain.NewChangeSet()
	require.NoError(t, set.Add(domain.ChangeRecord{FromFile: fragment("zz.go", 1), ToFile: fragment("zz.go", 1)}))
	require.NoError(t, set.Add(domain.ChangeRecord{FromFile: fragment("aa.go", 1), ToFile: fragment("aa.go", 1)}))

	records := set.Records()

	require.Len(t, records, 2)
	assert.Equal(t, "aa.go", records[0].FromFile.Name)
	assert.Equal(t, "zz.go", records[1].FromFile.Name)
}
