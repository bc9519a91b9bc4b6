package json_test

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonout "github.com/oWretch/npm-git-diff/internal/adapter/output/json"
	"github.com/oWretch/npm-git-diff/internal/domain"
)

func TestWriteEncodesRecords(t *testing.T) {
	set := domain.NewChangeSet()
	require.NoError(t, set.Add(domain.ChangeRecord{
		FromFile: &domain.FileFragment{Name: "main.go", StartLine: 10, LineCount: 2, Content: "old\nctx\n"},
		ToFile:   &domain.FileFragment{Name: "main.go", StartLine: 10, LineCount: 2, Content: "new\nctx\n"},
	}))

	var buf bytes.Buffer
	writer := jsonout.NewWriter(&buf)
	require.NoError(t, writer.Write(set))

	var decoded struct {
		Changes []domain.ChangeRecord `json:"changes"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Count)
	require.Len(t, decoded.Changes, 1)
	assert.Equal(t, "main.go", decoded.Changes[0].FromFile.Name)
	assert.Equal(t, "new\nctx\n", decoded.Changes[0].ToFile.Content)
}

func TestWriteOmitsAbsentSides(t *testing.T) {
	set := domain.NewChangeSet()
	require.NoError(t, set.Add(domain.ChangeRecord{
		ToFile: &domain.FileFragment{Name: "new.txt", StartLine: 1, LineCount: 1, Content: "hi\n"},
	}))

	var buf bytes.Buffer
	require.NoError(t, jsonout.NewWriter(&buf).Write(set))

	assert.NotContains(t, buf.String(), "fromFile")
	assert.Contains(t, buf.String(), "toFile")
}

func TestWriteEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonout.NewWriter(&buf).Write(domain.NewChangeSet()))

	assert.Contains(t, buf.String(), `"changes": []`)
	assert.Contains(t, buf.String(), `"count": 0`)
}
