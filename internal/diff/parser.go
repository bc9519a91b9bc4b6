package diff

import "github.com/oWretch/npm-git-diff/internal/domain"

// Result carries the parsed change records together with the diagnostics
// collected along the way. Records appear in input order; deduplication is
// the caller's concern (see domain.ChangeSet).
type Result struct {
	Records     []domain.ChangeRecord
	Diagnostics []Diagnostic
}

// Parse turns raw git unified-diff text into structured change records.
// An empty input yields an empty result. Parse never fails: every malformed
// piece of the input is skipped and reported as a Diagnostic.
func Parse(raw string) Result {
	var res Result
	if raw == "" {
		return res
	}
	for _, h := range split(raw, &res.Diagnostics) {
		res.Records = append(res.Records, reconstruct(h, &res.Diagnostics))
	}
	return res
}
