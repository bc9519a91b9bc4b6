package diff

import (
	"regexp"
	"strings"

	"github.com/oWretch/npm-git-diff/internal/domain"
)

// Marker stripping removes exactly one marker character and at most one
// following space. Trimming all leading whitespace instead would corrupt
// intentionally indented source lines.
var (
	removedMarkerRe = regexp.MustCompile(`^- ?`)
	addedMarkerRe   = regexp.MustCompile(`^\+ ?`)
	contextMarkerRe = regexp.MustCompile(`^ ?`)
)

// reconstruct replays one hunk's body against the old and new content
// buffers and emits the resulting change record. The from side is absent for
// added files, the to side for deleted files. Body lines referencing an
// absent side are skipped with a diagnostic.
func reconstruct(h Hunk, diags *[]Diagnostic) domain.ChangeRecord {
	var from, to *domain.FileFragment
	if h.Status != domain.FileStatusAdded {
		from = &domain.FileFragment{Name: h.OldName, StartLine: h.OldStart, LineCount: h.OldCount}
	}
	if h.Status != domain.FileStatusDeleted {
		to = &domain.FileFragment{Name: h.NewName, StartLine: h.NewStart, LineCount: h.NewCount}
	}

	for _, line := range h.Body {
		switch {
		case strings.HasPrefix(line, "-"):
			if from == nil {
				*diags = append(*diags, orphan(h, line))
				continue
			}
			from.Content += removedMarkerRe.ReplaceAllString(line, "") + "\n"
		case strings.HasPrefix(line, "+"):
			if to == nil {
				*diags = append(*diags, orphan(h, line))
				continue
			}
			to.Content += addedMarkerRe.ReplaceAllString(line, "") + "\n"
		default:
			if from == nil || to == nil {
				*diags = append(*diags, orphan(h, line))
				continue
			}
			text := contextMarkerRe.ReplaceAllString(line, "") + "\n"
			from.Content += text
			to.Content += text
		}
	}

	return domain.ChangeRecord{FromFile: from, ToFile: to}
}

func orphan(h Hunk, line string) Diagnostic {
	return Diagnostic{
		Kind:   DiagOrphanLine,
		File:   displayName(h.OldName, h.NewName),
		Detail: line,
	}
}
