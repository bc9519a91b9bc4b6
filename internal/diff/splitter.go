package diff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/oWretch/npm-git-diff/internal/domain"
)

const (
	// fileMarker introduces each per-file section of git diff output.
	fileMarker = "diff --git"
	// nullDevice is the conventional path meaning "file did not exist on
	// this side".
	nullDevice = "/dev/null"

	oldHeaderPrefix = "--- "
	newHeaderPrefix = "+++ "
)

// hunkHeaderRe matches a hunk location header such as "@@ -10,3 +10,4 @@".
// The count groups are optional; the diff format omits a count of 1.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Hunk is one contiguous change block lifted out of a file section,
// ready for content reconstruction.
type Hunk struct {
	OldName  string
	NewName  string
	Status   string // one of the domain.FileStatus* values
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Body     []string // raw body lines, marker prefixes intact
}

// split segments raw diff text into hunks across all file sections.
// Recoverable problems are appended to diags; they never abort the split.
func split(raw string, diags *[]Diagnostic) []Hunk {
	var hunks []Hunk
	for _, section := range strings.Split(raw, fileMarker) {
		if strings.TrimSpace(section) == "" {
			continue
		}
		hunks = append(hunks, splitSection(section, diags)...)
	}
	return hunks
}

// splitSection parses one file section: the header pair, the file
// classification, and the hunks that follow.
func splitSection(section string, diags *[]Diagnostic) []Hunk {
	lines := strings.Split(section, "\n")

	// Everything before the old-file header is metadata (index lines, mode
	// changes, rename hints) and is discarded.
	i := 0
	for i < len(lines) && !strings.HasPrefix(lines[i], oldHeaderPrefix) {
		i++
	}
	if i+1 >= len(lines) || !strings.HasPrefix(lines[i+1], newHeaderPrefix) {
		*diags = append(*diags, Diagnostic{
			Kind:   DiagMissingHeaders,
			Detail: strings.TrimSpace(firstLine(section)),
		})
		return nil
	}

	oldName := parseHeaderName(lines[i][len(oldHeaderPrefix):], "a/")
	newName := parseHeaderName(lines[i+1][len(newHeaderPrefix):], "b/")
	status := classify(oldName, newName)

	var hunks []Hunk
	var current *Hunk
	for _, line := range lines[i+2:] {
		if strings.HasPrefix(line, "@@") {
			if current != nil {
				hunks = append(hunks, *current)
				current = nil
			}
			m := hunkHeaderRe.FindStringSubmatch(line)
			if m == nil {
				*diags = append(*diags, Diagnostic{
					Kind:   DiagBadHunkHeader,
					File:   displayName(oldName, newName),
					Detail: line,
				})
				// current stays nil, dropping the body of the bad hunk
				continue
			}
			current = &Hunk{
				OldName:  oldName,
				NewName:  newName,
				Status:   status,
				OldStart: atoi(m[1]),
				OldCount: atoiDefault(m[2], 1),
				NewStart: atoi(m[3]),
				NewCount: atoiDefault(m[4], 1),
			}
			continue
		}
		if current == nil {
			continue
		}
		// The final split on "\n" leaves a trailing empty string; a blank
		// context line in a real diff is " ", never "".
		if line == "" {
			continue
		}
		// "\ No newline at end of file" markers carry no content.
		if strings.HasPrefix(line, "\\ ") {
			continue
		}
		current.Body = append(current.Body, line)
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

// parseHeaderName extracts the repo-relative path from a header line value,
// stripping the a/ or b/ prefix convention. The null-device sentinel is
// preserved as-is.
func parseHeaderName(s, prefix string) string {
	s = strings.TrimRight(s, " \t\r")
	if s == nullDevice {
		return s
	}
	return strings.TrimPrefix(s, prefix)
}

func classify(oldName, newName string) string {
	switch {
	case oldName == nullDevice:
		return domain.FileStatusAdded
	case newName == nullDevice:
		return domain.FileStatusDeleted
	case oldName != newName:
		return domain.FileStatusRenamed
	default:
		return domain.FileStatusModified
	}
}

// displayName picks the meaningful file name for diagnostics.
func displayName(oldName, newName string) string {
	if newName == nullDevice {
		return oldName
	}
	return newName
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return atoi(s)
}
