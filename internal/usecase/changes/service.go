package changes

import (
	"context"
	"fmt"

	"github.com/oWretch/npm-git-diff/internal/diff"
	"github.com/oWretch/npm-git-diff/internal/domain"
)

// GitEngine abstracts the git operations needed to produce a raw diff.
type GitEngine interface {
	// StageAll stages every pending change so the diff detects renames.
	StageAll(ctx context.Context) error

	// Diff returns unified diff text for the staged changes. An empty
	// paths slice means the whole repository; contextLines is the number
	// of unchanged lines surrounding each hunk.
	Diff(ctx context.Context, paths []string, contextLines int) (string, error)
}

// Logger provides structured logging for the changes use case.
type Logger interface {
	// LogWarning logs a warning message with structured fields.
	LogWarning(ctx context.Context, message string, fields map[string]interface{})

	// LogInfo logs an informational message with structured fields.
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
}

// Request describes one change-extraction call.
type Request struct {
	// Paths restricts the diff to the given repo-relative paths; empty
	// means the whole repository.
	Paths []string

	// ContextLines is forwarded to the diff generator; 0 means minimal
	// context. Must be non-negative.
	ContextLines int
}

// Result carries the deduplicated change set plus the parse diagnostics, so
// callers can inspect what was skipped without trawling logs.
type Result struct {
	Changes     domain.ChangeSet
	Diagnostics []diff.Diagnostic
}

// Service extracts structured change records from the repository state.
type Service struct {
	git    GitEngine
	logger Logger
}

// NewService wires the change extraction use case.
func NewService(git GitEngine, logger Logger) *Service {
	return &Service{git: git, logger: logger}
}

// GetChanges stages pending changes, generates a unified diff, and parses it
// into a deduplicated set of change records. Staging and diff failures are
// fatal and propagated; parse-level problems are reported as diagnostics and
// logged as warnings.
func (s *Service) GetChanges(ctx context.Context, req Request) (Result, error) {
	if req.ContextLines < 0 {
		return Result{}, fmt.Errorf("context lines must be non-negative, got %d", req.ContextLines)
	}

	if err := s.git.StageAll(ctx); err != nil {
		return Result{}, fmt.Errorf("stage changes: %w", err)
	}

	raw, err := s.git.Diff(ctx, req.Paths, req.ContextLines)
	if err != nil {
		return Result{}, fmt.Errorf("generate diff: %w", err)
	}

	parsed := diff.Parse(raw)
	for _, d := range parsed.Diagnostics {
		s.logWarning(ctx, "skipped malformed diff input", map[string]interface{}{
			"kind":   d.Kind.String(),
			"file":   d.File,
			"detail": d.Detail,
		})
	}

	set := domain.NewChangeSet()
	for _, rec := range parsed.Records {
		if err := set.Add(rec); err != nil {
			s.logWarning(ctx, "discarding invalid change record", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.logInfo(ctx, "extracted changes", map[string]interface{}{
		"records":     set.Len(),
		"diagnostics": len(parsed.Diagnostics),
	})

	return Result{Changes: set, Diagnostics: parsed.Diagnostics}, nil
}

func (s *Service) logWarning(ctx context.Context, message string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.LogWarning(ctx, message, fields)
}

func (s *Service) logInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.LogInfo(ctx, message, fields)
}
