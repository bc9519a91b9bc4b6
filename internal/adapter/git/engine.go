package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	goGit "github.com/go-git/go-git/v5"
)

// commandRunner executes an external command and returns its stdout.
// Injected in tests to avoid shelling out to a real git binary.
type commandRunner func(ctx context.Context, name string, args ...string) (string, error)

// Engine implements the changes.GitEngine port. Staging goes through go-git;
// diff generation shells out to the git binary, which is the only producer
// of the exact unified-diff text the parser consumes.
type Engine struct {
	repoDir    string
	executable string
	runner     commandRunner
}

// NewEngine constructs a git engine for the provided repository directory.
// executable selects the git binary; empty means the platform default.
// The executable is explicit configuration rather than an environment
// lookup so callers stay testable.
func NewEngine(repoDir, executable string) *Engine {
	if executable == "" {
		executable = DefaultExecutable()
	}
	return &Engine{repoDir: repoDir, executable: executable, runner: runCommand}
}

// DefaultExecutable returns the git binary name for the current platform.
func DefaultExecutable() string {
	if runtime.GOOS == "windows" {
		return "git.exe"
	}
	return "git"
}

// StageAll stages every pending change, including deletions and untracked
// files. Renames are only detected by the diff once both sides are staged.
func (e *Engine) StageAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo, err := goGit.PlainOpenWithOptions(e.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("open repo: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := worktree.AddWithOptions(&goGit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage all: %w", err)
	}
	return nil
}

// Diff returns the unified diff of the staged changes. An empty paths slice
// diffs the whole repository.
func (e *Engine) Diff(ctx context.Context, paths []string, contextLines int) (string, error) {
	args := []string{
		"-C", e.repoDir,
		"diff",
		"--cached",
		fmt.Sprintf("--unified=%d", contextLines),
		"--find-renames",
	}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	out, err := e.runner(ctx, e.executable, args...)
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return out, nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s %v: %w", name, args, ctx.Err())
		}
		if stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s %v: %w", name, args, err)
	}
	return stdout.String(), nil
}
