package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	jsonout "github.com/oWretch/npm-git-diff/internal/adapter/output/json"
	textout "github.com/oWretch/npm-git-diff/internal/adapter/output/text"
	"github.com/oWretch/npm-git-diff/internal/domain"
	"github.com/oWretch/npm-git-diff/internal/usecase/changes"
)

// ChangeLister defines the dependency required to run the root command.
type ChangeLister interface {
	GetChanges(ctx context.Context, req changes.Request) (changes.Result, error)
}

// ListerFactory constructs a ChangeLister for the given repository
// directory. The CLI builds the lister per invocation so the --repo flag
// can point at a repository other than the configured one.
type ListerFactory func(repoDir string) ChangeLister

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	NewLister           ListerFactory
	Args                Arguments
	DefaultRepo         string
	DefaultContextLines int
	DefaultFormat       string // "json" or "text"; picked by the host via TTY detection when config leaves it empty
	Version             string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	var contextLines int
	var repoDir string
	var format string

	root := &cobra.Command{
		Use:   "gitchanges [paths...]",
		Short: "Extract structured line-level change records from git diffs",
		Long: `gitchanges stages pending changes, diffs them, and reports per-hunk
change records: which lines were removed from the old file version and
added in the new one, with line ranges and reconstructed contents.`,
		Version: versionString,
		Args:    cobra.ArbitraryArgs,
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.Flags().IntVarP(&contextLines, "context", "C", deps.DefaultContextLines, "unchanged context lines around each hunk")
	root.Flags().StringVar(&repoDir, "repo", deps.DefaultRepo, "repository directory to extract changes from")
	root.Flags().StringVarP(&format, "output", "o", deps.DefaultFormat, "output format: json or text")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if deps.NewLister == nil {
			return fmt.Errorf("no change lister configured")
		}
		lister := deps.NewLister(repoDir)
		result, err := lister.GetChanges(cmd.Context(), changes.Request{
			Paths:        args,
			ContextLines: contextLines,
		})
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), format, result.Changes)
	}

	return root
}

func render(out io.Writer, format string, set domain.ChangeSet) error {
	switch format {
	case "text":
		return textout.NewWriter(out).Write(set)
	case "json", "":
		return jsonout.NewWriter(out).Write(set)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
