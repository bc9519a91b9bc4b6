package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/oWretch/npm-git-diff/internal/adapter/cli"
	"github.com/oWretch/npm-git-diff/internal/adapter/git"
	"github.com/oWretch/npm-git-diff/internal/adapter/observability"
	"github.com/oWretch/npm-git-diff/internal/config"
	"github.com/oWretch/npm-git-diff/internal/usecase/changes"
	"github.com/oWretch/npm-git-diff/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Cancellable context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "gitchanges",
		EnvPrefix:   "GITCHANGES",
	})
	if err != nil {
		return err
	}

	repoDir := cfg.Git.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}

	logger := observability.NewDefaultLogger(
		observability.ParseLevel(cfg.Observability.Logging.Level),
		observability.ParseFormat(cfg.Observability.Logging.Format),
	)

	format := cfg.Output.Format
	if format == "" {
		format = cli.DetectDefaultFormat(os.Stdout)
	}

	// The lister is built per invocation so the --repo flag can target a
	// repository other than the configured one.
	newLister := func(dir string) cli.ChangeLister {
		if dir == "" {
			dir = "."
		}
		return changes.NewService(git.NewEngine(dir, cfg.Git.Executable), logger)
	}

	root := cli.NewRootCommand(cli.Dependencies{
		NewLister:           newLister,
		DefaultRepo:         repoDir,
		DefaultContextLines: cfg.Diff.ContextLines,
		DefaultFormat:       format,
		Version:             version.Version(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted")
		}
		return err
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gitchanges"))
	}
	return paths
}
