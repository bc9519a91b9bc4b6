package config

import "fmt"

// Config represents the full application configuration.
type Config struct {
	Git           GitConfig           `yaml:"git"`
	Diff          DiffConfig          `yaml:"diff"`
	Output        OutputConfig        `yaml:"output"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GitConfig locates the repository and the git binary.
type GitConfig struct {
	RepositoryDir string `yaml:"repositoryDir"`
	// Executable selects the git binary. Empty means the platform default;
	// keeping it configuration rather than an environment lookup keeps the
	// adapters testable.
	Executable string `yaml:"executable"`
}

// DiffConfig controls diff generation.
type DiffConfig struct {
	ContextLines int `yaml:"contextLines"`
}

// OutputConfig selects the rendering of extracted changes.
type OutputConfig struct {
	Format string `yaml:"format"` // "json", "text", or "" for TTY detection
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warning, error
	Format string `yaml:"format"` // human or json
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Diff.ContextLines < 0 {
		return fmt.Errorf("diff.contextLines must be non-negative, got %d", c.Diff.ContextLines)
	}
	switch c.Output.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("output.format must be json or text, got %q", c.Output.Format)
	}
	return nil
}
