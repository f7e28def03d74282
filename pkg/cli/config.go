package cli

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/vass-cornelius/kensho/pkg/adapter"
	fileconfig "github.com/vass-cornelius/kensho/pkg/config"
	"github.com/vass-cornelius/kensho/pkg/repository"
	"github.com/vass-cornelius/kensho/pkg/utils/logging"
)

// config holds configuration values for one command run
type config struct {
	// Config file
	configPath string

	// Journal
	journalDir string

	// Logging
	logLevel string

	// Adapters
	geminiAPIKey string
	geminiModel  string

	resolved *fileconfig.Config
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to config file",
			Sources:     cli.EnvVars("KENSHO_CONFIG"),
			Destination: &cfg.configPath,
		},
		&cli.StringFlag{
			Name:        "journal-dir",
			Aliases:     []string{"j"},
			Usage:       "Directory holding the journal database and reports",
			Sources:     cli.EnvVars("KENSHO_JOURNAL_DIR"),
			Destination: &cfg.journalDir,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("KENSHO_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// llmFlags returns flags for LLM-related configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Generative model used for summaries",
			Sources:     cli.EnvVars("KENSHO_GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
	}
}

// resolve merges the config file with flag and environment overrides.
// Precedence: flag > environment > file > built-in default. Flags declare
// their environment sources, so both arrive through the same destinations.
func (cfg *config) resolve() (*fileconfig.Config, error) {
	if cfg.resolved != nil {
		return cfg.resolved, nil
	}

	path := cfg.configPath
	if path == "" {
		p, err := fileconfig.Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	fc, err := fileconfig.Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.journalDir != "" {
		fc.JournalDir = cfg.journalDir
	}
	if cfg.geminiModel != "" {
		fc.Model = cfg.geminiModel
	}
	if cfg.logLevel != "" {
		fc.LogLevel = cfg.logLevel
	}

	logging.Configure(fc.LogLevel)

	cfg.resolved = fc
	return fc, nil
}

// newRepository opens the entry store under the journal directory
func (cfg *config) newRepository() (repository.Repository, error) {
	fc, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	dir, err := fc.ResolveJournalDir()
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open journal store", goerr.V("dir", dir))
	}
	return repo, nil
}

// newGemini creates a new Gemini adapter instance
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	fc, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	if cfg.geminiAPIKey == "" {
		return nil, goerr.New("gemini-api-key is required (set GEMINI_API_KEY)")
	}

	gemini, err := adapter.NewGemini(ctx, cfg.geminiAPIKey, adapter.WithGenerativeModel(fc.Model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini client")
	}
	return gemini, nil
}

// newReportStore opens the report archive under the journal directory
func (cfg *config) newReportStore() (adapter.ReportStore, error) {
	fc, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	dir, err := fc.ResolveJournalDir()
	if err != nil {
		return nil, err
	}

	store, err := adapter.NewReportStore(filepath.Join(dir, "reports"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open report archive")
	}
	return store, nil
}
