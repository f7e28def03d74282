package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted kensho configuration. Every field has a working
// default; the file only needs to exist when the defaults are not wanted.
type Config struct {
	// JournalDir holds the entry database and archived reports
	JournalDir string `toml:"journal_dir"`
	// Model is the generative model used for monthly summaries
	Model string `toml:"model"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		JournalDir: "~/.kensho",
		Model:      "gemini-2.5-flash",
		LogLevel:   "info",
	}
}

// Path returns the configuration file location, ~/.kensho/config.toml
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".kensho", "config.toml"), nil
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a present but unparsable file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return goerr.Wrap(err, "failed to encode config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return goerr.Wrap(err, "failed to create config directory", goerr.V("path", path))
	}

	// Restricted permissions, the file may name private locations
	if err := os.WriteFile(path, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write config file", goerr.V("path", path))
	}

	return nil
}

// ResolveJournalDir expands a leading ~ in JournalDir to the home directory.
func (c *Config) ResolveJournalDir() (string, error) {
	return ExpandHome(c.JournalDir)
}

// ExpandHome expands a leading ~ or ~/ prefix in path.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve home directory")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
