package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vass-cornelius/kensho/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	gt.V(t, cfg.JournalDir).Equal("~/.kensho")
	gt.V(t, cfg.Model).Equal("gemini-2.5-flash")
	gt.V(t, cfg.LogLevel).Equal("info")
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	gt.NoError(t, err)
	gt.V(t, cfg).Equal(config.Default())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &config.Config{
		JournalDir: "/tmp/journal",
		Model:      "gemini-2.5-pro",
		LogLevel:   "debug",
	}
	gt.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	gt.NoError(t, err)
	gt.V(t, loaded).Equal(cfg)

	info, err := os.Stat(path)
	gt.NoError(t, err)
	gt.V(t, info.Mode().Perm()).Equal(os.FileMode(0600))
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0600))

	cfg, err := config.Load(path)
	gt.NoError(t, err)
	gt.V(t, cfg.LogLevel).Equal("debug")
	gt.V(t, cfg.JournalDir).Equal("~/.kensho")
	gt.V(t, cfg.Model).Equal("gemini-2.5-flash")
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("journal_dir = [broken"), 0600))

	_, err := config.Load(path)
	gt.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	gt.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/.kensho", filepath.Join(home, ".kensho")},
		{"absolute path untouched", "/var/data", "/var/data"},
		{"relative path untouched", "journal", "journal"},
		{"tilde in the middle untouched", "/data/~/x", "/data/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ExpandHome(tt.in)
			gt.NoError(t, err)
			gt.V(t, got).Equal(tt.want)
		})
	}
}

func TestResolveJournalDir(t *testing.T) {
	home, err := os.UserHomeDir()
	gt.NoError(t, err)

	cfg := config.Default()
	dir, err := cfg.ResolveJournalDir()
	gt.NoError(t, err)
	gt.V(t, dir).Equal(filepath.Join(home, ".kensho"))
}
