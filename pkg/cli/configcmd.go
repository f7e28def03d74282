package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	fileconfig "github.com/vass-cornelius/kensho/pkg/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage kensho configuration",
		Commands: []*cli.Command{
			configInitCommand(),
			configShowCommand(),
		},
	}
}

func configInitCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "init",
		Usage: "Write a config file with the current settings",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			path := cfg.configPath
			if path == "" {
				p, err := fileconfig.Path()
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil {
				return goerr.New("config file already exists", goerr.V("path", path))
			}

			fc := fileconfig.Default()
			if cfg.journalDir != "" {
				fc.JournalDir = cfg.journalDir
			}
			if cfg.geminiModel != "" {
				fc.Model = cfg.geminiModel
			}
			if cfg.logLevel != "" {
				fc.LogLevel = cfg.logLevel
			}

			if err := fc.Save(path); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "✅ Wrote %s\n", path)
			return nil
		},
	}
}

func configShowCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fc, err := cfg.resolve()
			if err != nil {
				return err
			}

			dir, err := fc.ResolveJournalDir()
			if err != nil {
				return err
			}

			// The API key is never printed
			fmt.Fprintf(c.Root().Writer, "journal_dir\t%s\n", dir)
			fmt.Fprintf(c.Root().Writer, "model\t%s\n", fc.Model)
			fmt.Fprintf(c.Root().Writer, "log_level\t%s\n", fc.LogLevel)
			return nil
		},
	}
}
