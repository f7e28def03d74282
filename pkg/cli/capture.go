package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/prompt"
	"github.com/vass-cornelius/kensho/pkg/usecase/journal"
)

func dailyCommand() *cli.Command {
	return captureCommand("daily", "Record a daily log", model.KindDaily)
}

func sowCommand() *cli.Command {
	return captureCommand("sow", "Record start of week goals", model.KindStartOfWeek)
}

func eowCommand() *cli.Command {
	return captureCommand("eow", "Record an end of week review", model.KindEndOfWeek)
}

// captureCommand builds one interactive journaling command. The three entry
// kinds share the same flow and differ only in their prompt set.
func captureCommand(name, usage string, kind model.EntryKind) *cli.Command {
	var (
		cfg  config
		date string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "date",
			Aliases:     []string{"d"},
			Usage:       "Entry date as YYYY-MM-DD (default: today)",
			Sources:     cli.EnvVars("KENSHO_DATE"),
			Destination: &date,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := cfg.resolve(); err != nil {
				return err
			}

			entryDate, err := model.CaptureDate(date, time.Now())
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			source, err := prompt.NewReadline()
			if err != nil {
				return goerr.Wrap(err, "failed to open terminal input")
			}
			defer source.Close()

			uc := journal.New(repo, source, journal.WithOutput(c.Root().Writer))
			if _, err := uc.Capture(ctx, kind, entryDate); err != nil {
				return err
			}

			return nil
		},
	}
}
