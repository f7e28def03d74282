package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/usecase/journal"
)

func listCommand() *cli.Command {
	var (
		cfg config
		all bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "Show every recorded revision instead of the latest one",
			Sources:     cli.EnvVars("KENSHO_LIST_ALL"),
			Destination: &all,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "list",
		Usage:     "List journal entries of a month",
		ArgsUsage: "[month]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := cfg.resolve(); err != nil {
				return err
			}

			today := civil.DateOf(time.Now())
			month := int(today.Month)
			if c.Args().Len() > 0 {
				m, err := strconv.Atoi(c.Args().Get(0))
				if err != nil || m < 1 || m > 12 {
					return goerr.Wrap(model.ErrInvalidMonth, "month must be a number between 1 and 12",
						goerr.V("arg", c.Args().Get(0)))
				}
				month = m
			}

			period, err := model.MonthlyPeriod(today, month)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := journal.New(repo, nil)
			entries, err := uc.List(ctx, period, journal.ListOptions{IncludeHistory: all})
			if err != nil {
				return goerr.Wrap(err, "failed to list entries")
			}

			for _, e := range entries {
				answered := 0
				for _, a := range e.Answers {
					if a.Text != "" {
						answered++
					}
				}
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\t%d/%d\n",
					e.Date, e.Kind, e.WrittenAt.Format("2006-01-02 15:04:05"), answered, len(e.Answers))
			}

			return nil
		},
	}
}
