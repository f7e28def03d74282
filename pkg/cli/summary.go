package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/usecase/summary"
	"github.com/vass-cornelius/kensho/pkg/utils/logging"
)

func summaryCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "summary",
		Usage:     "Generate a monthly review from recorded entries",
		ArgsUsage: "[month]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := cfg.resolve(); err != nil {
				return err
			}

			// An explicit month must name a real month; only an absent
			// argument selects the previous one.
			month := 0
			if c.Args().Len() > 0 {
				m, err := strconv.Atoi(c.Args().Get(0))
				if err != nil || m < 1 || m > 12 {
					return goerr.Wrap(model.ErrInvalidMonth, "month must be a number between 1 and 12",
						goerr.V("arg", c.Args().Get(0)))
				}
				month = m
			}

			// The credential is checked up front, before any journal I/O
			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			reports, err := cfg.newReportStore()
			if err != nil {
				return err
			}

			uc := summary.New(repo, gemini, summary.WithReportStore(reports))

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = " Analyzing journal entries..."
			s.Start()
			report, err := uc.Monthly(ctx, month)
			s.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Root().Writer, report.Text)
			if report.Archive != "" {
				logging.From(ctx).Info("report archived", "key", report.Archive)
			}

			return nil
		},
	}
}
