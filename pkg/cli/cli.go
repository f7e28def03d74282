package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "kensho",
		Usage: "Structured work journal with AI monthly reviews",
		Commands: []*cli.Command{
			dailyCommand(),
			sowCommand(),
			eowCommand(),
			summaryCommand(),
			listCommand(),
			configCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
