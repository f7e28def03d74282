package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vass-cornelius/kensho/pkg/cli"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %s\n", err.Message)
		os.Exit(err.Code)
	}
}
