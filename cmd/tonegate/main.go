package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/tonegate/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "QA report tool for amp-sim tone preset logs",
		Version: version.Version() + " " + version.Commit(),
		Flags:   reportFlags(),
		Action:  reportAction,
		Commands: []*cli.Command{
			inspectCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
