//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/prompts"
	"github.com/farcloser/tonegate/internal/report"
	"github.com/farcloser/tonegate/internal/tonelog"
)

var errMissingFlags = errors.New("both --dir and --out are required")

// The flags are checked in the action rather than marked Required so that
// subcommands stay reachable without them.
func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Directory containing tone .log files (required)",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Output markdown report path (required)",
		},
	}
}

func reportAction(_ context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	out := cmd.String("out")

	if dir == "" || out == "" {
		return errMissingFlags
	}

	return runReport(dir, out)
}

func runReport(dir, out string) error {
	logs, err := parseDir(dir)
	if err != nil {
		return err
	}

	files := report.Build(prompts.Builtin(), logs)
	doc := report.Render(filepath.Base(dir), files)

	return report.WriteFile(out, doc)
}

// parseDir parses every *.log file in dir, in name order.
func parseDir(dir string) ([]*tonegate.ParsedLog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	var logs []*tonegate.ParsedLog

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".log") {
			continue
		}

		parsed, err := tonelog.Parse(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		logs = append(logs, parsed)
	}

	return logs, nil
}
