//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/output"
	"github.com/farcloser/tonegate/internal/prompts"
	"github.com/farcloser/tonegate/internal/tonelog"
)

var errInspectArgs = errors.New("expected exactly one argument: path to a tone log")

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Parse and audit a single tone log",
		ArgsUsage: "<file.log>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:  "prompts",
				Usage: "YAML file overriding the builtin prompt catalog",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errInspectArgs, cmd.NArg())
			}

			return runInspect(cmd.Args().First(), cmd.String("format"), cmd.String("prompts"))
		},
	}
}

func runInspect(path, formatName, catalogPath string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	catalog := prompts.Builtin()

	if catalogPath != "" {
		catalog, err = prompts.Load(catalogPath)
		if err != nil {
			return err
		}
	}

	parsed, err := tonelog.Parse(path)
	if err != nil {
		return err
	}

	spec := prompts.Lookup(catalog, parsed.Filename)
	flags := tonegate.Audit(spec, parsed)

	data := &format.Data{
		Object: path,
		Meta:   output.ResultToMap(parsed, spec, flags),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
