// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/scopyproject/scopygo/internal/output"
	"github.com/scopyproject/scopygo/internal/scan"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:   "scopy",
		Usage:  "Catalogue your digital books (and more)",
		Flags:  NewFlags(),
		Action: run,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// run drives the pipeline: discovery, sorting, formatting, output. Each
// stage consumes the prior stage's value; nothing is shared or retained
// between runs.
func run(ctx context.Context, cmd *cli.Command) error {
	cfg := ResolveConfig(cmd)
	log.Debugf("config: %+v", cfg)

	records, err := scan.New(scan.OSFS(), cfg).Run()
	if err != nil {
		if errors.Is(err, scan.ErrInvalidDir) {
			// A reported, non-fatal condition. No report, normal exit.
			fmt.Printf("%s is not a valid directory!\n", cfg.Dir)
			return nil
		}
		return err
	}
	if len(records) == 0 {
		return nil
	}

	output.SortRecords(records, cfg.SortBy, cfg.Descending)

	colorize := cmd.Bool("color") && cfg.Outfile == "" &&
		term.IsTerminal(int(os.Stdout.Fd()))
	report := output.FormatResults(records, cfg, colorize)

	return output.Spit(report, cfg.Outfile, os.Stdout)
}

// ResolveConfig derives the immutable scan.Config from the parsed flags.
// A malformed minsize is recovered locally with a console warning.
func ResolveConfig(cmd *cli.Command) scan.Config {
	minsize, err := scan.ParseMinSize(cmd.String("minsize"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "WARNING: Not a valid format for file size!")
		fmt.Fprintln(os.Stderr, "Using the default value: 0")
		minsize = 0
	}

	return scan.Config{
		Dir:        strings.ReplaceAll(cmd.String("directory"), "\\", "/"),
		Exts:       scan.NormalizeExtensions(cmd.StringSlice("ext")),
		NoSubs:     cmd.Bool("current"),
		Filters:    cmd.StringSlice("filter"),
		Ignore:     cmd.StringSlice("ignore"),
		MinSize:    minsize,
		Raw:        cmd.Bool("raw"),
		SortBy:     cmd.StringSlice("sort"),
		Descending: cmd.Bool("descending"),
		Verbose:    cmd.Bool("verbose"),
		Outfile:    scan.ResolveOutfile(cmd.String("outfile")),
	}
}
