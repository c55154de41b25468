// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/scopyproject/scopygo/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewFlags builds the full flag surface. String and bool flags that make
// sense as persistent preferences also read defaults from scopy.yaml.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "directory",
			Aliases: []string{"d"},
			Usage:   "path to the directory to scan",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:    "ext",
			Aliases: []string{"e"},
			Usage:   "comma-separated list of wanted file extensions",
			Value:   []string{"pdf", "epub", "mobi"},
		},
		&cli.BoolFlag{
			Name:    "current",
			Aliases: []string{"c"},
			Usage:   "scan just the current directory, without subfolders",
		},
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "only include filenames containing these words",
		},
		&cli.StringFlag{
			Name:    "minsize",
			Aliases: []string{"m"},
			Usage:   "only include files larger than this size; k/m/g suffixes allowed, e.g. 64k",
			Value:   "0",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("minsize", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Usage:   "ignore subdirectories containing these words",
		},
		&cli.BoolFlag{
			Name:    "raw",
			Aliases: []string{"r"},
			Usage:   "keep the original filenames, don't beautify them",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("raw", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringSliceFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort files by [n]ame, [e]xtension, [s]ize, [d]irectory, or their combination",
			Value:   []string{"n"},
			Validator: func(keys []string) error {
				return SortKeysValidator(keys)
			},
		},
		&cli.BoolFlag{
			Name:    "descending",
			Aliases: []string{"z"},
			Usage:   "sort descending: from Z to A, from larger to smaller",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "output summary statistics at the top",
		},
		&cli.StringFlag{
			Name:    "outfile",
			Aliases: []string{"o"},
			Usage:   "save the results to this file instead of the console",
		},
		&cli.BoolWithInverseFlag{
			Name:  "color",
			Usage: "colorize column titles on console output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
		},
	}
}
