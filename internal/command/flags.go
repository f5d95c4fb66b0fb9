// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/differ"
	"github.com/tfctl/fatool/internal/extract"
)

// newSchemaFlag constructs --schema. Each command gets its own instance.
func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "list the fields of the structured output",
		HideDefault: true,
	}
}

// newExitCodeFlag constructs --exit-code for comparison and search commands.
func newExitCodeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "exit-code",
		Aliases: []string{"x"},
		Usage:   "exit with status 1 when the inputs differ or nothing matched",
		Value:   false,
	}
}

// NewGlobalFlags returns the presentation flags every command accepts.
// params[0] is the command namespace and params[1] the config file; when both
// are given, --color and --output may also come from the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "highlight differences with color",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FATOOL_COLOR"),
		),
		Value: false,
	}

	out := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FATOOL_OUTPUT"),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if len(params) == 2 {
		NameSpacedValueChainFromConfigFile(params[0], params[1], color.Name, &color.Sources)
		NameSpacedValueChainFromConfigFile(params[0], params[1], out.Name, &out.Sources)
	}

	flags = []cli.Flag{
		color,
		out,
		&cli.BoolFlag{
			Name:    "pager",
			Aliases: []string{"p"},
			Usage:   "page text output when writing to a terminal",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort tables by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewMinFlag constructs the --min flag of the strings command, optionally
// backed by the config file given in params[1].
func NewMinFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:    "min",
		Aliases: []string{"m"},
		Usage:   "minimum length of a printable run",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FATOOL_MIN"),
		),
		Value: extract.DefaultMinLength,
		Validator: func(value int) error {
			return FlagValidators(value, PositiveValidator)
		},
	}

	if len(params) == 2 {
		NameSpacedValueChainFromConfigFile(params[0], params[1], flag.Name, &flag.Sources)
	}

	return
}

// NewFilterFlag constructs the --filter flag that selects result rows, see
// package filters for the expression syntax.
func NewFilterFlag(keys string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "keep rows matching key/operator/value expressions on " + keys,
	}
}

// NewContextFlag constructs the --context flag giving the number of lines
// shown on each side of a differing line.
func NewContextFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:    "context",
		Aliases: []string{"C"},
		Usage:   "lines of context around each difference",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FATOOL_CONTEXT"),
		),
		Value: differ.DefaultRadius,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}

	if len(params) == 2 {
		NameSpacedValueChainFromConfigFile(params[0], params[1], flag.Name, &flag.Sources)
	}

	return
}

// NameSpacedValueChainFromConfigFile appends namespaced and global config
// file sources for the named flag to chain. An empty path adds nothing.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	src := yaml.YAML(ns+"."+name, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)

	src = yaml.YAML(name, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)
}
