// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/extract"
	"github.com/tfctl/fatool/internal/filters"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
)

// stringsCommandAction lists the printable runs of a file. The optional
// second argument overrides --min.
func stringsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) ([]extract.Run, error) {
		minLen, err := intArg(cmd, 1, "min", cmd.Int("min"))
		if err != nil {
			return nil, err
		}

		buf, err := newLoader(cmd).Bytes(ctx, cmd.Args().First())
		if err != nil {
			return nil, err
		}

		seq, err := extract.Runs(buf, minLen)
		if err != nil {
			return nil, err
		}

		runs := []extract.Run{}
		for r := range seq {
			runs = append(runs, r)
		}
		return filters.Apply(runs, cmd.String("filter"), runField), nil
	}

	render := func(w io.Writer, runs []extract.Run, opts output.Options, st output.Styles) {
		output.StringsReport(w, runs, opts, st)
	}

	return NewActionRunner("strings", fetch, render).Run(ctx, cmd)
}

// runField exposes a run to --filter.
func runField(r extract.Run, key string) (any, bool) {
	switch key {
	case "text":
		return r.Text, true
	case "offset":
		return r.Offset, true
	case "length":
		return len(r.Text), true
	}
	return nil, false
}

func stringsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "strings",
		Usage:     "extract printable strings from a file",
		UsageText: "fatool strings <file> [min] [options]",
		MinArgs:   1,
		Flags: []cli.Flag{
			NewMinFlag("strings", meta.Config.Source),
			NewFilterFlag("text, offset and length"),
		},
		Action: stringsCommandAction,
		Meta:   meta,
	}).Build()
}
