// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/differ"
	"github.com/tfctl/fatool/internal/hexdump"
	"github.com/tfctl/fatool/internal/loader"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
)

// TextComparison is a character comparison plus the detected encodings.
type TextComparison struct {
	differ.Result[rune] `yaml:",inline"`
	LeftEncoding        string `json:"left_encoding" yaml:"left_encoding"`
	RightEncoding       string `json:"right_encoding" yaml:"right_encoding"`

	left string
}

// LineComparison is a line comparison of two decoded files.
type LineComparison struct {
	differ.Result[string] `yaml:",inline"`

	left []string
}

// HexComparison is the structured form of a dual hex dump.
type HexComparison struct {
	Length     int      `json:"length" yaml:"length"`
	Mismatches int      `json:"mismatches" yaml:"mismatches"`
	Rows       []HexRow `json:"rows" yaml:"rows"`

	rows []hexdump.Row
}

// HexRow is one 16-byte row with hex cells for both sides and the indices,
// within the row, of the differing bytes.
type HexRow struct {
	Offset string   `json:"offset" yaml:"offset"`
	Left   []string `json:"left" yaml:"left"`
	Right  []string `json:"right" yaml:"right"`
	Diff   []int    `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// loadPair reads both positional inputs with read.
func loadPair[T any](ctx context.Context, cmd *cli.Command,
	read func(*loader.Loader, context.Context, string) (T, error)) (T, T, error) {
	var zero T
	l := newLoader(cmd)

	left, err := read(l, ctx, cmd.Args().Get(0))
	if err != nil {
		return zero, zero, err
	}
	right, err := read(l, ctx, cmd.Args().Get(1))
	if err != nil {
		return zero, zero, err
	}
	return left, right, nil
}

func readLines(l *loader.Loader, ctx context.Context, path string) ([]string, error) {
	lines, text, err := l.Lines(ctx, path)
	if err == nil {
		log.Debugf("%s: %d lines, %s", path, len(lines), text.Encoding)
	}
	return lines, err
}

func compareBytesCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (differ.Result[byte], error) {
		left, right, err := loadPair(ctx, cmd, (*loader.Loader).Bytes)
		if err != nil {
			return differ.Result[byte]{}, err
		}
		return differ.CompareBytes(left, right), nil
	}

	runner := NewActionRunner("comparebytes", fetch, output.ByteReport)
	runner.DiffersFn = func(res differ.Result[byte]) bool { return !res.Identical }
	return runner.Run(ctx, cmd)
}

func compareTextCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (TextComparison, error) {
		left, right, err := loadPair(ctx, cmd, (*loader.Loader).Text)
		if err != nil {
			return TextComparison{}, err
		}

		res, err := differ.CompareText(left.Content, right.Content)
		if err != nil {
			return TextComparison{}, err
		}
		return TextComparison{
			Result:        res,
			LeftEncoding:  left.Encoding,
			RightEncoding: right.Encoding,
			left:          left.Content,
		}, nil
	}

	render := func(w io.Writer, res TextComparison, _ output.Options, st output.Styles) {
		output.CharReport(w, res.left, res.Result, st)
	}

	runner := NewActionRunner("comparetext", fetch, render)
	runner.DiffersFn = func(res TextComparison) bool { return !res.Identical }
	return runner.Run(ctx, cmd)
}

func compareLinesCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (LineComparison, error) {
		left, right, err := loadPair(ctx, cmd, readLines)
		if err != nil {
			return LineComparison{}, err
		}
		return LineComparison{Result: differ.CompareLines(left, right), left: left}, nil
	}

	render := func(w io.Writer, res LineComparison, _ output.Options, st output.Styles) {
		output.LineReport(w, res.left, res.Result, st)
	}

	runner := NewActionRunner("comparelines", fetch, render)
	runner.DiffersFn = func(res LineComparison) bool { return !res.Identical }
	return runner.Run(ctx, cmd)
}

// compareContextCommandAction compares lines and shows each difference with
// surrounding lines. The optional third argument overrides --context.
func compareContextCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (differ.ContextResult, error) {
		radius, err := intArg(cmd, 2, "context", cmd.Int("context"))
		if err != nil {
			return differ.ContextResult{}, err
		}

		left, right, err := loadPair(ctx, cmd, readLines)
		if err != nil {
			return differ.ContextResult{}, err
		}
		return differ.CompareContext(left, right, radius)
	}

	render := func(w io.Writer, res differ.ContextResult, _ output.Options, st output.Styles) {
		output.ContextReport(w, res, st)
	}

	runner := NewActionRunner("comparelinescontext", fetch, render)
	runner.DiffersFn = func(res differ.ContextResult) bool { return !res.Identical }
	return runner.Run(ctx, cmd)
}

func compareHexDumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (HexComparison, error) {
		left, right, err := loadPair(ctx, cmd, (*loader.Loader).Bytes)
		if err != nil {
			return HexComparison{}, err
		}

		rows, err := hexdump.Dump(left, right)
		if err != nil {
			return HexComparison{}, err
		}

		res := HexComparison{Length: len(left), Rows: []HexRow{}, rows: rows}
		for _, row := range rows {
			res.Mismatches += row.Mismatches()
			if cmd.Bool("diff-only") && row.Mismatches() == 0 {
				continue
			}

			hr := HexRow{
				Offset: row.OffsetLabel(),
				Left:   row.HexCells(hexdump.Left),
				Right:  row.HexCells(hexdump.Right),
			}
			for i := range row.Len() {
				if row.Differs(i) {
					hr.Diff = append(hr.Diff, i)
				}
			}
			res.Rows = append(res.Rows, hr)
		}
		return res, nil
	}

	render := func(w io.Writer, res HexComparison, _ output.Options, st output.Styles) {
		output.HexDump(w, slices.Values(res.rows), cmd.Bool("diff-only"), st)
	}

	runner := NewActionRunner("comparebyteshexdump", fetch, render)
	runner.DiffersFn = func(res HexComparison) bool { return res.Mismatches > 0 }
	return runner.Run(ctx, cmd)
}

// compareJSONCommandAction compares two JSON documents structurally.
func compareJSONCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (differ.JSONResult, error) {
		left, right, err := loadPair(ctx, cmd, (*loader.Loader).Bytes)
		if err != nil {
			return differ.JSONResult{}, err
		}

		return differ.JSON(left, right, differ.JSONOptions{
			Path:     cmd.String("path"),
			Filter:   cmd.StringSlice("filter"),
			Coloring: cmd.Bool("color") && cmd.String("output") == "text",
		})
	}

	render := func(w io.Writer, res differ.JSONResult, _ output.Options, st output.Styles) {
		if !res.Modified {
			fmt.Fprintln(w, st.Heading("Documents are identical."))
			return
		}
		fmt.Fprint(w, res.Report)
	}

	runner := NewActionRunner("comparejson", fetch, render)
	runner.DiffersFn = func(res differ.JSONResult) bool { return res.Modified }
	return runner.Run(ctx, cmd)
}

// compareCommandBuilder builds a two-input comparison command.
func compareCommandBuilder(meta meta.Meta, name, usage string,
	action func(context.Context, *cli.Command) error, flags ...cli.Flag) *cli.Command {
	return (&CommandBuilder{
		Name:      name,
		Usage:     usage,
		UsageText: fmt.Sprintf("fatool %s <file1> <file2> [options]", name),
		MinArgs:   2,
		Compare:   true,
		Flags:     flags,
		Action:    action,
		Meta:      meta,
	}).Build()
}

func compareCommandBuilders(meta meta.Meta) []*cli.Command {
	withContext := compareCommandBuilder(meta, "comparelinescontext",
		"compare two text files line by line with surrounding context",
		compareContextCommandAction,
		NewContextFlag("comparelinescontext", meta.Config.Source))
	withContext.UsageText = "fatool comparelinescontext <file1> <file2> [context] [options]"

	return []*cli.Command{
		compareCommandBuilder(meta, "comparebytes",
			"compare two files byte by byte", compareBytesCommandAction),
		compareCommandBuilder(meta, "comparetext",
			"compare two text files character by character", compareTextCommandAction),
		compareCommandBuilder(meta, "comparelines",
			"compare two text files line by line", compareLinesCommandAction),
		withContext,
		compareCommandBuilder(meta, "comparebyteshexdump",
			"compare two equal-length files as side by side hex dumps",
			compareHexDumpCommandAction,
			&cli.BoolFlag{
				Name:    "diff-only",
				Aliases: []string{"d"},
				Usage:   "show only rows that contain differences",
			}),
		compareCommandBuilder(meta, "comparejson",
			"compare two JSON documents structurally",
			compareJSONCommandAction,
			&cli.StringFlag{
				Name:  "path",
				Usage: "gjson path of the sub-document to compare",
			},
			&cli.StringSliceFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "top-level keys to ignore",
			}),
	}
}
