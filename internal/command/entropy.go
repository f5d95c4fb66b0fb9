// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/entropy"
	"github.com/tfctl/fatool/internal/filters"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
)

// EntropyResult is the structured output of the entropy command.
type EntropyResult struct {
	Path      string          `json:"path" yaml:"path"`
	Size      int             `json:"size" yaml:"size"`
	Distinct  int             `json:"distinct" yaml:"distinct"`
	Entropy   float64         `json:"entropy" yaml:"entropy"`
	Blocks    []entropy.Block `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Histogram []Bin           `json:"histogram,omitempty" yaml:"histogram,omitempty"`

	hist entropy.Histogram
}

// Bin is one nonzero histogram entry.
type Bin struct {
	Byte  int `json:"byte" yaml:"byte"`
	Count int `json:"count" yaml:"count"`
}

// entropyCommandAction computes whole-file entropy and, on request, per-block
// entropy and the byte histogram.
func entropyCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (EntropyResult, error) {
		path := cmd.Args().First()
		buf, err := newLoader(cmd).Bytes(ctx, path)
		if err != nil {
			return EntropyResult{}, err
		}

		e, err := entropy.Calculate(buf)
		if err != nil {
			return EntropyResult{}, err
		}

		h := entropy.NewHistogram(buf)
		res := EntropyResult{
			Path:     path,
			Size:     len(buf),
			Distinct: h.Distinct(),
			Entropy:  e,
			hist:     h,
		}

		if size := cmd.Int("blocks"); size > 0 {
			seq, err := entropy.Blocks(buf, size)
			if err != nil {
				return EntropyResult{}, err
			}
			for b := range seq {
				res.Blocks = append(res.Blocks, b)
			}
			res.Blocks = filters.Apply(res.Blocks, cmd.String("filter"), blockField)
		}

		if cmd.Bool("histogram") {
			for v, n := range h {
				if n > 0 {
					res.Histogram = append(res.Histogram, Bin{Byte: v, Count: n})
				}
			}
		}

		return res, nil
	}

	render := func(w io.Writer, res EntropyResult, opts output.Options, st output.Styles) {
		output.EntropyReport(w, res.Entropy, st)
		if len(res.Blocks) > 0 {
			output.BlockReport(w, res.Blocks, opts, st)
		}
		if len(res.Histogram) > 0 {
			output.HistogramReport(w, res.hist, opts, st)
		}
	}

	return NewActionRunner("entropy", fetch, render).Run(ctx, cmd)
}

func blockField(b entropy.Block, key string) (any, bool) {
	switch key {
	case "offset":
		return b.Offset, true
	case "length":
		return b.Length, true
	case "entropy":
		return b.Entropy, true
	}
	return nil, false
}

func entropyCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "entropy",
		Usage:     "Shannon entropy of a file in bits per byte",
		UsageText: "fatool entropy <file> [options]",
		MinArgs:   1,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "blocks",
				Aliases: []string{"b"},
				Usage:   "also report entropy of each block of this many bytes",
				Value:   0,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeValidator)
				},
			},
			NewFilterFlag("block offset, length and entropy"),
			&cli.BoolFlag{
				Name:  "histogram",
				Usage: "also report the byte histogram",
			},
		},
		Action: entropyCommandAction,
		Meta:   meta,
	}).Build()
}
