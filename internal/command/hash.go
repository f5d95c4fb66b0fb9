// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/digest"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
)

func hashCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) ([]digest.Digest, error) {
		buf, err := newLoader(cmd).Bytes(ctx, cmd.Args().First())
		if err != nil {
			return nil, err
		}
		return digest.Sum(buf), nil
	}

	render := func(w io.Writer, sums []digest.Digest, opts output.Options, st output.Styles) {
		rows := make([][]string, 0, len(sums))
		for _, d := range sums {
			rows = append(rows, []string{d.Algorithm, d.Hex})
		}
		output.Table(w, []string{"algorithm", "hex"}, rows, opts, st)
	}

	return NewActionRunner("hash", fetch, render).Run(ctx, cmd)
}

func hashCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "hash",
		Usage:     "sha256, sha3-256 and blake2b-256 digests of a file",
		UsageText: "fatool hash <file> [options]",
		MinArgs:   1,
		Action:    hashCommandAction,
		Meta:      meta,
	}).Build()
}
