// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/aws"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/metadata"
	"github.com/tfctl/fatool/internal/output"
	"github.com/tfctl/fatool/internal/util"
)

// textExtensions get text statistics without --text.
var textExtensions = []string{".txt", ".log", ".csv", ".md", ".json", ".xml", ".yaml", ".yml"}

// MetadataResult is the structured output of the metadata command.
type MetadataResult struct {
	File metadata.File       `json:"file" yaml:"file"`
	Text *metadata.TextStats `json:"text,omitempty" yaml:"text,omitempty"`
}

func metadataCommandAction(ctx context.Context, cmd *cli.Command) error {
	fetch := func(ctx context.Context, cmd *cli.Command) (MetadataResult, error) {
		path := cmd.Args().First()
		if aws.IsURI(path) {
			return MetadataResult{}, fmt.Errorf("metadata of %s: needs a local file: %w", path, util.ErrPrecondition)
		}

		f, err := metadata.Stat(path)
		if err != nil {
			return MetadataResult{}, err
		}
		res := MetadataResult{File: f}

		ext := strings.ToLower(filepath.Ext(path))
		if !cmd.Bool("text") && !slices.Contains(textExtensions, ext) {
			log.Debugf("no text statistics for extension %q", ext)
			return res, nil
		}

		text, err := newLoader(cmd).Text(ctx, path)
		if err != nil {
			return MetadataResult{}, err
		}
		stats := metadata.Text(text.Content, text.Encoding)
		res.Text = &stats
		return res, nil
	}

	render := func(w io.Writer, res MetadataResult, _ output.Options, st output.Styles) {
		f := res.File
		pairs := [][2]string{
			{"File Name", f.Name},
			{"File Size", fmt.Sprintf("%s bytes (%s)", humanize.Comma(f.Size), f.HumanSize())},
			{"Mode", f.Mode.String()},
			{"Last Write Time", fmt.Sprintf("%s (%s)", f.ModTime.Format("2006-01-02 15:04:05"), f.Age())},
		}
		if t := res.Text; t != nil {
			pairs = append(pairs,
				[2]string{"Encoding", t.Encoding},
				[2]string{"Lines", humanize.Comma(int64(t.Lines))},
				[2]string{"Words", humanize.Comma(int64(t.Words))},
				[2]string{"Characters", humanize.Comma(int64(t.Characters))},
			)
		}
		output.KeyValues(w, pairs, st)
	}

	return NewActionRunner("metadata", fetch, render).Run(ctx, cmd)
}

func metadataCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "metadata",
		Usage:     "file system metadata and, for text files, text statistics",
		UsageText: "fatool metadata <file> [options]",
		MinArgs:   1,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "text",
				Usage: "compute text statistics regardless of extension",
			},
		},
		Action: metadataCommandAction,
		Meta:   meta,
	}).Build()
}
