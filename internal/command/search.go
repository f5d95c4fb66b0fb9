// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/extract"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
)

// SearchResult is the structured output of the search commands. Line numbers
// in Matches are 0-based.
type SearchResult struct {
	Path    string          `json:"path" yaml:"path"`
	Needle  string          `json:"needle" yaml:"needle"`
	Found   bool            `json:"found" yaml:"found"`
	Matches []extract.Match `json:"matches" yaml:"matches"`
}

// newSearchAction returns the action for searchstring (all=false, stop at the
// first matching line) or searchstringnobreak (all=true).
func newSearchAction(name string, all bool) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		fetch := func(ctx context.Context, cmd *cli.Command) (SearchResult, error) {
			path, needle := cmd.Args().Get(0), cmd.Args().Get(1)
			if err := extract.ValidateNeedle(needle); err != nil {
				return SearchResult{}, err
			}

			lines, _, err := newLoader(cmd).Lines(ctx, path)
			if err != nil {
				return SearchResult{}, err
			}

			res := SearchResult{Path: path, Needle: needle, Matches: []extract.Match{}}
			if all {
				for m := range extract.Search(lines, needle) {
					res.Matches = append(res.Matches, m)
				}
			} else if m, ok := extract.First(lines, needle); ok {
				res.Matches = append(res.Matches, m)
			}
			res.Found = len(res.Matches) > 0
			return res, nil
		}

		render := func(w io.Writer, res SearchResult, _ output.Options, st output.Styles) {
			output.MatchReport(w, res.Needle, res.Matches, st)
		}

		runner := NewActionRunner(name, fetch, render)
		runner.DiffersFn = func(res SearchResult) bool { return !res.Found }
		return runner.Run(ctx, cmd)
	}
}

func searchCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "searchstring",
		Usage:     "find the first line containing a string",
		UsageText: "fatool searchstring <file> <string> [options]",
		MinArgs:   2,
		Compare:   true,
		Action:    newSearchAction("searchstring", false),
		Meta:      meta,
	}).Build()
}

func searchAllCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "searchstringnobreak",
		Usage:     "find every line containing a string",
		UsageText: "fatool searchstringnobreak <file> <string> [options]",
		MinArgs:   2,
		Compare:   true,
		Action:    newSearchAction("searchstringnobreak", true),
		Meta:      meta,
	}).Build()
}
