// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/meta"
)

// CommandBuilder constructs a cli.Command for an analysis subcommand using a
// consistent pattern. It wires metadata, the schema flag, global flags, and a
// Before hook that checks the positional argument count.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	MinArgs   int
	Compare   bool
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, cb.Flags...)
	flags = append(flags, newSchemaFlag())
	if cb.Compare {
		flags = append(flags, newExitCodeFlag())
	}
	flags = append(flags, NewGlobalFlags(cb.Name, cb.Meta.Config.Source)...)

	minArgs := cb.MinArgs
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("schema") {
				return ctx, nil
			}
			return ctx, requireArgs(c, minArgs)
		},
		Action: cb.Action,
	}
}
