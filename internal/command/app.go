// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/config"
	"github.com/tfctl/fatool/internal/meta"
)

// InitApp builds the root command. args[1], when it is not a flag, names the
// subcommand and is used as the config namespace.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	// A missing config file is fine; everything has a default.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
		cfg = config.Config
	}
	purgeCache()

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "fatool",
		Usage: "file analysis tool",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "fatool version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		entropyCommandBuilder(meta),
		stringsCommandBuilder(meta),
	)
	app.Commands = append(app.Commands, compareCommandBuilders(meta)...)
	app.Commands = append(app.Commands,
		searchCommandBuilder(meta),
		searchAllCommandBuilder(meta),
		metadataCommandBuilder(meta),
		hashCommandBuilder(meta),
		shellCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
