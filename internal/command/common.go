// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/aws"
	"github.com/tfctl/fatool/internal/cacheutil"
	"github.com/tfctl/fatool/internal/config"
	"github.com/tfctl/fatool/internal/loader"
	"github.com/tfctl/fatool/internal/meta"
	"github.com/tfctl/fatool/internal/output"
	"github.com/tfctl/fatool/internal/pager"
	"github.com/tfctl/fatool/internal/util"
)

// ErrDifferent is returned by comparison commands run with --exit-code when
// the inputs differ. main maps it to exit status 1 without printing it.
var ErrDifferent = errors.New("inputs differ")

// newLoader builds the input loader for a command. S3 settings come from the
// s3.* config keys. Tests replace it to serve fixtures.
var newLoader = func(cmd *cli.Command) *loader.Loader {
	var opts []aws.Option
	if profile, _ := config.GetString("s3.profile", ""); profile != "" {
		opts = append(opts, aws.WithProfile(profile))
	}
	if region, _ := config.GetString("s3.region", ""); region != "" {
		opts = append(opts, aws.WithRegion(region))
	}
	if endpoint, _ := config.GetString("s3.endpoint", ""); endpoint != "" {
		opts = append(opts, aws.WithEndpoint(endpoint))
	}
	l := loader.New(opts...)
	l.Cache, _ = config.GetBool("cache.enabled", true)
	return l
}

// purgeCache drops cached objects older than cache.clean hours.
func purgeCache() {
	hours, _ := config.GetInt("cache.clean", 0)
	if err := cacheutil.Purge(hours); err != nil {
		log.WithError(err).Warn("cache purge failed")
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// DumpSchemaIfRequested writes the structured output fields of t when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if t != nil && cmd.Bool("schema") {
		output.DumpSchema(t, writer(cmd))
		return true
	}
	return false
}

// OptionsFromCommand collects the presentation flags.
func OptionsFromCommand(cmd *cli.Command) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
		Sort:   cmd.String("sort"),
	}
}

// Emit writes v in the requested format. Text goes through render, and
// through the pager when --pager is set and the writer is a terminal.
func Emit(cmd *cli.Command, title string, v any, render func(io.Writer)) error {
	opts := OptionsFromCommand(cmd)
	w := writer(cmd)

	if opts.Structured() {
		return output.Encode(w, opts.Format, v)
	}

	if cmd.Bool("pager") && pager.IsTerminal(w) {
		var buf bytes.Buffer
		render(&buf)
		return pager.Page(w, title, buf.String())
	}

	render(w)
	return nil
}

// writer returns the root command's writer, falling back to stdout.
func writer(cmd *cli.Command) io.Writer {
	if cmd != nil {
		if root := cmd.Root(); root != nil && root.Writer != nil {
			return root.Writer
		}
	}
	return os.Stdout
}

// requireArgs fails with a usage hint when fewer than n positional arguments
// were given.
func requireArgs(cmd *cli.Command, n int) error {
	if cmd.Args().Len() < n {
		return fmt.Errorf("%s needs %d argument(s), usage: %s: %w",
			cmd.Name, n, cmd.UsageText, util.ErrPrecondition)
	}
	return nil
}

// intArg returns positional argument i as an int, or def when absent.
func intArg(cmd *cli.Command, i int, name string, def int) (int, error) {
	raw := cmd.Args().Get(i)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", name, raw, util.ErrPrecondition)
	}
	log.Debugf("%s from argument: %d", name, n)
	return n, nil
}
