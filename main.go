// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/fatool/internal/cacheutil"
	"github.com/tfctl/fatool/internal/command"
	"github.com/tfctl/fatool/internal/config"
	"github.com/tfctl/fatool/internal/log"
	"github.com/tfctl/fatool/internal/version"
)

var ctx = context.Background()

// valueFlags take a separate value argument. Other flags are booleans.
var valueFlags = map[string]bool{
	"output": true, "sort": true, "min": true, "context": true,
	"blocks": true, "path": true, "filter": true,
}

// flagAliases maps short names to their long form.
var flagAliases = map[string]string{
	"o": "output", "s": "sort", "m": "min", "C": "context", "b": "blocks",
	"f": "filter", "c": "color", "p": "pager", "t": "titles", "x": "exit-code",
	"d": "diff-only",
}

// repeatableFlags accumulate values and are never deduplicated.
var repeatableFlags = map[string]bool{"filter": true}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && (args[1] == "completion" || args[1] == "shell") {
		// Short-circuit: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)
	return args
}

// flagName returns the canonical name of a flag token and whether the token
// carries its own value (--name=value).
func flagName(arg string) (string, bool) {
	name := strings.TrimLeft(arg, "-")
	name, _, inline := strings.Cut(name, "=")
	if long, ok := flagAliases[name]; ok {
		name = long
	}
	return name, inline
}

// deduplicateFlags drops earlier occurrences of a repeated flag so the last
// one wins, which lets explicit flags override those injected by @set.
// Positional arguments keep their order.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type group struct {
		name   string
		tokens []string
	}

	var groups []group
	for i := 2; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			groups = append(groups, group{tokens: args[i:]})
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			groups = append(groups, group{tokens: []string{arg}})
			continue
		}

		name, inline := flagName(arg)
		g := group{name: name, tokens: []string{arg}}
		if !inline && valueFlags[name] && i+1 < len(args) {
			i++
			g.tokens = append(g.tokens, args[i])
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.name != "" && !repeatableFlags[g.name] && last[g.name] != i {
			continue
		}
		result = append(result, g.tokens...)
	}
	return result
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferent) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands the first @set argument into the string slice found
// at config key <command>.<set>.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := ""
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	// Remove the @set argument.
	args = append(args[:removeIdx:removeIdx], args[removeIdx+1:]...)

	// Expand the set arguments at the removeIdx position.
	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("set %q not found in config: %v", set, err)
	}
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:removeIdx:removeIdx], append(parts, args[removeIdx:]...)...)
		removeIdx += len(parts)
	}
	return args
}
