// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes one markdown page per fatool subcommand into
// <docs>/commands. Names, usage and flags come from the live command tree;
// examples come from the optional <docs>/examples.yaml.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/fatool/internal/command"
)

//go:embed command.md.tmpl
var pageTemplate string

type Examples map[string][]Example

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	ID       string
	Short    string
	Usage    string
	Flags    []Flag
	Examples []Example
	Date     string
	Version  string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	examples, err := loadExamples(filepath.Join(docs, "examples.yaml"))
	if err != nil {
		panic(err)
	}

	app, err := command.InitApp(context.Background(), []string{"fatool"})
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(pageTemplate))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		data := TemplateData{
			ID:       sub.Name,
			Short:    sub.Usage,
			Usage:    sub.UsageText,
			Flags:    flags(sub),
			Examples: examples[sub.Name],
			Date:     time.Now().Format("January 2, 2006"),
			Version:  getVersion(),
		}

		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, data); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// loadExamples reads the examples file. A missing file means no examples.
func loadExamples(path string) (Examples, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Examples{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ex Examples
	if err := yaml.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ex, nil
}

// flags describes the flags of cmd, sorted by name.
func flags(cmd *cli.Command) []Flag {
	var out []Flag
	for _, f := range cmd.Flags {
		names := f.Names()
		syntax := make([]string, len(names))
		for i, n := range names {
			if len(n) == 1 {
				syntax[i] = "-" + n
			} else {
				syntax[i] = "--" + n
			}
		}

		flag := Flag{Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(interface{ GetUsage() string }); ok {
			flag.Description = d.GetUsage()
		}
		if d, ok := f.(interface{ GetDefaultText() string }); ok {
			flag.Default = d.GetDefaultText()
		}
		out = append(out, flag)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Syntax < out[j].Syntax
	})
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
