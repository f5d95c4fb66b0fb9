// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/fatool/internal/config"
)

// Formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marker replaces a differing byte or character in inline text renderings.
const Marker = "■"

// Options carries the presentation flags shared by every command.
type Options struct {
	Format string
	Color  bool
	Titles bool
	Sort   string
}

// Structured reports whether the format is machine readable.
func (o Options) Structured() bool {
	return o.Format == FormatJSON || o.Format == FormatYAML
}

// Styles holds the lipgloss styles used for emphasis. When disabled, every
// helper returns its input untouched.
type Styles struct {
	enabled bool
	Diff    lipgloss.Style
	Center  lipgloss.Style
	Title   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds the styles. Colors come from the colors.* config keys, or
// from defaults picked for the terminal background.
func NewStyles(enabled bool) Styles {
	st := Styles{
		enabled: enabled,
		Diff:    lipgloss.NewStyle(),
		Center:  lipgloss.NewStyle().Bold(true),
		Title:   lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
	if !enabled {
		return st
	}

	diff, center, title := getColors("colors")
	st.Diff = st.Diff.Foreground(lipgloss.Color("#ffffff")).Background(diff)
	st.Center = st.Center.Foreground(center)
	st.Title = st.Title.Foreground(title)
	return st
}

// Enabled reports whether styling is applied.
func (s Styles) Enabled() bool {
	return s.enabled
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style.Render(text)
}

// Highlight renders text as a mismatch.
func (s Styles) Highlight(text string) string { return s.render(s.Diff, text) }

// Emphasize renders the center line of a context window.
func (s Styles) Emphasize(text string) string { return s.render(s.Center, text) }

// Heading renders a title or verdict.
func (s Styles) Heading(text string) string { return s.render(s.Title, text) }

// Faint renders secondary text such as absent-line placeholders.
func (s Styles) Faint(text string) string { return s.render(s.Dim, text) }

// Encode writes v to w as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unsupported structured format %q", format)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getColors returns the mismatch background, center line and title colors.
// Explicit config values win; otherwise defaults are picked for the terminal
// background so output stays readable on light and dark themes.
func getColors(key string) (diff, center, title color.Color) {
	isDark := true
	if IsTerminal(os.Stdout) {
		isDark = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	}

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	diff = resolveColor(key+".diff", "#c00000", "#d70000")
	center = resolveColor(key+".center", "#0088a0", "#00c8f0")
	title = resolveColor(key+".title", "#b08800", "#f6be00")

	return
}
