// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

// Table writes rows as an aligned, borderless table. Headers are rendered
// only when opts.Titles is set. Rows are sorted first when opts.Sort names
// one or more headers.
func Table(w io.Writer, headers []string, rows [][]string, opts Options, st Styles) {
	if w == nil {
		w = os.Stdout
	}

	// Nothing to show.
	if len(rows) == 0 {
		return
	}

	if opts.Sort != "" {
		SortRows(rows, headers, opts.Sort)
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)
	if st.Enabled() {
		headerStyle = st.Title.Align(lipgloss.Left)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// KeyValues writes label/value pairs as a two column table.
func KeyValues(w io.Writer, pairs [][2]string, st Styles) {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{st.Heading(p[0] + ":"), p[1]})
	}
	Table(w, []string{"field", "value"}, rows, Options{}, st)
}
