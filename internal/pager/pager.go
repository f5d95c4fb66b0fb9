// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pager shows long reports in a scrollable full-screen viewport.
package pager

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 1
)

var footerStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Size returns the terminal dimensions of w, or 80x24 when unknown.
func Size(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			return width, height
		}
	}
	return defaultWidth, defaultHeight
}

// Page shows content in a viewport on w until the user quits with q, esc or
// ctrl+c. When w is not a terminal the content is written through as is.
func Page(w io.Writer, title, content string) error {
	if !IsTerminal(w) {
		_, err := io.WriteString(w, content)
		return err
	}

	width, height := Size(w)
	log.Debugf("paging %d bytes at %dx%d", len(content), width, height)

	p := tea.NewProgram(newModel(title, content, width, height),
		tea.WithAltScreen(),
		tea.WithOutput(w),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}

type model struct {
	title    string
	viewport viewport.Model
}

func newModel(title, content string, width, height int) model {
	vp := viewport.New(width, max(1, height-footerHeight))
	vp.SetContent(content)
	return model{title: title, viewport: vp}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-footerHeight)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	footer := footerStyle.Render(fmt.Sprintf("%s  %3.f%%  q to quit", m.title, m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" + footer
}
