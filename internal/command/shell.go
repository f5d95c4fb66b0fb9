// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/meta"
)

// maxHistory bounds the persisted shell history.
const maxHistory = 1000

const shellBanner = `  ___ _ _         _             _
 | __(_) |___    /_\  _ _  __ _| |_  _ ___ ___ _ _
 | _|| | / -_)  / _ \| ' \/ _` + "`" + ` | | || (_-</ -_) '_|
 |_| |_|_\___| /_/ \_\_||_\__,_|_|\_, /__/\___|_|
                                  |__/`

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6be00"))

// Tokenize splits a shell line into arguments. Whitespace separates
// arguments except inside double quotes; the quotes themselves are dropped
// and an empty quoted argument produces nothing.
func Tokenize(input string) []string {
	var (
		result   []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() {
		if current.Len() > 0 {
			result = append(result, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			if !inQuotes {
				flush()
			}
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return result
}

// runShellLine runs one shell line as a fatool command and returns what it
// wrote. Command names are case insensitive.
func runShellLine(ctx context.Context, line string) string {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ""
	}
	tokens[0] = strings.ToLower(tokens[0])
	if tokens[0] == "shell" {
		return "Error: already in the shell."
	}

	args := append([]string{"fatool"}, tokens...)
	app, err := InitApp(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if tokens[0] != "help" && app.Command(tokens[0]) == nil {
		return "Error: Unknown command. Type 'help' for a list of available commands."
	}

	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	if err := app.Run(ctx, args); err != nil && !errors.Is(err, ErrDifferent) {
		log.Debugf("shell command failed: %v", err)
		fmt.Fprintf(&buf, "Error: %v\n", err)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// shellModel is the Bubble Tea model of the interactive shell.
type shellModel struct {
	input          textinput.Model
	history        []string // includes history loaded from file
	sessionHistory []string // only this session, paired with output
	histIndex      int
	output         []string
	historyFile    string
	exec           func(string) string
}

func initialShellModel(historyFile string, exec func(string) string) shellModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	return shellModel{
		input:          ti,
		history:        loadHistory(historyFile),
		sessionHistory: []string{},
		histIndex:      -1,
		output:         []string{shellBanner, "Type 'help' for a list of commands, 'exit' or Ctrl+C to quit."},
		historyFile:    historyFile,
		exec:           exec,
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if entry == "" {
				return m, nil
			}
			if entry == "exit" || entry == "quit" {
				return m, tea.Quit
			}

			m.history = append(m.history, entry)
			m.sessionHistory = append(m.sessionHistory, entry)
			m.histIndex = -1
			m.output = append(m.output, m.exec(entry))
			saveHistory(m.historyFile, m.history)
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	var lines []string

	// Banner and greeting.
	lines = append(lines, m.output[:2]...)

	for i, entry := range m.sessionHistory {
		lines = append(lines, promptStyle.Render("> ")+entry)
		if out := m.output[i+2]; out != "" {
			lines = append(lines, out)
		}
	}

	lines = append(lines, promptStyle.Render("> ")+m.input.View())
	return strings.Join(lines, "\n")
}

// getHistoryFile returns the path of the shell history file.
func getHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fatool_history"
	}
	return filepath.Join(homeDir, ".fatool_history")
}

func loadHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

func saveHistory(filename string, history []string) {
	start := max(0, len(history)-maxHistory)

	file, err := os.Create(filename)
	if err != nil {
		log.Debugf("history not saved: %v", err)
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, entry := range history[start:] {
		fmt.Fprintln(writer, entry)
	}
	writer.Flush()
}

func shellCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("starting shell, history in %s", getHistoryFile())

	exec := func(line string) string { return runShellLine(ctx, line) }
	p := tea.NewProgram(initialShellModel(getHistoryFile(), exec))
	_, err := p.Run()
	return err
}

func shellCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "shell",
		Usage:     "interactive console running fatool commands",
		UsageText: "fatool shell",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: shellCommandAction,
	}
}
