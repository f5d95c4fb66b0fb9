// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package metadata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fatool/internal/util"
)

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o600))

	f, err := Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "report.txt", f.Name)
	assert.Equal(t, int64(2048), f.Size)
	assert.Equal(t, "2.0 kB", f.HumanSize())
	assert.True(t, filepath.IsAbs(f.Path))
	assert.WithinDuration(t, time.Now(), f.ModTime, time.Minute)
}

func TestStatErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = Stat(dir)
	assert.ErrorIs(t, err, util.ErrPrecondition)
}

func TestAge(t *testing.T) {
	f := File{ModTime: time.Now().Add(-3 * time.Hour)}
	assert.Equal(t, "3 hours ago", f.Age())
}

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    TextStats
	}{
		{name: "empty", content: "", want: TextStats{Encoding: "UTF-8", Lines: 1}},
		{name: "one line", content: "hello world", want: TextStats{Encoding: "UTF-8", Lines: 1, Words: 2, Characters: 11}},
		{name: "trailing newline", content: "a b\nc\n", want: TextStats{Encoding: "UTF-8", Lines: 3, Words: 3, Characters: 6}},
		{name: "crlf and runes", content: "día\r\nnoche", want: TextStats{Encoding: "UTF-8", Lines: 2, Words: 2, Characters: 10}},
		{name: "tabs are not separators", content: "a\tb", want: TextStats{Encoding: "UTF-8", Lines: 1, Words: 1, Characters: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.content, "UTF-8"))
		})
	}
}
