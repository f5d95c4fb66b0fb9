// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package metadata describes evidence files: filesystem attributes for any
// file and simple counts for text.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/fatool/internal/util"
)

// File holds filesystem attributes of one file.
type File struct {
	Name    string      `json:"name" yaml:"name"`
	Path    string      `json:"path" yaml:"path"`
	Size    int64       `json:"size" yaml:"size"`
	Mode    fs.FileMode `json:"mode" yaml:"mode"`
	ModTime time.Time   `json:"mod_time" yaml:"mod_time"`
}

// HumanSize renders Size in SI units, e.g. "1.2 MB".
func (f File) HumanSize() string {
	return humanize.Bytes(uint64(f.Size))
}

// Age renders ModTime relative to now, e.g. "3 days ago".
func (f File) Age() string {
	return humanize.Time(f.ModTime)
}

// Stat describes the local file at path.
func Stat(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, fmt.Errorf("%s: %w", path, util.ErrNotFound)
		}
		return File{}, fmt.Errorf("%s: %w: %w", path, util.ErrIO, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory: %w", path, util.ErrPrecondition)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return File{
		Name:    info.Name(),
		Path:    abs,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}, nil
}

// TextStats counts lines, words and characters of decoded text.
type TextStats struct {
	Encoding   string `json:"encoding" yaml:"encoding"`
	Lines      int    `json:"lines" yaml:"lines"`
	Words      int    `json:"words" yaml:"words"`
	Characters int    `json:"characters" yaml:"characters"`
}

// Text computes TextStats. Lines counts newline-separated segments, so text
// ending in a newline reports one more line than it has terminators. Words
// are runs separated by spaces, \n or \r.
func Text(content, encoding string) TextStats {
	words := strings.FieldsFunc(content, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r'
	})

	return TextStats{
		Encoding:   encoding,
		Lines:      strings.Count(content, "\n") + 1,
		Words:      len(words),
		Characters: utf8.RuneCountInString(content),
	}
}
