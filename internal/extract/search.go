// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tfctl/fatool/internal/util"
)

// Match is a line containing the searched needle. Line is zero-based.
type Match struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// ValidateNeedle rejects an empty needle, which would match every line.
func ValidateNeedle(needle string) error {
	if needle == "" {
		return fmt.Errorf("empty search string: %w", util.ErrPrecondition)
	}
	return nil
}

// Search yields each line containing needle, in line order.
func Search(lines []string, needle string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i, line := range lines {
			if !strings.Contains(line, needle) {
				continue
			}
			if !yield(Match{Line: i, Text: line}) {
				return
			}
		}
	}
}

// First returns the first line containing needle.
func First(lines []string, needle string) (Match, bool) {
	for m := range Search(lines, needle) {
		return m, true
	}
	return Match{}, false
}
