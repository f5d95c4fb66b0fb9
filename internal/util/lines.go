// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import "strings"

// SplitLines splits decoded text on \r\n, \n and \r. Terminators are dropped.
// A single trailing terminator ends the last line rather than opening a new
// empty one, so "a\nb\n" and "a\nb" both yield two lines. Empty text yields
// no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}

		lines = append(lines, s[:i])

		step := 1
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			step = 2
		}
		s = s[i+step:]
	}

	return lines
}
