// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"slices"
	"strconv"
	"strings"
)

// SortRows orders table rows by a comma separated list of header names. A
// leading "-" sorts that column descending and a leading "!" makes the
// comparison case sensitive. Cells that both parse as numbers compare
// numerically. Unknown headers are ignored.
func SortRows(rows [][]string, headers []string, spec string) {
	type key struct {
		col           int
		ascending     bool
		caseSensitive bool
	}

	var keys []key
	for _, field := range strings.Split(spec, ",") {
		k := key{ascending: true}
		field = strings.TrimSpace(field)
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			k.ascending = false
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			k.caseSensitive = true
		}

		k.col = slices.Index(headers, field)
		if k.col < 0 {
			continue
		}
		keys = append(keys, k)
	}

	slices.SortStableFunc(rows, func(one, two []string) int {
		for _, k := range keys {
			if k.col >= len(one) || k.col >= len(two) {
				continue
			}
			c := compareCells(one[k.col], two[k.col], k.caseSensitive)
			if c == 0 {
				continue
			}
			if !k.ascending {
				c = -c
			}
			return c
		}
		return 0
	})
}

func compareCells(one, two string, caseSensitive bool) int {
	oneNum, oneErr := strconv.ParseFloat(one, 64)
	twoNum, twoErr := strconv.ParseFloat(two, 64)
	if oneErr == nil && twoErr == nil {
		switch {
		case oneNum < twoNum:
			return -1
		case oneNum > twoNum:
			return 1
		}
		return 0
	}

	if !caseSensitive {
		one = strings.ToLower(one)
		two = strings.ToLower(two)
	}
	return strings.Compare(one, two)
}
