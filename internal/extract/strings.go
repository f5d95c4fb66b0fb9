// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"iter"

	"github.com/tfctl/fatool/internal/util"
)

// DefaultMinLength is the shortest run reported when the caller does not say.
const DefaultMinLength = 4

// Run is one maximal contiguous run of printable bytes.
type Run struct {
	Offset int    `json:"offset" yaml:"offset"`
	Text   string `json:"text" yaml:"text"`
}

// IsPrintable reports whether b lies in the visible ASCII range [32,126].
func IsPrintable(b byte) bool {
	return b >= 32 && b <= 126
}

// Runs yields every maximal printable run in buf of at least min bytes, in
// offset order. The returned sequence may be ranged over more than once.
func Runs(buf []byte, min int) (iter.Seq[Run], error) {
	if min < 1 {
		return nil, fmt.Errorf("minimum length %d: %w", min, util.ErrPrecondition)
	}

	return func(yield func(Run) bool) {
		start := -1
		for i := 0; i <= len(buf); i++ {
			if i < len(buf) && IsPrintable(buf[i]) {
				if start < 0 {
					start = i
				}
				continue
			}

			if start >= 0 && i-start >= min {
				if !yield(Run{Offset: start, Text: string(buf[start:i])}) {
					return
				}
			}
			start = -1
		}
	}, nil
}

// Strings is Runs without offsets.
func Strings(buf []byte, min int) (iter.Seq[string], error) {
	runs, err := Runs(buf, min)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for r := range runs {
			if !yield(r.Text) {
				return
			}
		}
	}, nil
}
