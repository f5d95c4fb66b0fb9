// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"iter"

	"github.com/tfctl/fatool/internal/util"
)

// DefaultRadius is the context radius used when the caller does not say.
const DefaultRadius = 2

// Lines yields line records. A line missing on the shorter side reads as ""
// and is flagged absent.
func Lines(left, right []string) iter.Seq[Record[string]] {
	return positional(left, right, KindLine)
}

// CompareLines collects Lines into a Result.
func CompareLines(left, right []string) Result[string] {
	return collect(left, right, KindLine)
}

// WindowLine is one row of a context window.
type WindowLine struct {
	Index       int    `json:"index" yaml:"index"`
	Left        string `json:"left" yaml:"left"`
	Right       string `json:"right" yaml:"right"`
	LeftAbsent  bool   `json:"left_absent,omitempty" yaml:"left_absent,omitempty"`
	RightAbsent bool   `json:"right_absent,omitempty" yaml:"right_absent,omitempty"`
	Center      bool   `json:"center,omitempty" yaml:"center,omitempty"`
}

// Window is the span [Start, End) of line indices around the mismatch at
// Center, clipped to the longer input. Windows of nearby mismatches are not
// merged; each mismatch gets its own.
type Window struct {
	Center int          `json:"center" yaml:"center"`
	Radius int          `json:"radius" yaml:"radius"`
	Start  int          `json:"start" yaml:"start"`
	End    int          `json:"end" yaml:"end"`
	Lines  []WindowLine `json:"lines" yaml:"lines"`
}

// Windows yields a context window for each mismatching line index.
func Windows(left, right []string, radius int) (iter.Seq[Window], error) {
	if radius < 0 {
		return nil, fmt.Errorf("context radius %d: %w", radius, util.ErrPrecondition)
	}

	n := max(len(left), len(right))
	at := func(lines []string, i int) (string, bool) {
		if i < len(lines) {
			return lines[i], false
		}
		return "", true
	}

	return func(yield func(Window) bool) {
		for rec := range Lines(left, right) {
			w := Window{
				Center: rec.Index,
				Radius: radius,
				Start:  max(0, rec.Index-radius),
				End:    min(n, rec.Index+radius+1),
			}
			for j := w.Start; j < w.End; j++ {
				l, la := at(left, j)
				r, ra := at(right, j)
				w.Lines = append(w.Lines, WindowLine{
					Index:       j,
					Left:        l,
					Right:       r,
					LeftAbsent:  la,
					RightAbsent: ra,
					Center:      j == rec.Index,
				})
			}
			if !yield(w) {
				return
			}
		}
	}, nil
}

// ContextResult is a line comparison plus one window per record.
type ContextResult struct {
	Result[string] `yaml:",inline"`
	Radius         int      `json:"radius" yaml:"radius"`
	Windows        []Window `json:"windows" yaml:"windows"`
}

// CompareContext runs CompareLines and materializes every window.
func CompareContext(left, right []string, radius int) (ContextResult, error) {
	seq, err := Windows(left, right, radius)
	if err != nil {
		return ContextResult{}, err
	}

	res := ContextResult{
		Result: CompareLines(left, right),
		Radius: radius,
	}
	for w := range seq {
		res.Windows = append(res.Windows, w)
	}
	return res, nil
}
