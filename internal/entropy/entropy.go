// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package entropy

import (
	"fmt"
	"iter"
	"math"

	"github.com/tfctl/fatool/internal/util"
)

// Histogram counts occurrences of each byte value in one buffer.
type Histogram [256]int

// NewHistogram builds the histogram of buf. Total always equals len(buf).
func NewHistogram(buf []byte) Histogram {
	var h Histogram
	for _, b := range buf {
		h[b]++
	}
	return h
}

// Total returns the number of bytes counted.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Distinct returns the number of byte values with a nonzero count.
func (h Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}

// Entropy returns -sum(p*log2(p)) over the nonzero bins. An empty histogram
// yields 0.
func (h Histogram) Entropy() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}

	e := 0.0
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		e -= p * math.Log2(p)
	}

	// A single repeated value sums to -0.
	if e <= 0 {
		return 0
	}
	return e
}

// Calculate returns the Shannon entropy of buf in bits per byte.
func Calculate(buf []byte) (float64, error) {
	if len(buf) == 0 {
		return 0, util.ErrEmptyInput
	}
	return NewHistogram(buf).Entropy(), nil
}

// Format renders an entropy value with four fractional digits.
func Format(e float64) string {
	return fmt.Sprintf("%.4f", e)
}

// Block is the entropy of one fixed-size window of a buffer.
type Block struct {
	Offset  int     `json:"offset" yaml:"offset"`
	Length  int     `json:"length" yaml:"length"`
	Entropy float64 `json:"entropy" yaml:"entropy"`
}

// Blocks yields the entropy of consecutive size-byte windows of buf. The last
// window may be shorter than size.
func Blocks(buf []byte, size int) (iter.Seq[Block], error) {
	if size < 1 {
		return nil, fmt.Errorf("block size %d: %w", size, util.ErrPrecondition)
	}

	return func(yield func(Block) bool) {
		for off := 0; off < len(buf); off += size {
			end := min(off+size, len(buf))
			b := Block{
				Offset:  off,
				Length:  end - off,
				Entropy: NewHistogram(buf[off:end]).Entropy(),
			}
			if !yield(b) {
				return
			}
		}
	}, nil
}
