// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hexdump

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/tfctl/fatool/internal/util"
)

// Stride is the number of bytes per row.
const Stride = 16

// Side picks one of the two buffers in a Row.
type Side int

const (
	Left Side = iota
	Right
)

// Row is one 16-byte stride of both buffers. Left and Right hold at most
// Stride bytes and always have the same length; the final row of a buffer
// that is not a multiple of Stride is short. Bit i of Mask is set when
// Left[i] != Right[i]. Bits at or past Len are never set.
type Row struct {
	Offset int    `json:"offset" yaml:"offset"`
	Left   []byte `json:"left" yaml:"left"`
	Right  []byte `json:"right" yaml:"right"`
	Mask   uint16 `json:"mask" yaml:"mask"`
}

// Len returns the number of data bytes in the row.
func (r Row) Len() int {
	return len(r.Left)
}

// Differs reports whether byte i of the row differs between the sides.
func (r Row) Differs(i int) bool {
	if i < 0 || i >= r.Len() {
		return false
	}
	return r.Mask&(1<<uint(i)) != 0
}

// Mismatches returns the number of differing bytes in the row.
func (r Row) Mismatches() int {
	return bits.OnesCount16(r.Mask)
}

// OffsetLabel renders the row offset as at least four hex digits.
func (r Row) OffsetLabel() string {
	return fmt.Sprintf("%04X", r.Offset)
}

// Bytes returns the data bytes of one side.
func (r Row) Bytes(s Side) []byte {
	if s == Right {
		return r.Right
	}
	return r.Left
}

// HexCells returns the two-digit hex rendering of each data byte of one side.
// Padding slots of a short row are not included.
func (r Row) HexCells(s Side) []string {
	data := r.Bytes(s)
	cells := make([]string, len(data))
	for i, b := range data {
		cells[i] = fmt.Sprintf("%02X", b)
	}
	return cells
}

// ASCII returns the printable rendering of one side.
func (r Row) ASCII(s Side) string {
	data := r.Bytes(s)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Printable(b)
	}
	return string(out)
}

// Printable maps b to itself inside [32,126] and to '.' otherwise.
func Printable(b byte) byte {
	if b >= 32 && b <= 126 {
		return b
	}
	return '.'
}

// Rows yields the rows of left and right in offset order. Buffers of unequal
// length are rejected before any row is produced.
func Rows(left, right []byte) (iter.Seq[Row], error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("hex dump of %d and %d bytes: sizes differ: %w",
			len(left), len(right), util.ErrPrecondition)
	}

	return func(yield func(Row) bool) {
		for off := 0; off < len(left); off += Stride {
			end := min(off+Stride, len(left))
			row := Row{
				Offset: off,
				Left:   left[off:end:end],
				Right:  right[off:end:end],
			}
			for i := range row.Left {
				if row.Left[i] != row.Right[i] {
					row.Mask |= 1 << uint(i)
				}
			}
			if !yield(row) {
				return
			}
		}
	}, nil
}

// Dump collects Rows.
func Dump(left, right []byte) ([]Row, error) {
	seq, err := Rows(left, right)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for r := range seq {
		rows = append(rows, r)
	}
	return rows, nil
}
