// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package hexdump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fatool/internal/util"
)

func TestDumpTwentyBytes(t *testing.T) {
	left := []byte("ABCDEFGHIJKLMNOPQRST")
	right := bytes.Clone(left)
	right[1] = 'b'
	right[17] = 0x00

	rows, err := Dump(left, right)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first, second := rows[0], rows[1]

	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 16, first.Len())
	assert.Equal(t, uint16(1<<1), first.Mask)
	assert.True(t, first.Differs(1))
	assert.False(t, first.Differs(0))

	assert.Equal(t, 16, second.Offset)
	assert.Equal(t, "0010", second.OffsetLabel())
	assert.Equal(t, 4, second.Len())
	assert.Equal(t, 1, second.Mismatches())
	assert.True(t, second.Differs(1))
	for i := 4; i < Stride; i++ {
		assert.False(t, second.Differs(i), "padding slot %d flagged", i)
	}
	assert.Equal(t, uint16(0), second.Mask>>4)

	assert.Equal(t, []string{"51", "52", "53", "54"}, second.HexCells(Left))
	assert.Equal(t, []string{"51", "00", "53", "54"}, second.HexCells(Right))
	assert.Equal(t, "QRST", second.ASCII(Left))
	assert.Equal(t, "Q.ST", second.ASCII(Right))
}

func TestDumpIdentical(t *testing.T) {
	buf := bytes.Repeat([]byte{0xde, 0xad}, 16)

	rows, err := Dump(buf, buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Zero(t, r.Mask)
	}
}

func TestDumpEmpty(t *testing.T) {
	rows, err := Dump(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowsUnequal(t *testing.T) {
	seq, err := Rows([]byte("abc"), []byte("abcd"))
	assert.ErrorIs(t, err, util.ErrPrecondition)
	assert.Nil(t, seq)

	_, err = Dump([]byte("a"), nil)
	assert.ErrorIs(t, err, util.ErrPrecondition)
}

func TestRowDoesNotAliasBeyondStride(t *testing.T) {
	left := bytes.Repeat([]byte{1}, 32)
	rows, err := Dump(left, left)
	require.NoError(t, err)
	assert.Equal(t, Stride, cap(rows[0].Left))
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, byte('.'), Printable(31))
	assert.Equal(t, byte(' '), Printable(32))
	assert.Equal(t, byte('~'), Printable(126))
	assert.Equal(t, byte('.'), Printable(127))
	assert.Equal(t, byte('.'), Printable(0xff))
}

func TestOffsetLabelWide(t *testing.T) {
	assert.Equal(t, "10000", Row{Offset: 0x10000}.OffsetLabel())
}
