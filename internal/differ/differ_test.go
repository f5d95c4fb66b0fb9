// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fatool/internal/util"
)

func TestCompareBytes(t *testing.T) {
	tests := []struct {
		name      string
		left      []byte
		right     []byte
		identical bool
		mismatch  bool
		records   []Record[byte]
	}{
		{
			name:      "both empty",
			identical: true,
		},
		{
			name:      "same content",
			left:      []byte("forensics"),
			right:     []byte("forensics"),
			identical: true,
		},
		{
			name:  "one byte differs",
			left:  []byte{0x01, 0x02, 0x03},
			right: []byte{0x01, 0xff, 0x03},
			records: []Record[byte]{
				{Index: 1, Left: 0x02, Right: 0xff, Kind: KindByte},
			},
		},
		{
			name:     "prefix only",
			left:     []byte("abc"),
			right:    []byte("abcde"),
			mismatch: true,
			records: []Record[byte]{
				{Index: 3, Left: 0, Right: 'd', LeftAbsent: true, Kind: KindByte},
				{Index: 4, Left: 0, Right: 'e', LeftAbsent: true, Kind: KindByte},
			},
		},
		{
			name:     "trailing zero matches padding",
			left:     []byte{0x10, 0x00},
			right:    []byte{0x10},
			mismatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CompareBytes(tt.left, tt.right)
			assert.Equal(t, tt.identical, res.Identical)
			assert.Equal(t, tt.mismatch, res.LengthMismatch)
			assert.Equal(t, len(tt.left), res.LeftLen)
			assert.Equal(t, len(tt.right), res.RightLen)
			assert.Equal(t, tt.records, res.Records)
		})
	}
}

func TestBytesSelfIdentical(t *testing.T) {
	buf := []byte("\x00\x01binary\xffdata")
	res := CompareBytes(buf, buf)
	assert.True(t, res.Identical)
	assert.Empty(t, res.Records)
}

func TestBytesLazyStop(t *testing.T) {
	left := make([]byte, 100)
	right := make([]byte, 100)
	for i := range right {
		right[i] = 1
	}

	var seen []int
	for rec := range Bytes(left, right) {
		seen = append(seen, rec.Index)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestCompareText(t *testing.T) {
	res, err := CompareText("héllo", "hallo!")
	require.NoError(t, err)

	assert.False(t, res.Identical)
	assert.True(t, res.LengthMismatch)
	assert.Equal(t, 5, res.LeftLen)
	assert.Equal(t, 6, res.RightLen)
	assert.Equal(t, []Record[rune]{
		{Index: 1, Left: 'é', Right: 'a', Kind: KindChar},
		{Index: 5, Left: 0, Right: '!', LeftAbsent: true, Kind: KindChar},
	}, res.Records)
	assert.True(t, res.Records[1].Padded())
	assert.False(t, res.Records[0].Padded())
}

func TestCompareTextDecodeFailure(t *testing.T) {
	_, err := CompareText("ok", "bad\xff")
	assert.ErrorIs(t, err, util.ErrDecode)

	_, err = CompareText("\xc3", "ok")
	assert.ErrorIs(t, err, util.ErrDecode)
}

func TestCompareLines(t *testing.T) {
	res := CompareLines([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	assert.False(t, res.Identical)
	assert.False(t, res.LengthMismatch)
	require.Len(t, res.Records, 1)
	assert.Equal(t, Record[string]{Index: 1, Left: "b", Right: "x", Kind: KindLine}, res.Records[0])
}

func TestCompareLinesCountMismatch(t *testing.T) {
	res := CompareLines([]string{"a", "b"}, []string{"a", "b", "c"})
	assert.False(t, res.Identical)
	assert.True(t, res.LengthMismatch)
	require.Len(t, res.Records, 1)
	assert.True(t, res.Records[0].LeftAbsent)
	assert.Equal(t, "c", res.Records[0].Right)
}

func TestCompareLinesSelf(t *testing.T) {
	lines := []string{"one", "", "three"}
	res := CompareLines(lines, lines)
	assert.True(t, res.Identical)
	assert.Empty(t, res.Records)
}

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}
	return lines
}

func TestWindows(t *testing.T) {
	left := numbered(10)
	right := slices.Clone(left)
	right[5] = "changed"

	seq, err := Windows(left, right, 2)
	require.NoError(t, err)

	windows := slices.Collect(seq)
	require.Len(t, windows, 1)

	w := windows[0]
	assert.Equal(t, 5, w.Center)
	assert.Equal(t, 3, w.Start)
	assert.Equal(t, 8, w.End)
	require.Len(t, w.Lines, 5)
	assert.Equal(t, 3, w.Lines[0].Index)
	assert.Equal(t, 7, w.Lines[4].Index)

	for _, l := range w.Lines {
		assert.Equal(t, l.Index == 5, l.Center)
	}
	assert.Equal(t, "changed", w.Lines[2].Right)
}

func TestWindowsClipped(t *testing.T) {
	tests := []struct {
		name       string
		at         int
		start, end int
	}{
		{name: "first line", at: 0, start: 0, end: 3},
		{name: "second line", at: 1, start: 0, end: 4},
		{name: "last line", at: 9, start: 7, end: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := numbered(10)
			right := slices.Clone(left)
			right[tt.at] = "x"

			seq, err := Windows(left, right, 2)
			require.NoError(t, err)
			windows := slices.Collect(seq)
			require.Len(t, windows, 1)
			assert.Equal(t, tt.start, windows[0].Start)
			assert.Equal(t, tt.end, windows[0].End)
		})
	}
}

func TestWindowsOverlapNotMerged(t *testing.T) {
	left := numbered(6)
	right := slices.Clone(left)
	right[2] = "x"
	right[3] = "y"

	res, err := CompareContext(left, right, 2)
	require.NoError(t, err)
	require.Len(t, res.Windows, 2)
	assert.Equal(t, 0, res.Windows[0].Start)
	assert.Equal(t, 5, res.Windows[0].End)
	assert.Equal(t, 1, res.Windows[1].Start)
	assert.Equal(t, 6, res.Windows[1].End)
	assert.Len(t, res.Records, 2)
}

func TestWindowsShorterSide(t *testing.T) {
	res, err := CompareContext([]string{"a", "b"}, []string{"a", "b", "c", "d"}, 1)
	require.NoError(t, err)
	assert.True(t, res.LengthMismatch)
	require.Len(t, res.Windows, 2)

	last := res.Windows[1]
	assert.Equal(t, 2, last.Start)
	assert.Equal(t, 4, last.End)
	assert.True(t, last.Lines[1].LeftAbsent)
	assert.Equal(t, "d", last.Lines[1].Right)
}

func TestWindowsZeroRadius(t *testing.T) {
	res, err := CompareContext([]string{"a", "b"}, []string{"a", "c"}, 0)
	require.NoError(t, err)
	require.Len(t, res.Windows, 1)
	assert.Len(t, res.Windows[0].Lines, 1)
	assert.True(t, res.Windows[0].Lines[0].Center)
}

func TestWindowsNegativeRadius(t *testing.T) {
	_, err := Windows(nil, nil, -1)
	assert.ErrorIs(t, err, util.ErrPrecondition)

	_, err = CompareContext(nil, nil, -1)
	assert.ErrorIs(t, err, util.ErrPrecondition)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "byte", KindByte.String())
	assert.Equal(t, "character", KindChar.String())
	assert.Equal(t, "line", KindLine.String())

	b, err := KindLine.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "line", string(b))
}
