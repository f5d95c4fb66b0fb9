// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/tfctl/fatool/internal/util"
)

// positional walks indices 0..max(len)-1 and yields a Record for every index
// whose values differ. Missing positions compare as the zero value of T.
func positional[T comparable](left, right []T, kind Kind) iter.Seq[Record[T]] {
	return func(yield func(Record[T]) bool) {
		n := max(len(left), len(right))
		for i := 0; i < n; i++ {
			var l, r T
			la, ra := i >= len(left), i >= len(right)
			if !la {
				l = left[i]
			}
			if !ra {
				r = right[i]
			}
			if l == r {
				continue
			}

			rec := Record[T]{
				Index:       i,
				Left:        l,
				Right:       r,
				LeftAbsent:  la,
				RightAbsent: ra,
				Kind:        kind,
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func collect[T comparable](left, right []T, kind Kind) Result[T] {
	res := Result[T]{
		LeftLen:        len(left),
		RightLen:       len(right),
		LengthMismatch: len(left) != len(right),
	}
	for rec := range positional(left, right, kind) {
		res.Records = append(res.Records, rec)
	}
	res.Identical = !res.LengthMismatch && len(res.Records) == 0
	return res
}

// Bytes yields byte records. Positions past a buffer's end read as 0.
func Bytes(left, right []byte) iter.Seq[Record[byte]] {
	return positional(left, right, KindByte)
}

// CompareBytes collects Bytes into a Result.
func CompareBytes(left, right []byte) Result[byte] {
	return collect(left, right, KindByte)
}

// Chars yields character records. Positions past a text's end read as NUL.
func Chars(left, right []rune) iter.Seq[Record[rune]] {
	return positional(left, right, KindChar)
}

// CompareText compares two decoded texts character by character. Both must be
// valid UTF-8; otherwise ErrDecode is returned and nothing is compared.
func CompareText(left, right string) (Result[rune], error) {
	if !utf8.ValidString(left) {
		return Result[rune]{}, fmt.Errorf("left text: %w", util.ErrDecode)
	}
	if !utf8.ValidString(right) {
		return Result[rune]{}, fmt.Errorf("right text: %w", util.ErrDecode)
	}
	return collect([]rune(left), []rune(right), KindChar), nil
}
