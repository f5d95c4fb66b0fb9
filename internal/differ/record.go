// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "fmt"

// Kind names the unit a Record compares.
type Kind int

const (
	KindByte Kind = iota
	KindChar
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindChar:
		return "character"
	case KindLine:
		return "line"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText lets encoders emit the name instead of the ordinal.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalYAML is the yaml.v2 equivalent of MarshalText.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Record is one index where the two inputs disagree. When an index lies past
// the end of one input, that side holds the zero value of T and is flagged
// absent; the zero value exists only for alignment.
type Record[T comparable] struct {
	Index       int  `json:"index" yaml:"index"`
	Left        T    `json:"left" yaml:"left"`
	Right       T    `json:"right" yaml:"right"`
	LeftAbsent  bool `json:"left_absent,omitempty" yaml:"left_absent,omitempty"`
	RightAbsent bool `json:"right_absent,omitempty" yaml:"right_absent,omitempty"`
	Kind        Kind `json:"kind" yaml:"kind"`
}

// Padded reports whether either side of the record is past its input's end.
func (r Record[T]) Padded() bool {
	return r.LeftAbsent || r.RightAbsent
}

// Result is a completed positional comparison. Identical is false whenever
// LengthMismatch is set, even if every overlapping index matched.
type Result[T comparable] struct {
	LeftLen        int         `json:"left_len" yaml:"left_len"`
	RightLen       int         `json:"right_len" yaml:"right_len"`
	LengthMismatch bool        `json:"length_mismatch" yaml:"length_mismatch"`
	Identical      bool        `json:"identical" yaml:"identical"`
	Records        []Record[T] `json:"records" yaml:"records"`
}
