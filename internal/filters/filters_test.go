// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// loadTestData loads test cases from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

type row struct {
	Offset int
	Text   string
}

func rowField(r row, key string) (any, bool) {
	switch key {
	case "offset":
		return r.Offset, true
	case "text":
		return r.Text, true
	case "length":
		return len(r.Text), true
	}
	return nil, false
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Setenv("FATOOL_FILTER_DELIM", tt.Delimiter)

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			if tt.Want != nil {
				assert.Equal(t, tt.Want, got)
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("string_operands.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{"equal", 8, Filter{Operand: "=", Value: "8"}, true},
		{"not equal", 8, Filter{Operand: "=", Negate: true, Value: "8"}, false},
		{"greater", 7.9, Filter{Operand: ">", Value: "7.5"}, true},
		{"not greater", 7.9, Filter{Operand: ">", Negate: true, Value: "7.5"}, false},
		{"less", 100, Filter{Operand: "<", Value: "4096"}, true},
		{"bad target", 1, Filter{Operand: "<", Value: "x"}, false},
		{"prefix falls back to string", 4096, Filter{Operand: "^", Value: "40"}, true},
		{"contains falls back to string", 7.25, Filter{Operand: "@", Value: ".25"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestToFloat64(t *testing.T) {
	for _, v := range []any{3, int64(3), uint8(3), uint64(3), float32(3), 3.0} {
		got, ok := toFloat64(v)
		assert.True(t, ok, "%T", v)
		assert.InDelta(t, 3.0, got, 1e-9)
	}

	_, ok := toFloat64("3")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	rows := []row{
		{0, "MZ"},
		{64, "This program cannot be run in DOS mode."},
		{512, "KERNEL32.dll"},
		{530, "http://example.com/payload"},
		{900, "123456"},
	}

	tests := []struct {
		name string
		spec string
		want []int
	}{
		{"no filter keeps all", "", []int{0, 64, 512, 530, 900}},
		{"prefix", "text^http", []int{530}},
		{"length", "length>10", []int{64, 512, 530}},
		{"and", "length>10,offset<520", []int{64, 512}},
		{"negated regex", "text!/^[0-9]+$", []int{0, 64, 512, 530}},
		{"fold", "text~kernel32.DLL", []int{512}},
		{"unknown key ignored", "colour=red,offset=900", []int{900}},
		{"nothing matches", "text=nope", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(rows, tt.spec, rowField)
			offsets := []int{}
			for _, r := range got {
				offsets = append(offsets, r.Offset)
			}
			assert.Equal(t, tt.want, offsets)
		})
	}
}
