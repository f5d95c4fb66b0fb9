// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tfctl/fatool/internal/log"
)

// filterRegex splits a filter expression into key, operator (with optional
// negation) and target. Examples: "length>8", "text!^http", "text="
// (empty target). A key without an operator is rejected by BuildFilters.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"key"`
	Negate  bool   `yaml:"negate" json:"negate"`
	Operand string `yaml:"operand" json:"operand"`
	Value   string `yaml:"value" json:"value"`
}

// FieldFunc returns the named field of a row, or false if the row has no
// such field.
type FieldFunc[T any] func(row T, key string) (any, bool)

// BuildFilters parses a delimited list of filter expressions.
// Invalid expressions are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Allow an override for targets that contain commas.
	delim := ","
	if d, ok := os.LookupEnv("FATOOL_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Errorf("invalid filter: %s", filterSpec)
			continue
		}

		key := strings.TrimSpace(parts[1])
		operand := parts[2]
		target := parts[3]

		if key == "" {
			log.Errorf("invalid filter: empty key in %s", filterSpec)
			continue
		}
		if operand == "" {
			log.Errorf("invalid filter: no operator in %s", filterSpec)
			continue
		}

		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   target,
		})
	}

	return filters
}

// Apply returns the rows that pass every filter in spec. The input slice is
// not modified. An empty spec returns rows unchanged.
func Apply[T any](rows []T, spec string, field FieldFunc[T]) []T {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return rows
	}

	kept := make([]T, 0, len(rows))
	warned := map[string]bool{}
	for _, row := range rows {
		if applyFilters(row, filters, field, warned) {
			kept = append(kept, row)
		}
	}
	return kept
}

// applyFilters returns true if row matches all filters. warned tracks unknown
// keys so each is reported once.
func applyFilters[T any](row T, filters []Filter, field FieldFunc[T], warned map[string]bool) bool {
	for _, filter := range filters {
		value, ok := field(row, filter.Key)
		if !ok {
			if !warned[filter.Key] {
				log.Warnf("filter key not found: %s", filter.Key)
				warned[filter.Key] = true
			}
			continue
		}

		var result bool
		if num, ok := toFloat64(value); ok {
			result = checkNumericOperand(num, filter)
		} else {
			result = checkStringOperand(fmt.Sprintf("%v", value), filter)
		}

		if !result {
			return false
		}
	}
	return true
}

// checkNumericOperand compares value against the filter target numerically.
// Operands other than =, < and > fall back to string comparison.
func checkNumericOperand(value float64, filter Filter) bool {
	switch filter.Operand {
	case "=", "<", ">":
	default:
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}

	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Errorf("invalid numeric value: %s", filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	default:
		return (value < tgt) == !filter.Negate
	}
}

// checkStringOperand evaluates a string comparison filter.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}

// toFloat64 normalizes the numeric types rows expose. Returns (0, false) if
// v is not one of them.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
