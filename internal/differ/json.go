// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/fatool/internal/util"
)

// JSONOptions shapes a structural JSON comparison.
type JSONOptions struct {
	// Path is a gjson path selecting the sub-document to compare in both
	// inputs. Empty compares the whole documents.
	Path string
	// Filter lists top-level keys removed from both sides before comparing.
	Filter []string
	// Coloring enables ANSI colors in the rendered report.
	Coloring bool
}

// JSONResult is the outcome of a structural JSON comparison.
type JSONResult struct {
	Modified bool   `json:"modified" yaml:"modified"`
	Report   string `json:"report,omitempty" yaml:"report,omitempty"`
}

// JSON compares two JSON object documents key by key. Report holds the ASCII
// rendering of the delta and is empty when the documents match.
func JSON(left, right []byte, opts JSONOptions) (JSONResult, error) {
	lm, err := jsonObject("left", left, opts)
	if err != nil {
		return JSONResult{}, err
	}
	rm, err := jsonObject("right", right, opts)
	if err != nil {
		return JSONResult{}, err
	}

	delta := gojsondiff.New().CompareObjects(lm, rm)
	if !delta.Modified() {
		return JSONResult{}, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Coloring,
	}

	report, err := formatter.NewAsciiFormatter(lm, config).Format(delta)
	if err != nil {
		return JSONResult{}, fmt.Errorf("failed to format delta: %w", err)
	}

	return JSONResult{Modified: true, Report: report}, nil
}

// jsonObject validates doc, narrows it to opts.Path and strips filtered keys.
func jsonObject(side string, doc []byte, opts JSONOptions) (map[string]interface{}, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("%s document is not valid JSON: %w", side, util.ErrDecode)
	}

	raw := doc
	if opts.Path != "" {
		sel := gjson.GetBytes(doc, opts.Path)
		if !sel.Exists() {
			return nil, fmt.Errorf("%s document has no %q: %w", side, opts.Path, util.ErrPrecondition)
		}
		raw = []byte(sel.Raw)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%s document is not a JSON object: %w", side, util.ErrDecode)
	}

	for _, key := range opts.Filter {
		if key != "" {
			delete(obj, key)
		}
	}

	return obj, nil
}
