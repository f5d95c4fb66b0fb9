// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output is the presentation layer. It turns the structured results
// of the analysis packages into styled text, tables, JSON or YAML. Mismatch
// information is always visible: with color it is highlighted, without color
// it is marked with characters.
package output
