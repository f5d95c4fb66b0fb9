// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares two fully loaded inputs position by position, as
// bytes, characters or lines, and reports each mismatching index as a
// Record. Comparison is index aligned; no edit-distance alignment is tried.
// JSON documents may also be compared structurally.
package differ
