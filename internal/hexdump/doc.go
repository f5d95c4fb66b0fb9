// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package hexdump lays two equal-length buffers out as side-by-side hex dump
// rows, 16 bytes per row, with a per-byte mismatch mask. It renders no color;
// the mask is what presentation code reads to decide emphasis.
package hexdump
