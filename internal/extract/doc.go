// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package extract pulls printable ASCII runs out of binary buffers and finds
// lines of decoded text that contain a needle.
package extract
