// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package util holds the error kinds shared by the analysis packages and the
// line splitting policy applied to every decoded text buffer.
package util
