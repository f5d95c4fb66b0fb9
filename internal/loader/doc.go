// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader reads whole files into memory for analysis. Paths are local
// files or s3://bucket/key URIs. Text is decoded up front so that decode
// failures surface before any comparison runs.
package loader
