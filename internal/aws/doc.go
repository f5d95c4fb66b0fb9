// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws builds AWS SDK v2 clients and fetches evidence objects from S3
// for the loader.
package aws
