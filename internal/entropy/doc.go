// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package entropy computes byte histograms and Shannon entropy, in bits per
// byte, over fully loaded buffers.
package entropy
