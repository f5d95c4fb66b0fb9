// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for fatool's user
// configuration. The configuration is a YAML document named fatool.yaml in
// the user's configuration directory, or the file named by FATOOL_CFG_FILE.
//
// Resolution relies on os.UserConfigDir which follows platform conventions.
package config
