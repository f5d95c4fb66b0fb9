// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points FATOOL_CFG_FILE at a testdata file, resets the global
// Config and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv("FATOOL_CFG_FILE", absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "json", cfg.Data["output"])
				assert.Equal(t, 6, cfg.Data["min"])
			},
		},
		{
			name:     "nested structure",
			testFile: "namespaced.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				strs, ok := cfg.Data["strings"].(map[string]interface{})
				require.True(t, ok, "strings should be a map")
				assert.Equal(t, 8, strs["min"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "invalid yaml",
			testFile: "invalid.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				cfg, err := Load()
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				tt.checkFunc(t, cfg)
			})
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("FATOOL_CFG_FILE", "/nonexistent/path/fatool.yaml")
	_, err := Load()
	assert.ErrorContains(t, err, "FATOOL_CFG_FILE")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("FATOOL_CFG_FILE", "testdata")
	_, err := Path()
	assert.ErrorContains(t, err, "directory")
}

func TestGetters(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		s, err := GetString("name")
		require.NoError(t, err)
		assert.Equal(t, "case-0042", s)

		n, err := GetInt("count")
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		n, err = GetInt("ratio")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		b, err := GetBool("enabled", true)
		require.NoError(t, err)
		assert.False(t, b)

		tags, err := GetStringSlice("tags")
		require.NoError(t, err)
		assert.Equal(t, []string{"disk", "memory"}, tags)
	})
}

func TestGetterDefaultsAndTypeErrors(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		s, err := GetString("missing", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", s)

		n, err := GetInt("missing", 4)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		b, err := GetBool("missing", true)
		require.NoError(t, err)
		assert.True(t, b)

		sl, err := GetStringSlice("missing", []string{"x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, sl)

		_, err = GetString("missing")
		assert.Error(t, err)

		_, err = GetString("count")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetInt("name")
		assert.ErrorContains(t, err, "not an int")

		_, err = GetBool("name")
		assert.ErrorContains(t, err, "not a bool")

		_, err = GetStringSlice("numbers")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetStringSlice("name")
		assert.ErrorContains(t, err, "not a slice")
	})
}

func TestNamespacePreference(t *testing.T) {
	withConfig(t, "namespaced.yaml", func(t *testing.T) {
		n, err := GetInt("min")
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		Config.Namespace = "strings"
		n, err = GetInt("min")
		require.NoError(t, err)
		assert.Equal(t, 8, n)

		// Keys missing under the namespace fall back to the global key.
		s, err := GetString("colors.diff")
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", s)

		set, err := GetStringSlice("quick")
		require.NoError(t, err)
		assert.Equal(t, []string{"--output json", "--titles"}, set)
	})
}

func TestLoadKeepsNamespace(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		Config.Namespace = "entropy"
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "entropy", cfg.Namespace)
	})
}
