// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/fatool/internal/log"
)

// Entry is one cached remote object. Key is the clear-text key, usually the
// s3:// URI, and EncodedKey is the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
}

// Dir resolves the base cache directory: FATOOL_CACHE_DIR when set and
// non-empty, else <UserCacheDir>/fatool. It returns false when neither can be
// resolved, which callers treat as caching disabled.
func Dir() (string, bool) {
	if c := os.Getenv("FATOOL_CACHE_DIR"); c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "fatool"), true
	}
	return "", false
}

// Enabled returns true unless FATOOL_CACHE is "0" or "false".
func Enabled() bool {
	switch os.Getenv("FATOOL_CACHE") {
	case "0", "false":
		return false
	}
	return true
}

// EnsureBaseDir creates the base cache directory. It returns the directory,
// whether the cache is usable, and any error creating it.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// EntryPath returns where key lives beneath subdirs and whether it is
// already there.
func EntryPath(subdirs []string, key string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}

	parts := append([]string{base}, subdirs...)
	p := filepath.Join(append(parts, encodeKey(key))...)
	_, err := os.Stat(p)
	return p, err == nil
}

// Read returns the cached entry for key. Data comes back exactly as written.
func Read(subdirs []string, key string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}

	p, ok := EntryPath(subdirs, key)
	if !ok {
		return nil, false
	}

	data, err := os.ReadFile(p)
	if err != nil {
		log.Debugf("cache unreadable: key=%s err=%v", key, err)
		return nil, false
	}

	log.Debugf("cache hit: key=%s bytes=%d", key, len(data))
	return &Entry{Key: key, EncodedKey: filepath.Base(p), Path: p, Data: data}, true
}

// Write stores data for key beneath subdirs, creating directories as
// needed. A disabled cache makes it a no-op.
func Write(subdirs []string, key string, data []byte) error {
	if !Enabled() {
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	p := filepath.Join(dir, encodeKey(key))
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: key=%s bytes=%d", key, len(data))
	return nil
}

// Purge removes cached files last written more than hours ago. hours <= 0
// keeps everything.
func Purge(hours int) error {
	if hours <= 0 {
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		// A file removed by a concurrent run shows up as a walk error.
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			return nil
		}
		log.Debugf("removed cache file %s", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// encodeKey hashes key into a filesystem-safe name.
func encodeKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
