// SPDX-License-Identifier: Unlicense OR MIT

// Package shadercache implements a disk backed cache for the compiled
// shader blobs EGL drivers hand out through EGL_ANDROID_blob_cache.
//
// Every entry is one file below <root>/shader_cache/<driver>/, named by
// the URL safe base64 encoding of its key followed by ".cache". Files hold
// the raw blob.
package shadercache

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const suffix = ".cache"

// Cache is a directory of shader blobs.
type Cache struct {
	dir    string
	logger *log.Logger
}

// DefaultRoot returns the root used when the host does not provide one.
func DefaultRoot() (string, error) {
	return os.UserCacheDir()
}

// Open prepares the cache directory for driver below root, creating it if
// necessary. root itself must exist.
func Open(root, driver string, logger *log.Logger) (*Cache, error) {
	if root == "" {
		return nil, errors.New("shadercache: empty root")
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("shadercache: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("shadercache: %s is not a directory", root)
	}
	dir := filepath.Join(root, "shader_cache", driver)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("shadercache: %w", err)
	}
	return &Cache{dir: dir, logger: logger}, nil
}

// Dir returns the directory holding the cache entries.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the file storing key.
func (c *Cache) Path(key []byte) string {
	return filepath.Join(c.dir, base64.URLEncoding.EncodeToString(key)+suffix)
}

// Set stores value under key. Failures only lose the entry.
func (c *Cache) Set(key, value []byte) {
	if err := os.WriteFile(c.Path(key), value, 0o644); err != nil {
		c.logger.Debug("shader cache write failed", "err", err)
	}
}

// Get copies the blob stored under key into value when it fits and returns
// the blob size. It returns 0 when there is no entry.
func (c *Cache) Get(key, value []byte) int {
	f, err := os.Open(c.Path(key))
	if err != nil {
		return 0
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return 0
	}
	size := fi.Size()
	if size <= int64(len(value)) {
		if _, err := io.ReadFull(f, value[:size]); err != nil {
			c.logger.Debug("shader cache read failed", "err", err)
			return 0
		}
	}
	return int(size)
}
