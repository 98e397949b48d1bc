package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hastma/hastma-cup/models"
)

var ErrCacheEmpty = errors.New("local cache is empty")

// DocumentCache is the offline-first fallback: a single JSON file
// mirroring the remote document exactly. It is written synchronously on
// every mutation and read when the remote store is unreachable or
// holds nothing.
type DocumentCache struct {
	path string
}

func NewDocumentCache(path string) *DocumentCache {
	return &DocumentCache{path: path}
}

func (c *DocumentCache) Load() (*models.Tournament, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCacheEmpty
		}
		return nil, fmt.Errorf("failed to read cache file %s: %w", c.path, err)
	}

	doc := &models.Tournament{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode cache file %s: %w", c.path, err)
	}
	return doc, nil
}

// Store writes the document atomically (temp file + rename) so a crash
// mid-write never corrupts the only local copy.
func (c *DocumentCache) Store(doc *models.Tournament) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document for cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "tournament-*.json")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("failed to replace cache file %s: %w", c.path, err)
	}
	return nil
}
