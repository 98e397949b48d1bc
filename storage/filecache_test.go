package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hastma/hastma-cup/models"
)

func TestDocumentCache_RoundTrip(t *testing.T) {
	cache := NewDocumentCache(filepath.Join(t.TempDir(), "cache.json"))

	doc := models.DefaultTournament(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, cache.Store(doc))

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, doc.Metadata.TournamentName, loaded.Metadata.TournamentName)
	assert.Len(t, loaded.Teams, len(doc.Teams))
	assert.Len(t, loaded.Matches, len(doc.Matches))
}

func TestDocumentCache_MissingFile(t *testing.T) {
	cache := NewDocumentCache(filepath.Join(t.TempDir(), "nope.json"))

	_, err := cache.Load()
	require.ErrorIs(t, err, ErrCacheEmpty)
}

func TestDocumentCache_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewDocumentCache(path).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheEmpty)
}

func TestDocumentCache_OverwriteKeepsLatest(t *testing.T) {
	cache := NewDocumentCache(filepath.Join(t.TempDir(), "cache.json"))

	first := models.DefaultTournament(time.Now().UTC())
	first.Metadata.TournamentName = "First"
	require.NoError(t, cache.Store(first))

	second := models.DefaultTournament(time.Now().UTC())
	second.Metadata.TournamentName = "Second"
	require.NoError(t, cache.Store(second))

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Metadata.TournamentName)
}

func TestDocumentCache_CreatesParentDirectory(t *testing.T) {
	cache := NewDocumentCache(filepath.Join(t.TempDir(), "nested", "dir", "cache.json"))

	require.NoError(t, cache.Store(models.DefaultTournament(time.Now().UTC())))
	_, err := cache.Load()
	require.NoError(t, err)
}
