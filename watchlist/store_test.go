package watchlist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviectl/moviectl/tmdb"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "watchlist.json")
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(tempStorePath(t), zerolog.Nop())
	assert.Empty(t, store.Movies())
	assert.Equal(t, 0, store.Len())
}

func TestLoadMalformedFile(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path, zerolog.Nop())
	assert.Empty(t, store.Movies())
}

func TestAddIsIdempotent(t *testing.T) {
	store := NewStore(tempStorePath(t), zerolog.Nop())

	added := store.Add(tmdb.Movie{ID: 42, Title: "Sample"})
	assert.True(t, added)
	assert.Equal(t, 1, store.Len())

	// same identifier again: no-op, first write wins
	added = store.Add(tmdb.Movie{ID: 42, Title: "Sample-Duplicate"})
	assert.False(t, added)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Sample", store.Movies()[0].Title)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	store := NewStore(path, zerolog.Nop())

	rating := 8.2
	movies := []tmdb.Movie{
		{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", Rating: &rating, Overview: "Neo...", Summary: "A classic."},
		{ID: 550, Title: "Fight Club", ReleaseDate: "Unknown"},
	}
	for _, m := range movies {
		store.Add(m)
	}

	reloaded := NewStore(path, zerolog.Nop())
	assert.Equal(t, movies, reloaded.Movies())
}

func TestRoundTripEmptyList(t *testing.T) {
	path := tempStorePath(t)
	store := NewStore(path, zerolog.Nop())

	// force a save of the empty list via export to the primary path
	_, err := store.Export(path)
	require.NoError(t, err)

	reloaded := NewStore(path, zerolog.Nop())
	assert.Empty(t, reloaded.Movies())
	assert.NotNil(t, reloaded.Movies())
}

func TestPersistedFormat(t *testing.T) {
	path := tempStorePath(t)
	store := NewStore(path, zerolog.Nop())
	store.Add(tmdb.Movie{ID: 42, Title: "Sample", ReleaseDate: "2020-01-01"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// top-level JSON array of movie objects
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.EqualValues(t, 42, raw[0]["id"])
	assert.Equal(t, "Sample", raw[0]["title"])
	assert.Equal(t, "2020-01-01", raw[0]["release_date"])
}

func TestMoviesReturnsCopy(t *testing.T) {
	store := NewStore(tempStorePath(t), zerolog.Nop())
	store.Add(tmdb.Movie{ID: 1, Title: "One"})

	got := store.Movies()
	got[0].Title = "mutated"
	assert.Equal(t, "One", store.Movies()[0].Title)
}

func TestContains(t *testing.T) {
	store := NewStore(tempStorePath(t), zerolog.Nop())
	store.Add(tmdb.Movie{ID: 7, Title: "Se7en"})

	assert.True(t, store.Contains(7))
	assert.False(t, store.Contains(8))
}

func TestExport(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		store := NewStore(tempStorePath(t), zerolog.Nop())
		store.Add(tmdb.Movie{ID: 1, Title: "One"})

		dest := filepath.Join(t.TempDir(), "export.json")
		got, err := store.Export(dest)
		require.NoError(t, err)
		assert.Equal(t, dest, got)

		var movies []tmdb.Movie
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &movies))
		assert.Equal(t, store.Movies(), movies)
	})

	t.Run("unwritable path returns error", func(t *testing.T) {
		store := NewStore(tempStorePath(t), zerolog.Nop())

		// a path whose parent is a regular file cannot be created
		parent := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

		_, err := store.Export(filepath.Join(parent, "export.json"))
		assert.Error(t, err)
	})
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	// point the store at a path whose parent is a regular file so save fails
	parent := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	store := NewStore(filepath.Join(parent, "watchlist.json"), zerolog.Nop())
	added := store.Add(tmdb.Movie{ID: 5, Title: "Five"})

	assert.True(t, added)
	assert.Equal(t, 1, store.Len())
}
