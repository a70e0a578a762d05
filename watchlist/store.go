// Package watchlist persists the user's movie watchlist as a JSON file.
//
// The store is deliberately forgiving: a missing or unreadable file loads as
// an empty list, and a failed save leaves the in-memory list authoritative
// for the rest of the session. Concurrent processes writing the same file
// race with last-writer-wins semantics; the tool assumes a single user
// running a single instance.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/moviectl/moviectl/tmdb"
)

// DefaultExportPath is used by Export when no path is given.
const DefaultExportPath = "movie_watchlist.json"

// Store holds the watchlist in memory and mirrors it to a file.
type Store struct {
	path   string
	movies []tmdb.Movie
	logger zerolog.Logger
}

// DefaultPath returns the primary watchlist location under the user's home
// directory, falling back to the working directory when home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moviectl_watchlist.json"
	}
	return filepath.Join(home, ".moviectl", "watchlist.json")
}

// NewStore creates a store bound to path and loads any existing list.
// Load failures are logged, never returned; the store starts empty.
func NewStore(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read watchlist")
		}
		s.movies = []tmdb.Movie{}
		return
	}

	var movies []tmdb.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Watchlist file is malformed, starting empty")
		s.movies = []tmdb.Movie{}
		return
	}

	s.movies = movies
}

// Movies returns a copy of the current watchlist entries in order.
func (s *Store) Movies() []tmdb.Movie {
	out := make([]tmdb.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.movies)
}

// Contains reports whether a movie with the given identifier is present.
func (s *Store) Contains(id int64) bool {
	for _, m := range s.movies {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Add appends the movie and persists the list. Adding an identifier that is
// already present is a no-op and reports false; the existing entry wins.
func (s *Store) Add(movie tmdb.Movie) bool {
	if s.Contains(movie.ID) {
		s.logger.Debug().Int64("movie_id", movie.ID).Msg("Movie already on watchlist")
		return false
	}

	s.movies = append(s.movies, movie)
	s.save()
	return true
}

// save writes the full list to the store path via a temp file and rename so
// a crash mid-write cannot truncate the previous list. Failures are logged;
// the in-memory list remains the source of truth for the session.
func (s *Store) save() {
	if err := writeJSON(s.path, s.movies); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to save watchlist")
	}
}

// Export writes the current list to the given path, or DefaultExportPath in
// the user's home directory when path is empty. The error is returned for
// display but the session is expected to continue.
func (s *Store) Export(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, DefaultExportPath)
		} else {
			path = DefaultExportPath
		}
	}

	if err := writeJSON(path, s.movies); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Watchlist export failed")
		return path, err
	}

	return path, nil
}

func writeJSON(path string, movies []tmdb.Movie) error {
	if movies == nil {
		movies = []tmdb.Movie{}
	}

	data, err := json.MarshalIndent(movies, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode watchlist: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".watchlist-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write watchlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
