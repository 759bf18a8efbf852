package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store keeps the set of watched path keys and persists it to a JSON file.
//
// Keys are normalized to be relative to the configured media root when the
// path lies under that root (POSIX separators, no trailing slash); paths
// outside the root are kept verbatim after slash normalization. The same
// normalization runs at every read and write site so membership lookups stay
// consistent with what was recorded.
//
// Every mutation fully rewrites the backing file. There is no file locking:
// concurrent external writers race last-writer-wins.
type Store struct {
	path string
	root string
	keys map[string]struct{}
}

type historyFile struct {
	History []string `json:"history"`
}

// Load reads the history file at path. A missing or malformed file yields an
// empty store; watched state degrades to "nothing watched" rather than
// failing startup.
func Load(path, root string) *Store {
	s := &Store{
		path: path,
		root: filepath.Clean(root),
		keys: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return s
	}
	for _, k := range f.History {
		s.keys[k] = struct{}{}
	}
	return s
}

// Key returns the canonical history key for a path.
func (s *Store) Key(path string) string {
	clean := filepath.Clean(path)
	if s.root != "" && s.root != "." {
		if rel, err := filepath.Rel(s.root, clean); err == nil &&
			rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return strings.TrimSuffix(filepath.ToSlash(rel), "/")
		}
	}
	return strings.TrimSuffix(filepath.ToSlash(clean), "/")
}

// Contains reports whether path is recorded as watched.
func (s *Store) Contains(path string) bool {
	_, ok := s.keys[s.Key(path)]
	return ok
}

// Add records path as watched and rewrites the backing file.
func (s *Store) Add(path string) error {
	key := s.Key(path)
	if _, ok := s.keys[key]; ok {
		return nil
	}
	s.keys[key] = struct{}{}
	return s.save()
}

// Remove clears the watched mark for path and rewrites the backing file.
func (s *Store) Remove(path string) error {
	key := s.Key(path)
	if _, ok := s.keys[key]; !ok {
		return nil
	}
	delete(s.keys, key)
	return s.save()
}

// Toggle flips the watched mark for path and reports the new state.
func (s *Store) Toggle(path string) (bool, error) {
	if s.Contains(path) {
		return false, s.Remove(path)
	}
	return true, s.Add(path)
}

// Len returns the number of recorded keys.
func (s *Store) Len() int {
	return len(s.keys)
}

func (s *Store) save() error {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data, err := json.MarshalIndent(&historyFile{History: keys}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}

// EnsureFile creates an empty history file on first run if the data
// directory is usable. Mutations after this point keep the file current.
func (s *Store) EnsureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat history: %w", err)
	}
	return s.save()
}
