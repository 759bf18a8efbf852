package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// WatchChecker answers whether a path has been recorded as watched.
type WatchChecker interface {
	Contains(path string) bool
}

// Lister enumerates the immediate children of a directory, applying the
// hidden-entry policy and the configured extension allow-list.
type Lister struct {
	filters  []string
	watched  WatchChecker
	collator *collate.Collator
}

// NewLister creates a lister with the given extension filters. watched may
// be nil, in which case every file reports as unwatched.
func NewLister(filters []string, watched WatchChecker) *Lister {
	return &Lister{
		filters:  filters,
		watched:  watched,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// List returns the children of path, directories first, each group ordered
// case-insensitively by display name (ties keep enumeration order). When showHidden is false, hidden and
// reserved entries are excluded and non-directories must carry one of the
// configured suffixes; matched names have every filter suffix stripped from
// the display name only.
//
// An entry whose type cannot be resolved (symlink target stat racing with
// deletion) is treated as a file rather than failing the whole listing. An
// unreadable path returns a nil slice and an error; callers decide whether
// that means "no-op" (when entering a directory) or "cleared" (when
// refreshing in place).
func (l *Lister) List(path string, showHidden bool) ([]Entry, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		rawName := child.Name()
		if !showHidden && IsHidden(rawName) {
			continue
		}

		fullPath := filepath.Join(path, rawName)
		isFile := !child.IsDir()

		if child.Type()&os.ModeSymlink != 0 {
			if target, err := os.Stat(fullPath); err == nil {
				isFile = !target.IsDir()
			}
		}

		displayName := norm.NFC.String(rawName)
		if !showHidden && isFile {
			if !l.matchesFilter(rawName) {
				continue
			}
			displayName = l.stripSuffixes(displayName)
		}

		watched := false
		if isFile && l.watched != nil {
			watched = l.watched.Contains(fullPath)
		}

		entries = append(entries, Entry{
			Path:        fullPath,
			DisplayName: displayName,
			IsFile:      isFile,
			IsWatched:   watched,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsFile != entries[j].IsFile {
			return !entries[i].IsFile
		}
		return l.collator.CompareString(entries[i].DisplayName, entries[j].DisplayName) < 0
	})
	return entries, nil
}

// matchesFilter reports whether name ends with one of the configured
// suffixes. An empty filter list admits everything.
func (l *Lister) matchesFilter(name string) bool {
	if len(l.filters) == 0 {
		return true
	}
	for _, suffix := range l.filters {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (l *Lister) stripSuffixes(name string) string {
	for _, suffix := range l.filters {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return name
}
