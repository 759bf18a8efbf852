package state

import (
	fsutil "github.com/avelder/mview/internal/fs"
)

// Entry mirrors fs.Entry so UI/state code can rely on a stable type.
type Entry = fsutil.Entry

// AppState is the single source of truth, owned by the event loop and
// passed by pointer through reducer and renderer. Never ambient/global.
type AppState struct {
	// Navigation
	CurrentPath   string
	SelectedIndex int
	Entries       []Entry

	// UI toggles
	ShowHidden bool
	ShowHelp   bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Transient status text (spawn failures and the like), cleared on the
	// next command.
	Status string
}

// SelectedEntry returns the entry under the cursor, or nil when the list is
// empty or the index is out of bounds.
func (s *AppState) SelectedEntry() *Entry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// clampSelection wraps SelectedIndex into [0, len(Entries)) using floored
// modulo, so moving up from the first entry lands on the last and moving
// down from the last wraps to the first. Empty lists pin the index to 0.
func (s *AppState) clampSelection() {
	n := len(s.Entries)
	if n == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex = ((s.SelectedIndex % n) + n) % n
}
