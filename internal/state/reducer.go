package state

import (
	"fmt"
	"path/filepath"

	fsutil "github.com/avelder/mview/internal/fs"
)

// Lister enumerates a directory's visible entries.
type Lister interface {
	List(path string, showHidden bool) ([]fsutil.Entry, error)
}

// WatchToggler flips the persisted watched mark for a path.
type WatchToggler interface {
	Toggle(path string) (bool, error)
}

// StateReducer applies actions to AppState. After every command it re-runs
// the lister against the (possibly changed) current path and re-clamps the
// selection, so Entries never go stale and the clamping invariant holds on
// every frame.
type StateReducer struct {
	lister  Lister
	watched WatchToggler
}

// NewStateReducer creates a reducer. watched may be nil when no history
// store is available; ToggleWatchedAction is then a no-op.
func NewStateReducer(lister Lister, watched WatchToggler) *StateReducer {
	return &StateReducer{lister: lister, watched: watched}
}

// Reduce applies an action to state and returns the same state pointer.
// This is the pure-logic core: no terminal access, fully testable.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	state.Status = ""

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveUpAction:
		state.SelectedIndex--

	case MoveDownAction:
		state.SelectedIndex++

	case EnterAction:
		entry := state.SelectedEntry()
		if entry == nil || entry.IsFile {
			break
		}
		// Probe readability first: entering an unreadable directory is a
		// no-op, not a crash and not a blank screen.
		if _, err := r.lister.List(entry.Path, state.ShowHidden); err != nil {
			break
		}
		state.CurrentPath = entry.Path
		state.SelectedIndex = 0

	case LeaveAction:
		state.CurrentPath = parentPath(state.CurrentPath)
		state.SelectedIndex = 0

	// ===== TOGGLES =====

	case ToggleWatchedAction:
		entry := state.SelectedEntry()
		if entry == nil || !entry.IsFile || r.watched == nil {
			break
		}
		if _, err := r.watched.Toggle(entry.Path); err != nil {
			state.Status = fmt.Sprintf("history: %v", err)
		}

	case ToggleHiddenAction:
		state.ShowHidden = !state.ShowHidden

	case ToggleHelpAction:
		state.ShowHelp = !state.ShowHelp

	// ===== VIEW =====

	case RefreshAction:
		// Nothing to mutate; the post-command refresh below re-reads.

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
	}

	r.refresh(state)
	return state, nil
}

// refresh re-lists the current path and re-clamps the selection. An
// unreadable current directory yields an empty list; prior entries are
// replaced, never left stale.
func (r *StateReducer) refresh(state *AppState) {
	entries, err := r.lister.List(state.CurrentPath, state.ShowHidden)
	if err != nil {
		entries = nil
	}
	state.Entries = entries
	state.clampSelection()
}

// Refresh re-reads the current directory outside of an action dispatch,
// e.g. after the app layer records a file as watched.
func (r *StateReducer) Refresh(state *AppState) {
	r.refresh(state)
}

// parentPath returns the parent directory; the root is its own parent.
func parentPath(path string) string {
	if path == "" {
		return string(filepath.Separator)
	}
	return filepath.Dir(filepath.Clean(path))
}
