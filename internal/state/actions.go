package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type EnterAction struct{}
type LeaveAction struct{}

// ===== TOGGLE ACTIONS =====

type ToggleWatchedAction struct{}
type ToggleHiddenAction struct{}
type ToggleHelpAction struct{}

// ===== VIEW ACTIONS =====

type RefreshAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

// ActivateAction plays the selected file; routed through the app layer to
// the player launcher, never handled by the reducer itself.
type ActivateAction struct{}

type QuitAction struct{}
