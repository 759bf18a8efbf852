package app

import (
	"fmt"

	statepkg "github.com/avelder/mview/internal/state"
)

// handleActivate opens the selected directory or plays the selected file.
// Playback is fire-and-forget; a spawn failure lands on the status line and
// the loop keeps running.
func (app *Application) handleActivate() {
	entry := app.state.SelectedEntry()
	if entry == nil {
		return
	}

	if !entry.IsFile {
		_, _ = app.reducer.Reduce(app.state, statepkg.EnterAction{})
		return
	}

	app.state.Status = ""
	if err := app.launcher.Play(entry.Path); err != nil {
		app.state.Status = fmt.Sprintf("player: %v", err)
		app.reducer.Refresh(app.state)
		return
	}

	if err := app.watched.Add(entry.Path); err != nil {
		app.state.Status = fmt.Sprintf("history: %v", err)
	}
	app.reducer.Refresh(app.state)
}
