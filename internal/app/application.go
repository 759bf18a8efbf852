package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/avelder/mview/internal/config"
	"github.com/avelder/mview/internal/history"
	"github.com/avelder/mview/internal/player"
	statepkg "github.com/avelder/mview/internal/state"
	inputui "github.com/avelder/mview/internal/ui/input"
	renderui "github.com/avelder/mview/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	cfg        config.Config
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	launcher   *player.Launcher
	watched    *history.Store
	shouldQuit bool
}

// Close restores the terminal. Safe to call once after Run returns.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
