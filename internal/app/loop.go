package app

import (
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/avelder/mview/internal/config"
	fsutil "github.com/avelder/mview/internal/fs"
	"github.com/avelder/mview/internal/history"
	"github.com/avelder/mview/internal/player"
	statepkg "github.com/avelder/mview/internal/state"
	"github.com/avelder/mview/internal/ui/input"
	renderui "github.com/avelder/mview/internal/ui/render"
)

// pollTimeout bounds how long the loop waits for input before redrawing the
// current frame anyway.
const pollTimeout = time.Second

// NewApplication wires the components and takes over the terminal.
func NewApplication(cfg config.Config) (*Application, error) {
	watched := history.Load(filepath.Join(cfg.DataDirectory, "watched.json"), cfg.DefaultDirectory)
	// First-run creation only; later mutations rewrite the file themselves.
	_ = watched.EnsureFile()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	lister := fsutil.NewLister(cfg.FileTypeFilters, watched)
	reducer := statepkg.NewStateReducer(lister, watched)
	actionCh := make(chan statepkg.Action, 10)

	w, h := screen.Size()
	state := &statepkg.AppState{
		CurrentPath:  filepath.Clean(cfg.DefaultDirectory),
		ScreenWidth:  w,
		ScreenHeight: h,
	}
	// Initial listing; an unreadable start directory just shows empty.
	reducer.Refresh(state)

	app := &Application{
		screen:   screen,
		cfg:      cfg,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
		launcher: player.NewLauncher(cfg.PlayerCommand, cfg.DataDirectory),
		watched:  watched,
	}
	return app, nil
}

// Run drives the event loop until a quit command. The screen is restored on
// every exit path, including a panic inside the loop body.
func (app *Application) Run() {
	defer app.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(pollTimeout)
	defer ticker.Stop()

	for !app.shouldQuit {
		app.renderer.Render(app.state)

		select {
		case ev := <-eventChan:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-ticker.C:
			// Idle redraw on the next loop pass.
		}

		app.drainActions()
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	}
}

func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
	case statepkg.ActivateAction:
		app.handleActivate()
	default:
		_, _ = app.reducer.Reduce(app.state, action)
	}
}
