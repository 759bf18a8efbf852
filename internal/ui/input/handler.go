package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/avelder/mview/internal/state"
)

// InputHandler converts tcell events to Actions.
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event requests application shutdown.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.MoveUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.MoveDownAction{}
		return true

	case tcell.KeyRight:
		ih.actionChan <- statepkg.ActivateAction{}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ActivateAction{}
		return true

	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.LeaveAction{}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case 'k':
			ih.actionChan <- statepkg.MoveUpAction{}
		case 'j':
			ih.actionChan <- statepkg.MoveDownAction{}
		case 'l':
			ih.actionChan <- statepkg.ActivateAction{}
		case 'h':
			ih.actionChan <- statepkg.LeaveAction{}
		case 'w', 'W':
			ih.actionChan <- statepkg.ToggleWatchedAction{}
		case '.':
			ih.actionChan <- statepkg.ToggleHiddenAction{}
		case '?':
			ih.actionChan <- statepkg.ToggleHelpAction{}
		case 'r', 'R':
			ih.actionChan <- statepkg.RefreshAction{}
		}
		return true

	default:
		return true
	}
}
