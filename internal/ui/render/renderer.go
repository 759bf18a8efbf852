package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/avelder/mview/internal/state"
	textutil "github.com/avelder/mview/internal/textutil"
)

// Terminal sizes are clamped into these bounds so pathological terminals
// cannot produce runaway frames or negative draw math.
const (
	minFrameWidth  = 20
	minFrameHeight = 5
	maxFrameWidth  = 400
	maxFrameHeight = 20
)

// Border glyphs.
const (
	glyphCornerTL = '┌'
	glyphCornerTR = '┐'
	glyphCornerBL = '└'
	glyphCornerBR = '┘'
	glyphEdgeV    = '│'
	glyphEdgeH    = '─'
	glyphMarker   = '▶'
)

// Renderer draws the whole UI from state. It holds no frame-to-frame state:
// every call clears and repaints, and the same state always produces the
// same frame.
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	runeWidthCache [128]int
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := effectiveSize(state.ScreenWidth, state.ScreenHeight)

	r.drawFrame(w, h)
	r.drawTitle(state, w)
	r.drawEntryList(state, w, h)
	r.drawStatus(state, w, h)
	if state.ShowHelp {
		r.drawHelpPanel(w, h)
	}

	r.screen.Show()
}

// effectiveSize clamps the reported terminal size into the frame bounds.
func effectiveSize(w, h int) (int, int) {
	if w < minFrameWidth {
		w = minFrameWidth
	}
	if w > maxFrameWidth {
		w = maxFrameWidth
	}
	if h < minFrameHeight {
		h = minFrameHeight
	}
	if h > maxFrameHeight {
		h = maxFrameHeight
	}
	return w, h
}

// setContent places a rune, silently ignoring negative coordinates so
// degenerate sizes never panic the draw path.
func (r *Renderer) setContent(x, y int, ru rune, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	r.screen.SetContent(x, y, ru, nil, style)
}

func (r *Renderer) drawFrame(w, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	right, bottom := w-1, h-1

	r.setContent(0, 0, glyphCornerTL, style)
	r.setContent(right, 0, glyphCornerTR, style)
	r.setContent(0, bottom, glyphCornerBL, style)
	r.setContent(right, bottom, glyphCornerBR, style)
	for x := 1; x < right; x++ {
		r.setContent(x, 0, glyphEdgeH, style)
		r.setContent(x, bottom, glyphEdgeH, style)
	}
	for y := 1; y < bottom; y++ {
		r.setContent(0, y, glyphEdgeV, style)
		r.setContent(right, y, glyphEdgeV, style)
	}
}

// drawTitle renders the current path on the top edge, with a trailing
// separator unless the path already is the root.
func (r *Renderer) drawTitle(state *statepkg.AppState, w int) {
	title := textutil.SanitizeTerminalText(state.CurrentPath)
	if title == "" {
		title = "/"
	}
	if title != "/" {
		title += "/"
	}

	style := tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true)
	budget := w - 4
	if budget <= 0 {
		return
	}
	r.drawText(2, 0, budget, r.truncateTextToWidth(title, budget), style)
}

// visibleRows is the height of the list viewport band (rows 1..h-2).
func visibleRows(h int) int {
	rows := h - 2
	if rows < 0 {
		rows = 0
	}
	return rows
}

// scrollOffset derives the vertical shift purely from the selection: zero
// while the selection fits the band, otherwise shifted so the selected row
// is pinned to the last visible row.
func scrollOffset(selected, rows int) int {
	if rows <= 0 || selected < rows {
		return 0
	}
	return selected - rows + 1
}

func (r *Renderer) drawEntryList(state *statepkg.AppState, w, h int) {
	rows := visibleRows(h)
	if rows == 0 || len(state.Entries) == 0 {
		return
	}

	offset := scrollOffset(state.SelectedIndex, rows)
	end := offset + rows
	if end > len(state.Entries) {
		end = len(state.Entries)
	}

	// Name budget: frame edges plus marker gutter, minus the help panel
	// (border included) and a one-cell gap when it is open.
	budget := w - 5
	if state.ShowHelp {
		budget -= helpPanelWidth + 3
	}
	if budget <= 0 {
		return
	}

	y := 1
	for idx := offset; idx < end; idx++ {
		entry := state.Entries[idx]

		var style tcell.Style
		name := textutil.SanitizeTerminalText(entry.DisplayName)
		switch {
		case !entry.IsFile:
			style = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
			name += "/"
		case entry.IsWatched:
			style = tcell.StyleDefault.Foreground(r.theme.WatchedFg)
		default:
			style = tcell.StyleDefault.Foreground(r.theme.FileFg)
		}

		if idx == state.SelectedIndex {
			markerStyle := tcell.StyleDefault.Foreground(r.theme.MarkerFg).Bold(true)
			r.setContent(2, y, glyphMarker, markerStyle)
			style = style.Bold(true)
		}

		r.drawText(4, y, budget, r.truncateTextToWidth(name, budget), style)
		y++
	}
}

// drawStatus renders transient status text on the bottom edge.
func (r *Renderer) drawStatus(state *statepkg.AppState, w, h int) {
	if state.Status == "" {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg)
	budget := w - 4
	if budget <= 0 {
		return
	}
	text := textutil.SanitizeTerminalText(state.Status)
	r.drawText(2, h-1, budget, r.truncateTextToWidth(text, budget), style)
}
