package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type helpEntry struct {
	keys string
	desc string
}

var helpEntries = []helpEntry{
	{keys: "↑/k ↓/j", desc: "Move selection"},
	{keys: "↵/→/l", desc: "Open dir / play file"},
	{keys: "←/h/⌫", desc: "Parent directory"},
	{keys: "w", desc: "Toggle watched"},
	{keys: ".", desc: "Toggle hidden+filter"},
	{keys: "r", desc: "Refresh"},
	{keys: "?", desc: "Toggle this help"},
	{keys: "q/Esc", desc: "Quit"},
}

// helpPanelWidth is the inner text width of the overlay; columns line up as
// fixed-width rows.
const helpPanelWidth = 32

func buildHelpLines() []string {
	lines := make([]string, 0, len(helpEntries))
	for _, e := range helpEntries {
		lines = append(lines, fmt.Sprintf(" %-9s %s", e.keys, e.desc))
	}
	return lines
}

// drawHelpPanel draws a filled, bordered keybinding panel in the top-right
// region, clipped to stay inside the outer frame.
func (r *Renderer) drawHelpPanel(w, h int) {
	lines := buildHelpLines()

	panelW := helpPanelWidth + 2
	panelH := len(lines) + 2
	if panelH > h-2 {
		panelH = h - 2
	}
	if panelW > w-2 {
		panelW = w - 2
	}
	if panelW < 4 || panelH < 3 {
		return
	}

	x0 := w - 1 - panelW
	y0 := 1
	x1 := x0 + panelW - 1
	y1 := y0 + panelH - 1

	fill := tcell.StyleDefault.Background(r.theme.HelpBg).Foreground(r.theme.HelpFg)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setContent(x, y, ' ', fill)
		}
	}

	r.setContent(x0, y0, glyphCornerTL, fill)
	r.setContent(x1, y0, glyphCornerTR, fill)
	r.setContent(x0, y1, glyphCornerBL, fill)
	r.setContent(x1, y1, glyphCornerBR, fill)
	for x := x0 + 1; x < x1; x++ {
		r.setContent(x, y0, glyphEdgeH, fill)
		r.setContent(x, y1, glyphEdgeH, fill)
	}
	for y := y0 + 1; y < y1; y++ {
		r.setContent(x0, y, glyphEdgeV, fill)
		r.setContent(x1, y, glyphEdgeV, fill)
	}

	budget := panelW - 2
	for i, line := range lines {
		y := y0 + 1 + i
		if y >= y1 {
			break
		}
		r.drawText(x0+1, y, budget, r.truncateTextToWidth(line, budget), fill)
	}
}
