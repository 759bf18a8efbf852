package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru > 0 && ru < 128 {
		if w := r.runeWidthCache[ru]; w != 0 {
			return w - 1
		}
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		r.runeWidthCache[ru] = w + 1
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

// truncateTextToWidth trims text to maxWidth display cells, appending an
// ellipsis when anything was cut.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = '…'
	ellipsisWidth := r.cachedRuneWidth(ellipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0
	for _, ru := range text {
		w := r.cachedRuneWidth(ru)
		if currentWidth+w > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += w
	}
	builder.WriteRune(ellipsis)
	return builder.String()
}

// drawText writes text starting at (x, y), clipped to maxWidth display
// cells, and returns the x position after the last cell written.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	startX := x
	for _, ru := range text {
		w := r.cachedRuneWidth(ru)
		if x-startX+w > maxWidth {
			break
		}
		r.setContent(x, y, ru, style)
		x += w
	}
	return x
}
