package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/avelder/mview/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func runeAt(scr tcell.SimulationScreen, x, y int) rune {
	ru, _, _, _ := scr.GetContent(x, y)
	return ru
}

func rowText(scr tcell.SimulationScreen, y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		ru, _, _, w := scr.GetContent(x, y)
		b.WriteRune(ru)
		if w > 1 {
			x += w - 1
		}
	}
	return b.String()
}

func foregroundAt(scr tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := scr.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func TestRenderDrawsBorderWithinClampedBounds(t *testing.T) {
	scr := newTestScreen(t, 80, 24)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/",
		ScreenWidth:  80,
		ScreenHeight: 24, // clamps to maxFrameHeight
	}
	renderer.Render(state)

	// Height clamps to 20 rows, width stays 80.
	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, glyphCornerTL},
		{79, 0, glyphCornerTR},
		{0, 19, glyphCornerBL},
		{79, 19, glyphCornerBR},
		{40, 0, glyphEdgeH},
		{40, 19, glyphEdgeH},
		{0, 10, glyphEdgeV},
		{79, 10, glyphEdgeV},
	}
	for _, c := range checks {
		if got := runeAt(scr, c.x, c.y); got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestRenderTitleShowsPathWithTrailingSeparator(t *testing.T) {
	scr := newTestScreen(t, 80, 20)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  80,
		ScreenHeight: 20,
	}
	renderer.Render(state)

	if got := rowText(scr, 0, 2, 2+len("/media/")); got != "/media/" {
		t.Errorf("title = %q, want %q", got, "/media/")
	}
}

func TestRenderRootTitleHasNoDoubleSeparator(t *testing.T) {
	scr := newTestScreen(t, 80, 20)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/",
		ScreenWidth:  80,
		ScreenHeight: 20,
	}
	renderer.Render(state)

	if got := rowText(scr, 0, 2, 4); got != "/─" {
		t.Errorf("root title = %q, want single separator then border", got)
	}
}

func TestRenderSelectionMarkerAndColors(t *testing.T) {
	scr := newTestScreen(t, 80, 20)
	renderer := NewRenderer(scr)
	theme := GetColorTheme()

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  80,
		ScreenHeight: 20,
		Entries: []statepkg.Entry{
			{Path: "/media/Show1", DisplayName: "Show1", IsFile: false},
			{Path: "/media/seen.mkv", DisplayName: "seen", IsFile: true, IsWatched: true},
			{Path: "/media/new.mkv", DisplayName: "new", IsFile: true},
		},
		SelectedIndex: 1,
	}
	renderer.Render(state)

	if got := runeAt(scr, 2, 2); got != glyphMarker {
		t.Errorf("expected marker at column 2 of selected row, got %q", got)
	}
	if got := runeAt(scr, 2, 1); got == glyphMarker {
		t.Errorf("marker should not appear on unselected rows")
	}

	if got := rowText(scr, 1, 4, 4+len("Show1/")); got != "Show1/" {
		t.Errorf("directory row = %q, want trailing slash", got)
	}
	if fg := foregroundAt(scr, 4, 1); fg != theme.DirectoryFg {
		t.Errorf("directory color = %v, want %v", fg, theme.DirectoryFg)
	}
	if fg := foregroundAt(scr, 4, 2); fg != theme.WatchedFg {
		t.Errorf("watched color = %v, want %v", fg, theme.WatchedFg)
	}
	if fg := foregroundAt(scr, 4, 3); fg != theme.FileFg {
		t.Errorf("unwatched color = %v, want %v", fg, theme.FileFg)
	}
}

func TestRenderScrollPinsSelectionToLastVisibleRow(t *testing.T) {
	scr := newTestScreen(t, 40, 10)
	renderer := NewRenderer(scr)

	entries := make([]statepkg.Entry, 20)
	for i := range entries {
		entries[i] = statepkg.Entry{
			Path:        "/m/f",
			DisplayName: string(rune('a' + i)),
			IsFile:      true,
		}
	}
	state := &statepkg.AppState{
		CurrentPath:   "/m",
		ScreenWidth:   40,
		ScreenHeight:  10,
		Entries:       entries,
		SelectedIndex: 15,
	}
	renderer.Render(state)

	// Band is rows 1..8; the selection must land on the last row.
	lastRow := 8
	if got := runeAt(scr, 2, lastRow); got != glyphMarker {
		t.Errorf("expected marker pinned to row %d, got %q", lastRow, got)
	}
	if got := rowText(scr, lastRow, 4, 5); got != "p" {
		t.Errorf("expected entry 15 (%q) on last row, got %q", "p", got)
	}
	if got := rowText(scr, 1, 4, 5); got != "i" {
		t.Errorf("expected entry 8 (%q) on first row, got %q", "i", got)
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		selected, rows, want int
	}{
		{0, 8, 0},
		{7, 8, 0},
		{8, 8, 1},
		{15, 8, 8},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := scrollOffset(tt.selected, tt.rows); got != tt.want {
			t.Errorf("scrollOffset(%d, %d) = %d, want %d", tt.selected, tt.rows, got, tt.want)
		}
	}
}

func TestEffectiveSizeClamps(t *testing.T) {
	tests := []struct {
		w, h, wantW, wantH int
	}{
		{80, 24, 80, 20},
		{500, 10, 400, 10},
		{5, 2, 20, 5},
		{400, 20, 400, 20},
	}
	for _, tt := range tests {
		w, h := effectiveSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("effectiveSize(%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	scr := newTestScreen(t, 60, 15)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  60,
		ScreenHeight: 15,
		Entries: []statepkg.Entry{
			{Path: "/media/a.mkv", DisplayName: "a", IsFile: true},
			{Path: "/media/b.mkv", DisplayName: "b", IsFile: true},
		},
	}

	renderer.Render(state)
	first := rowText(scr, 1, 0, 60) + rowText(scr, 2, 0, 60)
	renderer.Render(state)
	second := rowText(scr, 1, 0, 60) + rowText(scr, 2, 0, 60)
	if first != second {
		t.Errorf("same state produced different frames")
	}
}

func TestRenderStatusLineOnBottomEdge(t *testing.T) {
	scr := newTestScreen(t, 60, 15)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  60,
		ScreenHeight: 15,
		Status:       "player: not found",
	}
	renderer.Render(state)

	if got := rowText(scr, 14, 2, 2+len("player: not found")); got != "player: not found" {
		t.Errorf("status = %q", got)
	}
}

func TestRenderDegenerateSizeDoesNotPanic(t *testing.T) {
	scr := newTestScreen(t, 1, 1)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  0,
		ScreenHeight: 0,
		ShowHelp:     true,
		Entries: []statepkg.Entry{
			{Path: "/media/a.mkv", DisplayName: "a", IsFile: true},
		},
		Status: "x",
	}
	renderer.Render(state) // must not panic
}

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "movie",
			width:  20,
			expect: "movie",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "example",
			width:  1,
			expect: "…",
		},
		{
			name:   "wide runes respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "empty at zero width",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}
