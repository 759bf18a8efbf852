package render

import (
	"strings"
	"testing"

	statepkg "github.com/avelder/mview/internal/state"
)

func TestBuildHelpLinesCoverKeybindings(t *testing.T) {
	lines := buildHelpLines()

	assertContains := func(substr string) {
		for _, line := range lines {
			if strings.Contains(line, substr) {
				return
			}
		}
		t.Fatalf("expected help lines to mention %q, got %v", substr, lines)
	}

	assertContains("Move selection")
	assertContains("play file")
	assertContains("Parent directory")
	assertContains("Toggle watched")
	assertContains("hidden")
	assertContains("Quit")
}

func TestHelpPanelDrawnTopRight(t *testing.T) {
	scr := newTestScreen(t, 80, 20)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/media",
		ScreenWidth:  80,
		ScreenHeight: 20,
		ShowHelp:     true,
		Entries: []statepkg.Entry{
			{Path: "/media/a.mkv", DisplayName: strings.Repeat("longname", 12), IsFile: true},
		},
	}
	renderer.Render(state)

	x0 := 80 - 1 - (helpPanelWidth + 2)
	if got := runeAt(scr, x0, 1); got != glyphCornerTL {
		t.Errorf("expected panel corner at (%d,1), got %q", x0, got)
	}

	found := false
	for y := 2; y < 12; y++ {
		if strings.Contains(rowText(scr, y, x0, 79), "Toggle watched") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected keybinding text inside the help panel")
	}

	// The long entry name must stop before the panel border column.
	if got := runeAt(scr, x0, 2); got != glyphEdgeV {
		t.Errorf("expected panel border at (%d,2), got %q", x0, got)
	}
}

func TestHelpPanelSkippedOnTinyFrame(t *testing.T) {
	scr := newTestScreen(t, 20, 5)
	renderer := NewRenderer(scr)

	state := &statepkg.AppState{
		CurrentPath:  "/",
		ScreenWidth:  20,
		ScreenHeight: 5,
		ShowHelp:     true,
	}
	renderer.Render(state) // must not panic; panel clips or disappears
}
