package textutil

import "testing"

func TestSanitizeTerminalText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "plain text untouched",
			input:  "movie.mkv",
			expect: "movie.mkv",
		},
		{
			name:   "escape byte replaced",
			input:  "bad\x1b[31mname",
			expect: "bad?[31mname",
		},
		{
			name:   "newline becomes space",
			input:  "two\nlines",
			expect: "two lines",
		},
		{
			name:   "rtl override made visible",
			input:  "evil‮txt.mkv",
			expect: "evil⟪RLO⟫txt.mkv",
		},
		{
			name:   "unicode filenames pass through",
			input:  "日本語タイトル",
			expect: "日本語タイトル",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminalText(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
