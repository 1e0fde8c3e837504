package text

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"", 10, ""},
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"hello", -1, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"/games/a.iso", 20, "/games/a.iso"},
		{"/games/a.iso", 12, "/games/a.iso"},
		{"/home/user/games/a.iso", 10, "…mes/a.iso"},
		{"/games/a.iso", 1, "…"},
		{"/games/a.iso", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateLeft(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := ansi.StringWidth(got); w > tt.width && tt.width > 0 {
			t.Errorf("TruncateLeft(%q, %d) width %d exceeds limit", tt.in, tt.width, w)
		}
	}
}
