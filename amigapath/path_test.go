package amigapath

import (
	"strings"
	"testing"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path unchanged", "dh0:WHD/Games", "dh0:WHD/Games"},
		{"double slash collapses", "dst//Games", "dst/Games"},
		{"run of slashes collapses", "dst///Games", "dst/Games"},
		{"slash after colon dropped", "WHD:/Games", "WHD:Games"},
		{"slash run after colon dropped", "WHD:///Games", "WHD:Games"},
		{"volume root alone", "WHD:", "WHD:"},
		{"volume root with slash", "WHD:/", "WHD:"},
		{"volume root archive", "WHD:/a.lha", "WHD:a.lha"},
		{"trailing double slash", "Games//", "Games/"},
		{"separators only", "//", "/"},
		{"empty", "", ""},
		{"mixed artifacts", "dh0:/a//b/c", "dh0:a/b/c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalise(tt.in)
			if got != tt.want {
				t.Errorf("Normalise(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalise(got); again != got {
				t.Errorf("Normalise not idempotent: %q -> %q -> %q", tt.in, got, again)
			}
			if strings.Contains(got, "//") || strings.Contains(got, ":/") {
				t.Errorf("Normalise(%q) = %q still contains a redundant separator", tt.in, got)
			}
		})
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nested file", "/Games/A/game.lha", "/Games/A/"},
		{"single leading separator", "/a.lha", "/"},
		{"no separator", "a.lha", ""},
		{"empty", "", ""},
		{"backslash separator", `dir\file.lha`, `dir\`},
		{"last separator wins", `dir\sub/file.lha`, `dir\sub/`},
		{"trailing separator kept", "Games/A/", "Games/A/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParentDir(tt.in); got != tt.want {
				t.Errorf("ParentDir(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripSourcePrefix(t *testing.T) {
	tests := []struct {
		name string
		full string
		root string
		want string
	}{
		{"prefix present", "src/Games/a.lha", "src", "/Games/a.lha"},
		{"prefix absent", "other/a.lha", "src", "other/a.lha"},
		{"volume root", "WHD:a.lha", "WHD:", "a.lha"},
		{"root equals full", "src", "src", ""},
		{"empty root", "src/a.lha", "", "src/a.lha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripSourcePrefix(tt.full, tt.root); got != tt.want {
				t.Errorf("StripSourcePrefix(%q, %q) = %q, want %q", tt.full, tt.root, got, tt.want)
			}
		})
	}
}

func TestTrimTrailingSlash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing slash removed", "src/", "src"},
		{"no trailing slash", "src", "src"},
		{"only one removed", "src//", "src/"},
		{"volume colon kept", "WHD:", "WHD:"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimTrailingSlash(tt.in); got != tt.want {
				t.Errorf("TrimTrailingSlash(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
