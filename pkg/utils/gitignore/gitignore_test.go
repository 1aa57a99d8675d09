package gitignore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func TestParseGitIgnoreLines(t *testing.T) {
	lines := []string{
		"# This is a comment",
		"",
		"*.log",
		"node_modules/",
		"/build",
		"temp*",
		"!important.log",
	}

	gi := ParseGitIgnoreLines(lines)
	expected := []string{"*.log", "node_modules/", "/build", "temp*", "!important.log"}
	if !reflect.DeepEqual(gi.GetPatterns(), expected) {
		t.Errorf("patterns = %v, want %v", gi.GetPatterns(), expected)
	}
}

func TestGlobs(t *testing.T) {
	gi := ParseGitIgnoreLines([]string{"*.min.css", "vendor/", "/dist", "assets/generated", "!keep.css"})
	want := []string{
		"**/*.min.css", "**/*.min.css/**",
		"**/vendor/**",
		"dist", "dist/**",
		"assets/generated", "assets/generated/**",
	}
	if got := gi.Globs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Globs() = %v, want %v", got, want)
	}
}

func TestGlobs_Match(t *testing.T) {
	globs := ParseGitIgnoreLines([]string{"*.min.css", "vendor/", "/dist"}).Globs()
	match := func(path string) bool {
		for _, g := range globs {
			if ok, _ := doublestar.Match(g, path); ok {
				return true
			}
		}
		return false
	}

	cases := map[string]bool{
		"site.min.css":     true,
		"a/b/site.min.css": true,
		"vendor/lib/x.css": true,
		"src/vendor/y.css": true,
		"dist/app.css":     true,
		"src/dist/app.css": false,
		"src/theme.css":    false,
	}
	for p, want := range cases {
		if got := match(p); got != want {
			t.Errorf("match(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestLoadGitIgnoreFromDir(t *testing.T) {
	dir := t.TempDir()

	gi, err := LoadGitIgnoreFromDir(dir)
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if len(gi.GetPatterns()) != 0 {
		t.Fatalf("expected no patterns, got %v", gi.GetPatterns())
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("# build output\ndist/\n*.map\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gi, err = LoadGitIgnoreFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"dist/", "*.map"}; !reflect.DeepEqual(gi.GetPatterns(), want) {
		t.Fatalf("patterns = %v, want %v", gi.GetPatterns(), want)
	}
}
