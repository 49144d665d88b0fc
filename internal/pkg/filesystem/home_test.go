package filesystem

import (
	"path/filepath"
	"testing"
)

func TestDisplayPathAbbreviatesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := DisplayPath(filepath.Join(home, "src", "project"))
	want := filepath.Join("~", "src", "project")
	if got != want {
		t.Fatalf("DisplayPath() = %q, want %q", got, want)
	}
}

func TestDisplayPathHomeItself(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := DisplayPath(home); got != "~" {
		t.Fatalf("DisplayPath(home) = %q, want ~", got)
	}
}

func TestDisplayPathOutsideHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got := DisplayPath("/var/log"); got != "/var/log" {
		t.Fatalf("DisplayPath(/var/log) = %q", got)
	}
}

func TestDisplayPathSiblingPrefixNotAbbreviated(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sibling := home + "2"
	if got := DisplayPath(sibling); got != sibling {
		t.Fatalf("DisplayPath(%q) = %q, want unchanged", sibling, got)
	}
}
