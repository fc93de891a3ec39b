package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWithin(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		name   string
		child  string
		parent string
		want   bool
	}{
		{"direct child", filepath.Join(sep, "p", "deps.txt"), filepath.Join(sep, "p"), true},
		{"nested child", filepath.Join(sep, "p", "a", "b"), filepath.Join(sep, "p"), true},
		{"parent itself", filepath.Join(sep, "p"), filepath.Join(sep, "p"), true},
		{"sibling", filepath.Join(sep, "q", "deps.txt"), filepath.Join(sep, "p"), false},
		{"escapes via dotdot", filepath.Join(sep, "p", "..", "deps.txt"), filepath.Join(sep, "p"), false},
		{"prefix but not segment", filepath.Join(sep, "project2"), filepath.Join(sep, "project"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Within(filepath.Clean(tt.child), tt.parent); got != tt.want {
				t.Errorf("Within(%q, %q) = %v, want %v", tt.child, tt.parent, got, tt.want)
			}
		})
	}
}

func TestRealWithMissingExistingPath(t *testing.T) {
	dir := t.TempDir()
	real := RealWithMissing(dir)
	if _, err := os.Stat(real); err != nil {
		t.Fatalf("resolved path does not exist: %v", err)
	}
}

func TestRealWithMissingTail(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "not", "yet", "created")
	got := RealWithMissing(target)
	want := filepath.Join(RealWithMissing(dir), "not", "yet", "created")
	if got != want {
		t.Errorf("RealWithMissing(%q) = %q, want %q", target, got, want)
	}
}

func TestRealWithMissingResolvesSymlinkedAncestor(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	if err := os.Mkdir(realDir, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	got := RealWithMissing(filepath.Join(link, "missing"))
	want := filepath.Join(RealWithMissing(realDir), "missing")
	if got != want {
		t.Errorf("RealWithMissing via symlink = %q, want %q", got, want)
	}
}

func TestExpandAndJoin(t *testing.T) {
	base := t.TempDir()

	got, isAbs := ExpandAndJoin("deps.txt", base)
	if isAbs {
		t.Errorf("relative input reported absolute")
	}
	if want := filepath.Join(base, "deps.txt"); got != want {
		t.Errorf("ExpandAndJoin = %q, want %q", got, want)
	}

	abs := filepath.Join(base, "other.txt")
	got, isAbs = ExpandAndJoin(abs, base)
	if !isAbs || got != abs {
		t.Errorf("ExpandAndJoin(%q) = %q, %v; want %q, true", abs, got, isAbs, abs)
	}
}

func TestExpandUserHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := ExpandUser("~"); got != home {
		t.Errorf("ExpandUser(~) = %q, want %q", got, home)
	}
	if got := ExpandUser("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("ExpandUser(~/x) = %q, want %q", got, filepath.Join(home, "x"))
	}
	if got := ExpandUser("plain"); got != "plain" {
		t.Errorf("ExpandUser(plain) = %q", got)
	}
}

func TestCMakePath(t *testing.T) {
	in := filepath.Join("a", "b", "c")
	if got := CMakePath(in); got != "a/b/c" {
		t.Errorf("CMakePath(%q) = %q, want a/b/c", in, got)
	}
}
