package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCandidateExecutablePaths(t *testing.T) {
	got := CandidateExecutablePaths("build", "main")
	if runtime.GOOS == "windows" {
		want := len(windowsConfigDirs) + 1
		if len(got) != want {
			t.Fatalf("got %d candidates, want %d", len(got), want)
		}
		if got[0] != filepath.Join("build", "main.exe") {
			t.Errorf("first candidate = %q", got[0])
		}
		if got[1] != filepath.Join("build", "Debug", "main.exe") {
			t.Errorf("second candidate = %q", got[1])
		}
		return
	}
	if len(got) != 1 || got[0] != filepath.Join("build", "main") {
		t.Errorf("candidates = %v", got)
	}
}

func TestFindExecutable(t *testing.T) {
	buildDir := t.TempDir()
	if got := FindExecutable(buildDir, "main"); got != "" {
		t.Fatalf("found %q in empty build dir", got)
	}

	path := filepath.Join(buildDir, exeName("main"))
	if err := os.WriteFile(path, []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindExecutable(buildDir, "main"); got != path {
		t.Errorf("FindExecutable = %q, want %q", got, path)
	}
}

func TestMissingExecutableError(t *testing.T) {
	err := MissingExecutableError("build", "main")
	if !strings.Contains(err.Error(), "missing executable for target 'main'") {
		t.Errorf("unexpected message: %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Join("build", exeName("main"))) {
		t.Errorf("message does not list search locations: %v", err)
	}
}

func TestCleanRemovesBuildDir(t *testing.T) {
	root := t.TempDir()
	buildDir := filepath.Join(root, "build")
	if err := os.MkdirAll(filepath.Join(buildDir, "CMakeFiles"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Clean(buildDir, root); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(buildDir); !os.IsNotExist(err) {
		t.Error("build dir still exists")
	}
}

func TestCleanMissingBuildDirIsNoOp(t *testing.T) {
	root := t.TempDir()
	if err := Clean(filepath.Join(root, "build"), root); err != nil {
		t.Errorf("Clean of missing dir: %v", err)
	}
}

func TestCleanRejectsOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "project")
	outside := filepath.Join(base, "elsewhere")
	if err := os.MkdirAll(outside, 0o755); err != nil {
		t.Fatal(err)
	}

	err := Clean(outside, root)
	if err == nil || !strings.Contains(err.Error(), "outside project root") {
		t.Errorf("Clean outside root: %v", err)
	}
	if _, statErr := os.Stat(outside); statErr != nil {
		t.Error("outside dir was removed")
	}
}

func TestCleanRejectsProjectRootItself(t *testing.T) {
	root := t.TempDir()
	err := Clean(root, root)
	if err == nil || !strings.Contains(err.Error(), "unsafe build dir") {
		t.Errorf("Clean of project root: %v", err)
	}
}

func TestCleanRejectsEmptyProjectRoot(t *testing.T) {
	err := Clean(t.TempDir(), "")
	if err == nil || !strings.Contains(err.Error(), "project root is not set") {
		t.Errorf("Clean with empty root: %v", err)
	}
}

func TestCleanRejectsFileAtBuildDirPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "build")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Clean(path, root)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Clean of regular file: %v", err)
	}
}

func TestConfiguredCompiler(t *testing.T) {
	buildDir := t.TempDir()
	c := &CMake{BuildDir: buildDir}

	if _, ok := c.configuredCompiler(); ok {
		t.Fatal("compiler reported without a cache file")
	}

	compiler := filepath.Join(t.TempDir(), "cc")
	if err := os.WriteFile(compiler, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	cache := "CMAKE_GENERATOR:INTERNAL=Ninja\n" +
		"CMAKE_C_COMPILER:FILEPATH=" + compiler + "\n"
	if err := os.WriteFile(filepath.Join(buildDir, cacheFileName), []byte(cache), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := c.configuredCompiler()
	if got != compiler || !ok {
		t.Errorf("configuredCompiler = %q, %v; want %q, true", got, ok, compiler)
	}
}

func TestConfiguredCompilerMissingBinary(t *testing.T) {
	buildDir := t.TempDir()
	c := &CMake{BuildDir: buildDir}
	cache := "CMAKE_C_COMPILER:FILEPATH=/no/such/compiler\n"
	if err := os.WriteFile(filepath.Join(buildDir, cacheFileName), []byte(cache), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := c.configuredCompiler()
	if got != "/no/such/compiler" || ok {
		t.Errorf("configuredCompiler = %q, %v; want path with false", got, ok)
	}
}

func TestCleanIfCompilerMismatch(t *testing.T) {
	buildDir := t.TempDir()
	c := &CMake{BuildDir: buildDir}

	bin, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	oldCC := filepath.Join(bin, "old-cc")
	newCC := filepath.Join(bin, "new-cc")
	for _, p := range []string{oldCC, newCC} {
		if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	cache := "CMAKE_C_COMPILER:FILEPATH=" + oldCC + "\n"
	if err := os.WriteFile(filepath.Join(buildDir, cacheFileName), []byte(cache), 0o644); err != nil {
		t.Fatal(err)
	}

	cleaned := false
	clean := func() error {
		cleaned = true
		return nil
	}

	if err := c.CleanIfCompilerMismatch(oldCC, clean); err != nil {
		t.Fatal(err)
	}
	if cleaned {
		t.Error("matching compiler triggered a clean")
	}

	if err := c.CleanIfCompilerMismatch(newCC, clean); err != nil {
		t.Fatal(err)
	}
	if !cleaned {
		t.Error("mismatched compiler did not trigger a clean")
	}
}

func TestCleanIfCompilerMismatchNoBuildDir(t *testing.T) {
	c := &CMake{BuildDir: filepath.Join(t.TempDir(), "missing")}
	err := c.CleanIfCompilerMismatch("/some/cc", func() error {
		t.Fatal("clean called without a build dir")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNormalizeCompilerPathMissing(t *testing.T) {
	got, exists := normalizeCompilerPath("/no/such/dir/../cc")
	if exists {
		t.Error("missing path reported as existing")
	}
	if got != filepath.Clean("/no/such/dir/../cc") {
		t.Errorf("normalized = %q", got)
	}
}

func TestNormalizeCompilerPathEmpty(t *testing.T) {
	if got, exists := normalizeCompilerPath(""); got != "" || exists {
		t.Errorf("normalizeCompilerPath(\"\") = %q, %v", got, exists)
	}
}
