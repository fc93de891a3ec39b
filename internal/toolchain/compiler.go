package toolchain

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cmkr/cmkr/internal/ui"
)

const (
	cacheFileName   = "CMakeCache.txt"
	cCompilerPrefix = "CMAKE_C_COMPILER:"
)

// normalizeSpelling produces a comparable spelling for paths that may
// not exist: cleaned, and case-folded on case-insensitive systems.
func normalizeSpelling(path string) string {
	cleaned := filepath.Clean(path)
	if runtime.GOOS == "windows" {
		return strings.ToLower(cleaned)
	}
	return cleaned
}

// normalizeCompilerPath resolves a compiler string to a canonical path
// and reports whether it exists on disk. Bare names go through PATH
// lookup first.
func normalizeCompilerPath(compiler string) (string, bool) {
	if compiler == "" {
		return "", false
	}
	resolved := compiler
	if !strings.ContainsRune(compiler, os.PathSeparator) {
		if found, err := exec.LookPath(compiler); err == nil {
			resolved = found
		} else {
			return normalizeSpelling(compiler), false
		}
	}
	if _, err := os.Stat(resolved); err == nil {
		if real, err := filepath.EvalSymlinks(resolved); err == nil {
			return real, true
		}
		return resolved, true
	}
	return normalizeSpelling(resolved), false
}

// configuredCompiler reads the C compiler recorded in the CMake cache,
// if the build directory has been configured.
func (c *CMake) configuredCompiler() (string, bool) {
	f, err := os.Open(filepath.Join(c.BuildDir, cacheFileName))
	if err != nil {
		return "", false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, cCompilerPrefix) {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		if !found {
			return "", false
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return "", false
		}
		_, statErr := os.Stat(value)
		return value, statErr == nil
	}
	return "", false
}

// CleanIfCompilerMismatch removes the build directory when it was
// configured with a different compiler than the one requested, so the
// next configure starts fresh. Comparison falls back to normalized
// spelling when either path no longer exists on disk.
func (c *CMake) CleanIfCompilerMismatch(compiler string, clean func() error) error {
	if compiler == "" {
		return nil
	}
	if _, err := os.Stat(c.BuildDir); err != nil {
		return nil
	}
	configured, configuredExists := c.configuredCompiler()
	requested, requestedExists := normalizeCompilerPath(compiler)
	if configured == "" || requested == "" {
		return nil
	}
	if !(configuredExists && requestedExists) {
		ui.Infof("compiler path comparison uses normalized spelling because one or both paths do not exist")
		configured = normalizeSpelling(configured)
		requested = normalizeSpelling(requested)
	}
	if configured != requested {
		ui.Infof("existing build uses a different compiler; cleaning build directory")
		return clean()
	}
	return nil
}
