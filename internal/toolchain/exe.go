package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Per-config output subdirectories used by multi-config generators on
// Windows.
var windowsConfigDirs = []string{"Debug", "Release", "RelWithDebInfo", "MinSizeRel"}

func exeName(target string) string {
	if runtime.GOOS == "windows" {
		return target + ".exe"
	}
	return target
}

// CandidateExecutablePaths lists where a built target executable may
// live under the build directory, in search order.
func CandidateExecutablePaths(buildDir, target string) []string {
	name := exeName(target)
	candidates := []string{filepath.Join(buildDir, name)}
	if runtime.GOOS == "windows" {
		for _, config := range windowsConfigDirs {
			candidates = append(candidates, filepath.Join(buildDir, config, name))
		}
	}
	return candidates
}

// FindExecutable returns the first existing candidate path, or "".
func FindExecutable(buildDir, target string) string {
	for _, candidate := range CandidateExecutablePaths(buildDir, target) {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// MissingExecutableError describes a target whose binary was not found,
// listing the searched locations.
func MissingExecutableError(buildDir, target string) error {
	return fmt.Errorf("missing executable for target '%s' (searched: %s)",
		target, strings.Join(CandidateExecutablePaths(buildDir, target), ", "))
}
