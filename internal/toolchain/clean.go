package toolchain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmkr/cmkr/internal/pathutil"
	"github.com/cmkr/cmkr/internal/ui"
)

// dangerousDeleteTarget reports whether path is something removal must
// never touch: a filesystem root, the home directory, or the project
// root itself.
func dangerousDeleteTarget(path, projectRoot string) bool {
	resolved := pathutil.RealWithMissing(path)
	if resolved == filepath.Dir(resolved) {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil {
		if resolved == pathutil.RealWithMissing(home) {
			return true
		}
	}
	if projectRoot != "" && resolved == pathutil.RealWithMissing(projectRoot) {
		return true
	}
	return false
}

// Clean removes buildDir if it is safe to do so: contained in the
// project root and not a protected location. Removing a nonexistent
// directory is a success no-op.
func Clean(buildDir, projectRoot string) error {
	if projectRoot == "" {
		return fmt.Errorf("project root is not set; refusing to remove build dir")
	}
	resolvedPath := pathutil.RealWithMissing(buildDir)
	resolvedRoot := pathutil.RealWithMissing(projectRoot)
	if !pathutil.Within(resolvedPath, resolvedRoot) {
		return fmt.Errorf("refusing to remove build dir outside project root: %s", buildDir)
	}
	info, err := os.Lstat(buildDir)
	if err != nil {
		ui.Infof("nothing to clean at %s", buildDir)
		return nil
	}
	if dangerousDeleteTarget(buildDir, projectRoot) {
		return fmt.Errorf("refusing to remove unsafe build dir at %s", buildDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("build dir path is not a directory: %s", buildDir)
	}
	ui.Infof("removing %s", buildDir)
	return os.RemoveAll(buildDir)
}
