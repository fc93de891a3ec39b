// Package pathutil provides path resolution helpers shared by the
// config resolver and the toolchain layer.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser expands a leading "~" or "~/" to the current user's home
// directory. Paths without a tilde prefix are returned unchanged.
func ExpandUser(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ExpandAndJoin expands path and, if it is relative, joins it to base.
// The second result reports whether path was absolute.
func ExpandAndJoin(path, base string) (string, bool) {
	expanded := ExpandUser(path)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), true
	}
	return filepath.Join(base, expanded), false
}

// RealWithMissing resolves path to its canonical real path even when a
// trailing portion of it does not exist yet. It walks up collecting the
// missing segments, resolves the deepest existing ancestor via
// EvalSymlinks, then re-appends the missing segments in order.
func RealWithMissing(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.Clean(abs)

	var missing []string
	current := abs
	for {
		if _, err := os.Lstat(current); err == nil {
			break
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		missing = append(missing, filepath.Base(current))
		current = parent
	}

	real, err := filepath.EvalSymlinks(current)
	if err != nil {
		real = current
	}
	for i := len(missing) - 1; i >= 0; i-- {
		real = filepath.Join(real, missing[i])
	}
	return real
}

// Within reports whether child is parent itself or contained below it.
// Containment is checked on path segments, not string prefixes.
func Within(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CMakePath returns the forward-slash spelling CMake expects.
func CMakePath(path string) string {
	return filepath.ToSlash(path)
}
