package deps

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// LocalFound reports whether a library called name is discoverable on
// this machine: pkg-config first, then OS-specific library and header
// directory scans. adddep consults this before accepting a dependency
// declared without a git URL.
func LocalFound(name string) bool {
	if pkgConfigExists(name) {
		return true
	}
	switch runtime.GOOS {
	case "windows":
		return windowsFound(name)
	case "darwin":
		return macosFound(name)
	default:
		return linuxFound(name)
	}
}

func pkgConfigExists(name string) bool {
	if _, err := exec.LookPath("pkg-config"); err != nil {
		return false
	}
	return exec.Command("pkg-config", "--exists", name).Run() == nil
}

// envPaths splits PATH-style variables into entries, dropping blanks.
func envPaths(varNames []string) []string {
	var paths []string
	for _, varName := range varNames {
		value := os.Getenv(varName)
		if value == "" {
			continue
		}
		for _, entry := range strings.Split(value, string(os.PathListSeparator)) {
			if entry = strings.TrimSpace(entry); entry != "" {
				paths = append(paths, entry)
			}
		}
	}
	return paths
}

// fallbackPaths prefers env-derived search paths and falls back to the
// fixed defaults plus glob-expanded vendor prefixes.
func fallbackPaths(envVars, defaults, globPatterns []string) []string {
	if paths := envPaths(envVars); len(paths) > 0 {
		return paths
	}
	paths := append([]string(nil), defaults...)
	for _, pattern := range globPatterns {
		matches, err := filepath.Glob(pattern)
		if err == nil {
			paths = append(paths, matches...)
		}
	}
	return paths
}

func pathsHavePattern(paths, patterns []string) bool {
	for _, candidate := range paths {
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		for _, pattern := range patterns {
			matches, err := filepath.Glob(filepath.Join(candidate, pattern))
			if err == nil && len(matches) > 0 {
				return true
			}
		}
	}
	return false
}

func headersFound(paths []string, name string) bool {
	patterns := []string{
		name + ".h",
		filepath.Join(name, name+".h"),
		filepath.Join(name, "*.h"),
	}
	return pathsHavePattern(paths, patterns)
}

func windowsFound(name string) bool {
	libPaths := envPaths([]string{"LIB"})
	includePaths := envPaths([]string{"INCLUDE"})
	binPaths := envPaths([]string{"PATH"})
	libPatterns := []string{
		name + ".lib",
		"lib" + name + ".lib",
		name + ".dll",
		"lib" + name + ".a",
	}
	if pathsHavePattern(libPaths, libPatterns) {
		return true
	}
	if pathsHavePattern(binPaths, []string{name + ".dll"}) {
		return true
	}
	return headersFound(includePaths, name)
}

func macosFound(name string) bool {
	libPaths := fallbackPaths(
		[]string{"LIBRARY_PATH", "DYLD_LIBRARY_PATH"},
		[]string{"/usr/local/lib", "/opt/homebrew/lib", "/usr/lib", "/opt/local/lib"},
		[]string{"/opt/homebrew/*/lib", "/opt/local/*/lib"},
	)
	includePaths := fallbackPaths(
		[]string{"CPATH", "C_INCLUDE_PATH", "CPLUS_INCLUDE_PATH"},
		[]string{"/usr/local/include", "/opt/homebrew/include", "/usr/include", "/opt/local/include"},
		[]string{"/opt/homebrew/*/include", "/opt/local/*/include"},
	)
	libPatterns := []string{"lib" + name + ".dylib", "lib" + name + ".a", name + ".dylib"}
	if pathsHavePattern(libPaths, libPatterns) {
		return true
	}
	return headersFound(includePaths, name)
}

func linuxFound(name string) bool {
	libPaths := fallbackPaths(
		[]string{"LIBRARY_PATH", "LD_LIBRARY_PATH"},
		[]string{"/usr/lib", "/usr/local/lib", "/usr/lib64", "/usr/local/lib64", "/opt/lib", "/opt/local/lib"},
		[]string{"/opt/*/lib", "/opt/*/lib64"},
	)
	includePaths := fallbackPaths(
		[]string{"CPATH", "C_INCLUDE_PATH", "CPLUS_INCLUDE_PATH"},
		[]string{"/usr/include", "/usr/local/include", "/opt/include", "/opt/local/include"},
		[]string{"/opt/*/include"},
	)
	libPatterns := []string{
		"lib" + name + ".so*",
		"lib" + name + ".a",
		name + ".so*",
		name + ".a",
	}
	if pathsHavePattern(libPaths, libPatterns) {
		return true
	}
	return headersFound(includePaths, name)
}
