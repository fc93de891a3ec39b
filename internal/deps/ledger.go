package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Ledger appends dependency declarations to the dependency file as
// helper-function calls. Duplicate detection keys on the currently
// configured helper names; entries written under different names are
// not recognized.
type Ledger struct {
	Path    string
	LocalFn string
	FetchFn string
}

// header documents the two helper call shapes when the file is created.
func (l *Ledger) header() string {
	lines := []string{
		"# This file is managed by cmkr adddep.",
		"# Add custom dependencies with the helpers below.",
		"#",
		"# Examples:",
		fmt.Sprintf(`#   %s("raylib")`, l.LocalFn),
		fmt.Sprintf(`#   %s("raylib" "https://github.com/raysan5/raylib.git")`, l.FetchFn),
		"",
	}
	return strings.Join(lines, "\n") + "\n"
}

// ensureFile creates the ledger with its header when it does not exist.
func (l *Ledger) ensureFile() error {
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return fmt.Errorf("failed to write %s: %w", l.Path, err)
	}
	if err := os.WriteFile(l.Path, []byte(l.header()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", l.Path, err)
	}
	return nil
}

// Exists reports whether an equivalent declaration is already present:
// a localFn call with the exact escaped name, or a fetchFn call with
// the escaped name as first argument. Comment and blank lines are
// skipped.
func (l *Ledger) Exists(name string) bool {
	contents, err := os.ReadFile(l.Path)
	if err != nil {
		return false
	}
	escapedName := regexp.QuoteMeta(Escape(name))
	localPattern := regexp.MustCompile(
		`^\s*` + regexp.QuoteMeta(l.LocalFn) + `\s*\(\s*"` + escapedName + `"\s*\)`)
	fetchPattern := regexp.MustCompile(
		`^\s*` + regexp.QuoteMeta(l.FetchFn) + `\s*\(\s*"` + escapedName + `"\s*(,|\)|\s)`)
	for _, line := range strings.Split(string(contents), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		if localPattern.MatchString(line) || fetchPattern.MatchString(line) {
			return true
		}
	}
	return false
}

// Add appends one declaration line. A URL selects the fetch helper,
// optionally pinned to tag; without a URL the local helper is used.
// All embedded values are escaped. Adding an existing name is a
// success no-op; the caller decides whether to report it.
func (l *Ledger) Add(name, gitURL, gitTag string) (added bool, err error) {
	if l.Exists(name) {
		return false, nil
	}
	if err := l.ensureFile(); err != nil {
		return false, err
	}

	// Values are already escaped, so the quotes are added verbatim;
	// fmt %q would escape the escapes a second time.
	escapedName := Escape(name)
	var line string
	switch {
	case gitURL != "" && gitTag != "":
		line = l.FetchFn + `("` + escapedName + `" "` + Escape(gitURL) + `" "` + Escape(gitTag) + `")` + "\n"
	case gitURL != "":
		line = l.FetchFn + `("` + escapedName + `" "` + Escape(gitURL) + `")` + "\n"
	default:
		line = l.LocalFn + `("` + escapedName + `")` + "\n"
	}

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", l.Path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return false, fmt.Errorf("failed to update %s: %w", l.Path, err)
	}
	return true, nil
}
