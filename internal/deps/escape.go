// Package deps maintains the dependency ledger: the dependencies.cmake
// file accumulating one helper-function call per declared dependency,
// with escaping and git-URL validation, plus local dependency probing.
package deps

import "strings"

// escaper rewrites the characters that would change meaning inside a
// quoted CMake argument. Order matters: backslash first, so the escapes
// it introduces are not escaped again.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	`;`, `\;`,
	`#`, `\#`,
)

// Escape renders a value safe for embedding in a generated helper call.
// It is deliberately not idempotent: escaping an already-escaped string
// doubles the escaping. Ledger lines are append-only and never re-read
// through Escape, so stored text is never escaped twice.
func Escape(value string) string {
	return escaper.Replace(value)
}
