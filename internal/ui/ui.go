// Package ui centralizes terminal output so commands stay consistent:
// informational lines carry the [cmkr] prefix, errors go to stderr.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	prefix  = color.New(color.FgCyan).Sprint("[cmkr]")
	errTag  = color.New(color.FgRed, color.Bold).Sprint("error:")
	warnTag = color.New(color.FgYellow).Sprint("warning:")
	cmdTag  = color.New(color.Faint).Sprint("+")
)

// Infof prints a standard informational message to stdout.
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Errorf prints a standardized error message to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errTag, fmt.Sprintf(format, args...))
}

// Warnf prints a warning to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnTag, fmt.Sprintf(format, args...))
}

// Command echoes a command line before it runs.
func Command(argv []string) {
	fmt.Fprintf(os.Stdout, "%s %s\n", cmdTag, strings.Join(quoteAll(argv), " "))
}

func quoteAll(argv []string) []string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = quote(arg)
	}
	return quoted
}

// quote renders an argument the way a POSIX shell would need it typed.
func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n\"'\\$&|;<>(){}*?#~`") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
