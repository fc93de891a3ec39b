// Package toolchain invokes the native CMake toolchain and owns the
// filesystem operations around it: configure/build runs, compiler
// cache inspection, executable discovery and safe build-dir removal.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/cmkr/cmkr/internal/ui"
)

// ToolError carries the exit code of a failed external tool so the CLI
// can propagate it verbatim.
type ToolError struct {
	Code int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("command failed with exit code %d", e.Code)
}

// Run echoes and executes a command, blocking until it exits. A nonzero
// exit comes back as *ToolError; other failures (e.g. binary not found)
// are returned as-is.
func Run(argv []string, dir string, extraEnv []string) error {
	ui.Command(argv)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		code := exitErr.ExitCode()
		ui.Errorf("command failed with exit code %d", code)
		return &ToolError{Code: code}
	}
	return err
}
