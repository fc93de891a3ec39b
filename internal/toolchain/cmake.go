package toolchain

import (
	"os/exec"
	"runtime"

	"github.com/cmkr/cmkr/internal/ui"
)

const defaultGenerator = "Ninja"

// CMake drives the configure/build steps for one resolved project.
type CMake struct {
	SourceDir string
	BuildDir  string
}

// generator picks the CMake generator: Ninja everywhere, except on
// Windows where it is only used when ninja is actually on PATH.
func (c *CMake) generator() string {
	if runtime.GOOS == "windows" {
		if _, err := exec.LookPath("ninja"); err != nil {
			return ""
		}
	}
	return defaultGenerator
}

// Configure runs "cmake -S <source> -B <build>". A non-empty compiler
// is exported as CC for the configure run.
func (c *CMake) Configure(compiler string) error {
	ui.Infof("configuring build directory")
	var extraEnv []string
	if compiler != "" {
		ui.Infof("using compiler %s", compiler)
		extraEnv = []string{"CC=" + compiler}
	}
	argv := []string{"cmake", "-S", c.SourceDir, "-B", c.BuildDir}
	if gen := c.generator(); gen != "" {
		argv = append(argv, "-G", gen)
	}
	return Run(argv, "", extraEnv)
}

// Build runs "cmake --build <build>" for the default target.
func (c *CMake) Build() error {
	ui.Infof("building")
	return Run([]string{"cmake", "--build", c.BuildDir}, "", nil)
}

// BuildTarget builds one named target.
func (c *CMake) BuildTarget(target string) error {
	ui.Infof("building target %s", target)
	return Run([]string{"cmake", "--build", c.BuildDir, "--target", target}, "", nil)
}
