package internal

import (
	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/toolchain"
	"github.com/cmkr/cmkr/internal/ui"
)

var testTarget string

var testCmd = &cobra.Command{
	Use:     "test",
	Aliases: []string{"t"},
	Short:   "Build (if needed) and run configured tests",
	Args:    cobra.NoArgs,
	RunE:    runTest,
}

func init() {
	testCmd.Flags().StringVarP(&testTarget, "target", "t", "", "run a single named test target")
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	if err := s.ensureConfigured(flagCompiler); err != nil {
		return err
	}

	targets := s.resolved.TestTargets
	if testTarget != "" {
		targets = []string{testTarget}
	}
	if len(targets) == 0 {
		if s.resolved.DefaultTestTarget != "" {
			targets = []string{s.resolved.DefaultTestTarget}
		} else {
			return usagef("no test targets configured")
		}
	}

	cm := s.cmake()
	for _, target := range targets {
		if err := cm.BuildTarget(target); err != nil {
			return err
		}
		testPath := toolchain.FindExecutable(s.resolved.BuildDir, target)
		if testPath == "" {
			return toolchain.MissingExecutableError(s.resolved.BuildDir, target)
		}
		ui.Infof("running %s", testPath)
		if err := toolchain.Run([]string{testPath}, "", nil); err != nil {
			return err
		}
	}
	return nil
}
