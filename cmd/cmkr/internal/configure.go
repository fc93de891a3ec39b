package internal

import (
	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/cmakegen"
	"github.com/cmkr/cmkr/internal/ui"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"c"},
	Short:   "Generate build files",
	Args:    cobra.NoArgs,
	RunE:    runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	warnOldMinCMake(s)
	cm := s.cmake()
	if err := cm.CleanIfCompilerMismatch(flagCompiler, s.clean); err != nil {
		return err
	}
	return cm.Configure(flagCompiler)
}

func warnOldMinCMake(s *session) {
	if v := s.resolved.Project.MinCMake; !cmakegen.MinVersionSupported(v) {
		ui.Warnf("configured minimum CMake version %q predates 3.5; current CMake releases reject it", v)
	}
}
