package internal

import "github.com/spf13/cobra"

var allCmd = &cobra.Command{
	Use:     "all [-- args...]",
	Aliases: []string{"a"},
	Short:   "Configure, build, and run",
	Args:    cobra.ArbitraryArgs,
	RunE:    runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	warnOldMinCMake(s)
	cm := s.cmake()
	if err := cm.CleanIfCompilerMismatch(flagCompiler, s.clean); err != nil {
		return err
	}
	if err := cm.Configure(flagCompiler); err != nil {
		return err
	}
	if err := cm.Build(); err != nil {
		return err
	}
	return s.runExecutable(args)
}
