package internal

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:     "run [-- args...]",
	Aliases: []string{"r"},
	Short:   "Build (if needed) and run the main binary",
	Args:    cobra.ArbitraryArgs,
	RunE:    runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	if err := s.ensureBuilt(flagCompiler); err != nil {
		return err
	}
	return s.runExecutable(args)
}
