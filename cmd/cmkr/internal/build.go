package internal

import "github.com/spf13/cobra"

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Configure (if needed) and build",
	Args:    cobra.NoArgs,
	RunE:    runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	return s.ensureBuilt(flagCompiler)
}
