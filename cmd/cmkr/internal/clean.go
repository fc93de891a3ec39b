package internal

import "github.com/spf13/cobra"

var cleanCmd = &cobra.Command{
	Use:     "clean",
	Aliases: []string{"cl"},
	Short:   "Remove the build directory",
	Args:    cobra.NoArgs,
	RunE:    runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	return s.clean()
}
