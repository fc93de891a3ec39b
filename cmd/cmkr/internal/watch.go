package internal

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Rebuild whenever project sources change",
	Args:    cobra.NoArgs,
	RunE:    runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	if err := s.ensureBuilt(flagCompiler); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(s.resolved.ProjectRoot, s.resolved.BuildDir, func() error {
		return s.cmake().Build()
	})
	return w.Run(ctx)
}
