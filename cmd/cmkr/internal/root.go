package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/toolchain"
	"github.com/cmkr/cmkr/internal/ui"
)

var version = "0.1.0"

var (
	flagCompiler string
	flagConfig   string
)

var rootCmd = &cobra.Command{
	Use:   "cmkr",
	Short: "cmkr is a build orchestrator for small C/C++ CMake projects",
	Long: `cmkr wraps the CMake configure/build/run/test workflow for small
C/C++ projects and keeps a dependency ledger of local or fetched
git dependencies.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// usageError marks bad invocation shapes; Execute maps it to exit 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// errCanceled aborts a command that already reported its outcome.
var errCanceled = errors.New("canceled")

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCompiler, "cc", "", "use a specific C compiler for configuration")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "load build defaults from a JSON file")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
	// Cobra's built-in help command carries no alias; every other
	// subcommand has a short form, so help gets one too.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:     "help [command]",
		Aliases: []string{"h"},
		Short:   "Help about any command",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := cmd.Root().Find(args)
			if target == nil || err != nil {
				return usagef("unknown help topic %q", strings.Join(args, " "))
			}
			return target.Help()
		},
	})
}

// Execute runs the root command and exits with the documented codes:
// 0 success, 2 usage errors, a wrapped tool's own code when known,
// 1 for everything else.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Tool failures were already reported when the command ran; just
	// propagate the exit code.
	var terr *toolchain.ToolError
	if errors.As(err, &terr) {
		if terr.Code > 0 {
			os.Exit(terr.Code)
		}
		os.Exit(1)
	}
	if errors.Is(err, errCanceled) {
		os.Exit(1)
	}

	ui.Errorf("%v", err)
	var uerr *usageError
	if errors.As(err, &uerr) || strings.HasPrefix(err.Error(), "unknown command") {
		os.Exit(2)
	}
	os.Exit(1)
}
