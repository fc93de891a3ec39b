package internal

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/deps"
	"github.com/cmkr/cmkr/internal/ui"
)

var depTag string

var adddepCmd = &cobra.Command{
	Use:     "adddep <name> [git_url]",
	Aliases: []string{"d", "ad"},
	Short:   "Add a dependency (local lookup or git fetch)",
	Long: `Adddep appends one dependency declaration to the dependency file.
Without a git URL the dependency must be discoverable locally
(pkg-config or conventional library/header paths); with a URL it is
declared for fetching, optionally pinned with --tag.`,
	RunE: runAdddep,
}

func init() {
	adddepCmd.Flags().StringVar(&depTag, "tag", "", "git tag or branch for the fetched dependency")
	rootCmd.AddCommand(adddepCmd)
}

func runAdddep(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usagef("usage: cmkr adddep <name> [git_url] [--tag <tag_or_branch>]")
	}
	name := strings.TrimSpace(args[0])
	gitURL := ""
	if len(args) == 2 {
		gitURL = args[1]
	}

	if err := deps.ValidateName(name); err != nil {
		return &usageError{msg: err.Error()}
	}
	if gitURL != "" {
		if err := deps.ValidateURLNewlines(gitURL); err != nil {
			return &usageError{msg: err.Error()}
		}
		if err := deps.ValidateGitURL(gitURL); err != nil {
			return &usageError{msg: err.Error()}
		}
	}
	if depTag != "" {
		if err := deps.ValidateTag(depTag); err != nil {
			return &usageError{msg: err.Error()}
		}
	}

	s, err := loadSession(false, "")
	if err != nil {
		return err
	}
	ledger := &deps.Ledger{
		Path:    s.resolved.DependencyFile,
		LocalFn: s.resolved.DependencyLocalFunc,
		FetchFn: s.resolved.DependencyFetchFunc,
	}

	if ledger.Exists(name) {
		ui.Infof("dependency '%s' already exists in %s", name, ledger.Path)
		return nil
	}
	if gitURL == "" && !deps.LocalFound(name) {
		return usagef("dependency '%s' not found locally. Provide a git URL or check the name (e.g., 'ryalib' vs 'raylib').", name)
	}

	added, err := ledger.Add(name, gitURL, depTag)
	if err != nil {
		return err
	}
	if added {
		ui.Infof("added dependency '%s' to %s", name, ledger.Path)
	} else {
		ui.Infof("dependency '%s' already exists in %s", name, ledger.Path)
	}
	return nil
}
