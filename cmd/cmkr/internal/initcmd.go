package internal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmkr/cmkr/internal/cmakegen"
	"github.com/cmkr/cmkr/internal/config"
	"github.com/cmkr/cmkr/internal/pathutil"
	"github.com/cmkr/cmkr/internal/ui"
)

var initCmd = &cobra.Command{
	Use:     "init [path]",
	Aliases: []string{"i"},
	Short:   "Create a starter CMakeLists.txt and config if missing",
	Long: `Init creates a starter build_config.json, CMakeLists.txt and main
source file in the given directory (or the current one, after
confirmation). Existing files are never overwritten.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// confirmInitRoot asks before initializing into the current directory.
func confirmInitRoot(rootDir string) bool {
	fmt.Printf("Initialize in current directory (%s)? [y/N]: ", rootDir)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usagef("usage: cmkr init [path]")
	}

	var baseDir string
	if len(args) == 1 {
		pathArg := strings.TrimSpace(args[0])
		if pathArg == "" {
			return usagef("usage: cmkr init [path]")
		}
		baseDir = pathutil.ExpandUser(pathArg)
		if !filepath.IsAbs(baseDir) {
			baseDir = filepath.Join(cwd(), baseDir)
		}
	} else {
		baseDir = cwd()
		if !confirmInitRoot(baseDir) {
			ui.Infof("init canceled")
			return errCanceled
		}
	}
	projectName := filepath.Base(pathutil.RealWithMissing(baseDir))

	s, err := loadSession(true, baseDir)
	if err != nil {
		return err
	}

	if _, err := os.Stat(baseDir); err != nil {
		if err := os.MkdirAll(baseDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", baseDir, err)
		}
	}
	return initProject(s, baseDir, projectName)
}

// initProject creates whichever starter files are missing: the config,
// the CMakeLists.txt and the first main source.
func initProject(s *session, baseDir, projectName string) error {
	project := s.resolved.Project
	if projectName != "" {
		project.Name = config.SanitizeProjectName(projectName)
	}
	warnOldMinCMake(s)
	createdAny := false

	if s.configWritePath != "" {
		if _, err := os.Stat(s.configWritePath); err != nil {
			if err := s.manager.WriteDefault(s.configWritePath, project); err != nil {
				return err
			}
			ui.Infof("created %s", s.configWritePath)
			createdAny = true
		}
	}

	cmakePath := filepath.Join(baseDir, "CMakeLists.txt")
	if _, err := os.Stat(cmakePath); err != nil {
		contents := cmakegen.Render(
			project,
			s.resolved.DependencyFileCMake,
			s.resolved.DependencyFileIsAbs,
			s.resolved.DependencyLocalFunc,
			s.resolved.DependencyFetchFunc,
		)
		if err := writeTextFile(cmakePath, contents); err != nil {
			return err
		}
		ui.Infof("created %s", cmakePath)
		createdAny = true
	}

	mainSources := project.MainSources
	if len(mainSources) == 0 {
		mainSources = []string{config.DefaultMainSource}
	}
	mainPath := filepath.Join(baseDir, mainSources[0])
	if _, err := os.Stat(mainPath); err != nil {
		if err := writeTextFile(mainPath, cmakegen.MainSource(project, mainPath)); err != nil {
			return err
		}
		ui.Infof("created %s", mainPath)
		createdAny = true
	}

	if !createdAny {
		ui.Infof("nothing to initialize; files already exist")
	}
	return nil
}

func writeTextFile(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
