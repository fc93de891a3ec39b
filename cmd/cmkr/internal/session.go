package internal

import (
	"os"
	"path/filepath"

	"github.com/cmkr/cmkr/internal/config"
	"github.com/cmkr/cmkr/internal/pathutil"
	"github.com/cmkr/cmkr/internal/toolchain"
	"github.com/cmkr/cmkr/internal/ui"
)

// session is the per-invocation configuration context threaded through
// command implementations; there is no ambient global state.
type session struct {
	manager  *config.Manager
	resolved config.Resolved

	// configWritePath is where init may create a starter config; empty
	// for other commands.
	configWritePath string
}

var knownConfigNames = []string{config.DefaultConfigFileName}

// loadSession reconciles the configuration layers in precedence order:
// built-in defaults, the configuration file, environment overrides,
// then path resolution. allowMissingConfig is true only for init,
// which may run before any config exists; baseDir is init's target
// directory, empty otherwise.
func loadSession(allowMissingConfig bool, baseDir string) (*session, error) {
	s := &session{manager: config.NewManager()}

	candidate := ""
	switch {
	case allowMissingConfig && baseDir != "" && flagConfig == "" && os.Getenv(config.EnvConfigFile) == "":
		candidate = filepath.Join(baseDir, knownConfigNames[0])
		s.configWritePath = candidate
	case flagConfig != "":
		base := cwd()
		if allowMissingConfig && baseDir != "" {
			base = baseDir
		}
		candidate, _ = pathutil.ExpandAndJoin(flagConfig, base)
	case os.Getenv(config.EnvConfigFile) != "":
		candidate, _ = pathutil.ExpandAndJoin(os.Getenv(config.EnvConfigFile), cwd())
	default:
		candidate = config.DiscoverConfigPath(cwd(), knownConfigNames)
	}

	if candidate == "" {
		if allowMissingConfig {
			if baseDir != "" {
				candidate = filepath.Join(baseDir, knownConfigNames[0])
				s.configWritePath = candidate
			}
		} else {
			return nil, usagef("no build config found; pass --config or set %s", config.EnvConfigFile)
		}
	}

	if candidate != "" {
		s.manager.SetConfigPath(candidate)
		if _, err := os.Stat(candidate); err == nil {
			if err := s.manager.ApplyFile(candidate); err != nil {
				return nil, err
			}
			s.configWritePath = ""
		} else if allowMissingConfig {
			s.configWritePath = candidate
		} else {
			return nil, usagef("config file %s not found", candidate)
		}
	}

	s.manager.ApplyEnv()

	projectRoot := config.ResolveProjectRoot(candidate)
	if err := s.manager.ResolvePaths(projectRoot); err != nil {
		return nil, err
	}
	resolved, err := s.manager.Resolved()
	if err != nil {
		return nil, err
	}
	s.resolved = resolved
	return s, nil
}

func cwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// cmake returns the toolchain adapter for the resolved configuration.
func (s *session) cmake() *toolchain.CMake {
	return &toolchain.CMake{
		SourceDir: s.resolved.ProjectRoot,
		BuildDir:  s.resolved.BuildDir,
	}
}

func (s *session) clean() error {
	return toolchain.Clean(s.resolved.BuildDir, s.resolved.ProjectRoot)
}

// ensureConfigured configures the build directory when needed: always
// when a compiler is requested, otherwise only when the build dir does
// not exist yet. A compiler mismatch against an existing build cleans
// it first.
func (s *session) ensureConfigured(compiler string) error {
	cm := s.cmake()
	if err := cm.CleanIfCompilerMismatch(compiler, s.clean); err != nil {
		return err
	}
	if compiler != "" {
		return cm.Configure(compiler)
	}
	if _, err := os.Stat(s.resolved.BuildDir); err != nil {
		return cm.Configure("")
	}
	return nil
}

func (s *session) ensureBuilt(compiler string) error {
	if err := s.ensureConfigured(compiler); err != nil {
		return err
	}
	return s.cmake().Build()
}

func (s *session) runExecutable(args []string) error {
	target := s.resolved.Project.MainTarget
	exePath := toolchain.FindExecutable(s.resolved.BuildDir, target)
	if exePath == "" {
		return toolchain.MissingExecutableError(s.resolved.BuildDir, target)
	}
	ui.Infof("running %s", exePath)
	return toolchain.Run(append([]string{exePath}, args...), "", nil)
}
