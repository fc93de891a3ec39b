package config

import (
	"os"
	"strings"
)

// Environment variable names recognized as overrides. Each maps to
// exactly one manager field and outranks the configuration file.
const (
	EnvBuildDir       = "BUILD_DIR"
	EnvMainTarget     = "MAIN_TARGET"
	EnvTestTarget     = "TEST_TARGET"
	EnvTestTargets    = "TEST_TARGETS"
	EnvDependencyFile = "DEPENDENCY_FILE"
	EnvLocalFunction  = "DEPENDENCY_LOCAL_FUNCTION"
	EnvFetchFunction  = "DEPENDENCY_FETCH_FUNCTION"
	EnvConfigFile     = "BUILD_CONFIG_FILE"
)

// ApplyEnv applies process-environment overrides to the manager.
// Unset and empty variables are ignored.
func (m *Manager) ApplyEnv() {
	if v := os.Getenv(EnvBuildDir); v != "" {
		m.SetBuildDir(v)
	}
	if v := os.Getenv(EnvMainTarget); v != "" {
		m.MergeProject(ProjectOverrides{MainTarget: v, MainTargetSet: true})
	}
	if v := os.Getenv(EnvTestTarget); v != "" {
		m.SetDefaultTestTarget(v)
	}
	if v := os.Getenv(EnvTestTargets); v != "" {
		m.SetTestTargets(splitTargets(v))
	}
	if v := os.Getenv(EnvDependencyFile); v != "" {
		m.SetDependencyFile(v)
	}
	if v := os.Getenv(EnvLocalFunction); v != "" {
		m.SetDependencyLocalFunc(v)
	}
	if v := os.Getenv(EnvFetchFunction); v != "" {
		m.SetDependencyFetchFunc(v)
	}
}

// splitTargets splits a comma-separated target list, trimming each
// entry and discarding empty ones.
func splitTargets(value string) []string {
	var out []string
	for _, entry := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
