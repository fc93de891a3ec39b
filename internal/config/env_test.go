package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvBuildDir, "env-build")
	t.Setenv(EnvMainTarget, "env-main")
	t.Setenv(EnvTestTarget, "env-test")
	t.Setenv(EnvTestTargets, " unit , integration ,, ")
	t.Setenv(EnvDependencyFile, "env-deps.cmake")
	t.Setenv(EnvLocalFunction, "env_local")
	t.Setenv(EnvFetchFunction, "env_fetch")

	m := NewManager()
	m.ApplyEnv()

	assert.Equal(t, "env-build", m.BuildDir())
	assert.Equal(t, "env-main", m.Project().MainTarget)
	assert.True(t, m.Project().MainTargetSet)
	assert.Equal(t, "env-test", m.DefaultTestTarget())
	assert.Equal(t, []string{"unit", "integration"}, m.TestTargets(),
		"comma-separated entries are trimmed and empties dropped")
	assert.Equal(t, "env-deps.cmake", m.DependencyFile())
	assert.Equal(t, "env_local", m.DependencyLocalFunc())
	assert.Equal(t, "env_fetch", m.DependencyFetchFunc())
}

func TestApplyEnvOutranksFileValues(t *testing.T) {
	t.Setenv(EnvBuildDir, "env-build")

	m := NewManager()
	m.SetBuildDir("file-build")
	m.ApplyEnv()

	assert.Equal(t, "env-build", m.BuildDir())
}

func TestApplyEnvIgnoresUnset(t *testing.T) {
	t.Setenv(EnvBuildDir, "")

	m := NewManager()
	m.SetBuildDir("file-build")
	m.ApplyEnv()

	assert.Equal(t, "file-build", m.BuildDir())
}
