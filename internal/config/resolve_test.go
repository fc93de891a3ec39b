package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmkr/cmkr/internal/pathutil"
)

func TestResolvePathsDefaultsUnderMissingRoot(t *testing.T) {
	// The project root may not exist yet at resolution time (init).
	root := pathutil.RealWithMissing(filepath.Join(t.TempDir(), "p"))

	m := NewManager()
	require.NoError(t, m.ResolvePaths(root))

	assert.Equal(t, root, m.ProjectRoot())
	assert.Equal(t, filepath.Join(root, "build"), m.BuildDirResolved())
	assert.Equal(t, filepath.Join(root, "dependencies.cmake"), m.DepFileResolved())
	assert.Equal(t, "dependencies.cmake", m.DepFileCMake())
	assert.False(t, m.DepFileIsAbs())
}

func TestResolvePathsRejectsDependencyFileOutsideRoot(t *testing.T) {
	root := pathutil.RealWithMissing(filepath.Join(t.TempDir(), "p"))

	m := NewManager()
	m.SetDependencyFile(filepath.Join("..", "deps.txt"))
	err := m.ResolvePaths(root)
	assert.ErrorContains(t, err, "dependency_file must resolve within")
}

func TestResolvePathsRejectsAbsoluteDependencyFileOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := pathutil.RealWithMissing(filepath.Join(base, "p"))

	m := NewManager()
	m.SetDependencyFile(filepath.Join(pathutil.RealWithMissing(base), "elsewhere", "deps.cmake"))
	err := m.ResolvePaths(root)
	assert.ErrorContains(t, err, "dependency_file must resolve within")
}

func TestResolvePathsAbsoluteDependencyFileInsideRoot(t *testing.T) {
	root := pathutil.RealWithMissing(filepath.Join(t.TempDir(), "p"))
	abs := filepath.Join(root, "cmake", "deps.cmake")

	m := NewManager()
	m.SetDependencyFile(abs)
	require.NoError(t, m.ResolvePaths(root))

	assert.Equal(t, abs, m.DepFileResolved())
	assert.Equal(t, abs, m.DepFileCMake(), "absolute files embed the absolute path")
	assert.True(t, m.DepFileIsAbs())
}

func TestResolvePathsNestedRelativeDependencyFile(t *testing.T) {
	root := pathutil.RealWithMissing(filepath.Join(t.TempDir(), "p"))

	m := NewManager()
	m.SetDependencyFile(filepath.Join("cmake", "deps.cmake"))
	require.NoError(t, m.ResolvePaths(root))

	assert.Equal(t, filepath.Join(root, "cmake", "deps.cmake"), m.DepFileResolved())
	assert.Equal(t, filepath.Join("cmake", "deps.cmake"), m.DepFileCMake())
	assert.False(t, m.DepFileIsAbs())
}

func TestResolvedRequiresResolvePaths(t *testing.T) {
	m := NewManager()
	_, err := m.Resolved()
	assert.ErrorContains(t, err, "project root is not set")
}

func TestResolvedSnapshot(t *testing.T) {
	root := pathutil.RealWithMissing(filepath.Join(t.TempDir(), "p"))

	m := NewManager()
	m.SetBuildDir("out")
	m.SetTestTargets([]string{"unit"})
	require.NoError(t, m.ResolvePaths(root))

	resolved, err := m.Resolved()
	require.NoError(t, err)

	assert.Equal(t, root, resolved.ProjectRoot)
	assert.Equal(t, filepath.Join(root, "out"), resolved.BuildDir)
	assert.Equal(t, []string{"unit"}, resolved.TestTargets)
	assert.Equal(t, DefaultLocalFunction, resolved.DependencyLocalFunc)
	assert.Equal(t, DefaultFetchFunction, resolved.DependencyFetchFunc)
	assert.NotEmpty(t, resolved.Project.Name)

	// The snapshot is detached from later manager mutation.
	m.SetTestTargets([]string{"changed"})
	assert.Equal(t, []string{"unit"}, resolved.TestTargets)
}

func TestResolveProjectRootFromConfigPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("{}"), 0o644))

	got := ResolveProjectRoot(configPath)
	assert.Equal(t, pathutil.RealWithMissing(dir), got)
}

func TestResolveProjectRootWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	got := ResolveProjectRoot("")
	assert.Equal(t, pathutil.RealWithMissing(dir), got)
}

func TestDiscoverConfigPathWalksUp(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	configPath := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("{}"), 0o644))

	got := DiscoverConfigPath(nested, []string{DefaultConfigFileName})
	assert.Equal(t, configPath, got)
}

func TestDiscoverConfigPathNotFound(t *testing.T) {
	got := DiscoverConfigPath(t.TempDir(), []string{"definitely_not_here.json"})
	assert.Empty(t, got)
}
