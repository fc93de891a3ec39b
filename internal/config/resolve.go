package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cmkr/cmkr/internal/pathutil"
)

// DiscoverConfigPath walks up from startDir looking for one of the
// known configuration file names. Returns "" when none is found.
func DiscoverConfigPath(startDir string, names []string) string {
	current, err := filepath.Abs(startDir)
	if err != nil {
		current = startDir
	}
	for {
		for _, name := range names {
			candidate := filepath.Join(current, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// ResolveProjectRoot derives the project root from the configuration
// file location, or the working directory when no file is in play. The
// result is canonical even if part of the path does not exist yet.
func ResolveProjectRoot(configPath string) string {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		return pathutil.RealWithMissing(wd)
	}
	if !filepath.IsAbs(configPath) {
		if wd, err := os.Getwd(); err == nil {
			configPath = filepath.Join(wd, configPath)
		}
	}
	return pathutil.RealWithMissing(filepath.Dir(configPath))
}

// resolveDependencyFile expands and resolves the dependency file path
// against projectRoot and enforces root containment. It returns the
// resolved real path, the spelling to embed in generated CMake text,
// and whether that spelling is absolute.
func resolveDependencyFile(projectRoot, dependencyFile string) (resolved, cmakePath string, isAbs bool, err error) {
	candidate, isAbs := pathutil.ExpandAndJoin(dependencyFile, projectRoot)

	rootReal := pathutil.RealWithMissing(projectRoot)
	candidateReal := pathutil.RealWithMissing(candidate)
	if !pathutil.Within(candidateReal, rootReal) {
		return "", "", false, fmt.Errorf("dependency_file must resolve within %s; got %s", rootReal, candidate)
	}

	if isAbs {
		return candidateReal, candidateReal, true, nil
	}
	rel, relErr := filepath.Rel(rootReal, candidateReal)
	if relErr != nil {
		return "", "", false, fmt.Errorf("dependency_file must resolve within %s; got %s", rootReal, candidate)
	}
	return candidateReal, rel, false, nil
}

// ResolvePaths populates the resolved path fields on the manager:
// project root, build directory and dependency file. The dependency
// file must be contained within the project root.
func (m *Manager) ResolvePaths(projectRoot string) error {
	m.SetProjectRoot(projectRoot)

	buildDir, _ := pathutil.ExpandAndJoin(m.BuildDir(), projectRoot)
	m.SetBuildDirResolved(buildDir)

	resolved, cmakePath, isAbs, err := resolveDependencyFile(projectRoot, m.DependencyFile())
	if err != nil {
		return err
	}
	m.SetDepFileResolved(resolved)
	m.SetDepFileCMake(cmakePath)
	m.SetDepFileIsAbs(isAbs)
	return nil
}

// Resolved freezes the manager into the immutable snapshot consumed by
// rendering, ledger and toolchain operations. ResolvePaths must have
// run first.
func (m *Manager) Resolved() (Resolved, error) {
	if m.projectRoot == "" {
		return Resolved{}, fmt.Errorf("project root is not set; call ResolvePaths first")
	}
	if m.depFileCMake == "" {
		return Resolved{}, fmt.Errorf("dependency file path is not set; call ResolvePaths first")
	}
	buildDir := m.buildDirResolved
	if buildDir == "" {
		buildDir = m.buildDir
	}
	depFile := m.depFileResolved
	if depFile == "" {
		depFile = m.dependencyFile
	}
	return Resolved{
		ProjectRoot:         m.projectRoot,
		BuildDir:            buildDir,
		DefaultTestTarget:   m.defaultTestTarget,
		TestTargets:         slices.Clone(m.testTargets),
		DependencyFile:      depFile,
		DependencyFileCMake: m.depFileCMake,
		DependencyFileIsAbs: m.depFileIsAbs,
		DependencyLocalFunc: m.dependencyLocalFunc,
		DependencyFetchFunc: m.dependencyFetchFunc,
		Project:             m.EffectiveProject(),
	}, nil
}
