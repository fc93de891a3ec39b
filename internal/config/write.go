package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeProject mirrors Project but emits every key, so a generated
// starter config documents the full shape.
type writeProject struct {
	Name           string       `json:"name"`
	Languages      []string     `json:"languages"`
	MinCMake       string       `json:"min_cmake"`
	CStandard      *string      `json:"c_standard"`
	CXXStandard    *string      `json:"cxx_standard"`
	MainTarget     string       `json:"main_target"`
	MainSources    []string     `json:"main_sources"`
	TestTargets    []TestTarget `json:"test_targets"`
	IncludeDirs    []string     `json:"include_dirs"`
	Definitions    []string     `json:"definitions"`
	CompileOptions []string     `json:"compile_options"`
	LinkLibraries  []string     `json:"link_libraries"`
	ExtraLines     []string     `json:"extra_cmake_lines"`
}

type writeConfig struct {
	BuildDir            string       `json:"build_dir"`
	DependencyFile      string       `json:"dependency_file"`
	DependencyLocalFunc string       `json:"dependency_local_function"`
	DependencyFetchFunc string       `json:"dependency_fetch_function"`
	Project             writeProject `json:"project"`
	DefaultTestTarget   string       `json:"default_test_target,omitempty"`
	TestTargets         []string     `json:"test_targets,omitempty"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// WriteDefault writes a starter configuration file reflecting the
// manager's current effective settings. Parent directories are created
// as needed.
func (m *Manager) WriteDefault(path string, project Project) error {
	targets := project.TestTargets
	if targets == nil {
		targets = []TestTarget{}
	}
	data := writeConfig{
		BuildDir:            m.BuildDir(),
		DependencyFile:      m.DependencyFile(),
		DependencyLocalFunc: m.DependencyLocalFunc(),
		DependencyFetchFunc: m.DependencyFetchFunc(),
		Project: writeProject{
			Name:           project.Name,
			Languages:      orEmpty(project.Languages),
			MinCMake:       project.MinCMake,
			CStandard:      project.CStandard,
			CXXStandard:    project.CXXStandard,
			MainTarget:     project.MainTarget,
			MainSources:    orEmpty(project.MainSources),
			TestTargets:    targets,
			IncludeDirs:    orEmpty(project.IncludeDirs),
			Definitions:    orEmpty(project.Definitions),
			CompileOptions: orEmpty(project.CompileOptions),
			LinkLibraries:  orEmpty(project.LinkLibraries),
			ExtraLines:     orEmpty(project.ExtraLines),
		},
		DefaultTestTarget: m.DefaultTestTarget(),
		TestTargets:       m.TestTargets(),
	}
	contents, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(contents, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
