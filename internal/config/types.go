// Package config implements the layered build configuration: validation
// of raw decoded values, the mutable configuration manager, and the
// resolver that merges defaults, file contents, environment overrides
// and path resolution into one immutable snapshot.
package config

// Built-in defaults. These are the lowest-precedence configuration layer.
const (
	DefaultBuildDir       = "build"
	DefaultDependencyFile = "dependencies.cmake"
	DefaultLocalFunction  = "project_add_local_dependency"
	DefaultFetchFunction  = "project_add_fetch_dependency"
	DefaultProjectName    = "Project"
	DefaultMinCMake       = "3.20"
	DefaultCStandard      = "23"
	DefaultMainTarget     = "main"
	DefaultMainSource     = "main.c"
	DefaultConfigFileName = "build_config.json"
)

// TestTarget is one named test executable and its sources.
type TestTarget struct {
	Name    string   `json:"name"`
	Sources []string `json:"sources"`
}

// Project describes one buildable unit after all overrides are merged.
type Project struct {
	Name           string       `json:"name"`
	Languages      []string     `json:"languages"`
	MinCMake       string       `json:"min_cmake"`
	CStandard      *string      `json:"c_standard,omitempty"`
	CXXStandard    *string      `json:"cxx_standard,omitempty"`
	MainTarget     string       `json:"main_target"`
	MainSources    []string     `json:"main_sources"`
	TestTargets    []TestTarget `json:"test_targets,omitempty"`
	IncludeDirs    []string     `json:"include_dirs,omitempty"`
	Definitions    []string     `json:"definitions,omitempty"`
	CompileOptions []string     `json:"compile_options,omitempty"`
	LinkLibraries  []string     `json:"link_libraries,omitempty"`
	ExtraLines     []string     `json:"extra_cmake_lines,omitempty"`
}

// ProjectOverrides holds the subset of project fields a configuration
// layer has actually set. Nil pointers and nil slices mean "not set";
// standards distinguish "set to null" (pointer to nil sentinel) from
// absent via the *set flags.
type ProjectOverrides struct {
	Name           string
	NameSet        bool
	Languages      []string
	MinCMake       string
	MinCMakeSet    bool
	CStandard      *string
	CStandardSet   bool
	CXXStandard    *string
	CXXStandardSet bool
	MainTarget     string
	MainTargetSet  bool
	MainSources    []string
	TestTargets    []TestTarget
	TestTargetsSet bool
	IncludeDirs    []string
	IncludeSet     bool
	Definitions    []string
	DefinitionsSet bool
	CompileOptions []string
	CompileSet     bool
	LinkLibraries  []string
	LinkSet        bool
	ExtraLines     []string
	ExtraLinesSet  bool
}

// merge overlays other on top of o, field by field.
func (o *ProjectOverrides) merge(other ProjectOverrides) {
	if other.NameSet {
		o.Name, o.NameSet = other.Name, true
	}
	if other.Languages != nil {
		o.Languages = other.Languages
	}
	if other.MinCMakeSet {
		o.MinCMake, o.MinCMakeSet = other.MinCMake, true
	}
	if other.CStandardSet {
		o.CStandard, o.CStandardSet = other.CStandard, true
	}
	if other.CXXStandardSet {
		o.CXXStandard, o.CXXStandardSet = other.CXXStandard, true
	}
	if other.MainTargetSet {
		o.MainTarget, o.MainTargetSet = other.MainTarget, true
	}
	if other.MainSources != nil {
		o.MainSources = other.MainSources
	}
	if other.TestTargetsSet {
		o.TestTargets, o.TestTargetsSet = other.TestTargets, true
	}
	if other.IncludeSet {
		o.IncludeDirs, o.IncludeSet = other.IncludeDirs, true
	}
	if other.DefinitionsSet {
		o.Definitions, o.DefinitionsSet = other.Definitions, true
	}
	if other.CompileSet {
		o.CompileOptions, o.CompileSet = other.CompileOptions, true
	}
	if other.LinkSet {
		o.LinkLibraries, o.LinkSet = other.LinkLibraries, true
	}
	if other.ExtraLinesSet {
		o.ExtraLines, o.ExtraLinesSet = other.ExtraLines, true
	}
}

// Resolved is the frozen configuration snapshot consumed read-only by
// rendering, ledger and toolchain operations.
type Resolved struct {
	ProjectRoot         string
	BuildDir            string
	DefaultTestTarget   string
	TestTargets         []string
	DependencyFile      string
	DependencyFileCMake string
	DependencyFileIsAbs bool
	DependencyLocalFunc string
	DependencyFetchFunc string
	Project             Project
}
