package config

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeProjectName replaces every character outside [A-Za-z0-9_]
// with an underscore. An empty or all-invalid name collapses to the
// fixed placeholder. Sanitizing a clean identifier is the identity.
func SanitizeProjectName(name string) string {
	cleaned := nameSanitizer.ReplaceAllString(strings.TrimSpace(name), "_")
	if cleaned == "" {
		return DefaultProjectName
	}
	return cleaned
}

// Manager is the mutable holder of build settings for one invocation.
// It performs no validation of its own; callers validate before setting.
type Manager struct {
	buildDir            string
	defaultTestTarget   string
	testTargets         []string
	dependencyFile      string
	dependencyLocalFunc string
	dependencyFetchFunc string
	project             ProjectOverrides

	projectRoot         string
	buildDirResolved    string
	depFileResolved     string
	depFileCMake        string
	depFileIsAbs        bool
	configPath          string
}

// NewManager returns a Manager populated with built-in defaults.
func NewManager() *Manager {
	return &Manager{
		buildDir:            DefaultBuildDir,
		dependencyFile:      DefaultDependencyFile,
		dependencyLocalFunc: DefaultLocalFunction,
		dependencyFetchFunc: DefaultFetchFunction,
	}
}

func (m *Manager) BuildDir() string            { return m.buildDir }
func (m *Manager) DefaultTestTarget() string   { return m.defaultTestTarget }
func (m *Manager) TestTargets() []string       { return m.testTargets }
func (m *Manager) DependencyFile() string      { return m.dependencyFile }
func (m *Manager) DependencyLocalFunc() string { return m.dependencyLocalFunc }
func (m *Manager) DependencyFetchFunc() string { return m.dependencyFetchFunc }
func (m *Manager) Project() ProjectOverrides   { return m.project }
func (m *Manager) ProjectRoot() string         { return m.projectRoot }
func (m *Manager) BuildDirResolved() string    { return m.buildDirResolved }
func (m *Manager) DepFileResolved() string     { return m.depFileResolved }
func (m *Manager) DepFileCMake() string        { return m.depFileCMake }
func (m *Manager) DepFileIsAbs() bool          { return m.depFileIsAbs }
func (m *Manager) ConfigPath() string          { return m.configPath }

func (m *Manager) SetBuildDir(v string)            { m.buildDir = v }
func (m *Manager) SetDefaultTestTarget(v string)   { m.defaultTestTarget = v }
func (m *Manager) SetTestTargets(v []string)       { m.testTargets = v }
func (m *Manager) SetDependencyFile(v string)      { m.dependencyFile = v }
func (m *Manager) SetDependencyLocalFunc(v string) { m.dependencyLocalFunc = v }
func (m *Manager) SetDependencyFetchFunc(v string) { m.dependencyFetchFunc = v }
func (m *Manager) SetProject(v ProjectOverrides)   { m.project = v }
func (m *Manager) SetProjectRoot(v string)         { m.projectRoot = v }
func (m *Manager) SetBuildDirResolved(v string)    { m.buildDirResolved = v }
func (m *Manager) SetDepFileResolved(v string)     { m.depFileResolved = v }
func (m *Manager) SetDepFileCMake(v string)        { m.depFileCMake = v }
func (m *Manager) SetDepFileIsAbs(v bool)          { m.depFileIsAbs = v }
func (m *Manager) SetConfigPath(v string)          { m.configPath = v }

// MergeProject overlays overrides on the stored partial project config.
func (m *Manager) MergeProject(overrides ProjectOverrides) {
	m.project.merge(overrides)
}

// Snapshot is a detached deep copy of a Manager's state, used for
// rollback and test isolation.
type Snapshot struct {
	BuildDir            string
	DefaultTestTarget   string
	TestTargets         []string
	DependencyFile      string
	DependencyLocalFunc string
	DependencyFetchFunc string
	Project             ProjectOverrides
	ProjectRoot         string
	BuildDirResolved    string
	DepFileResolved     string
	DepFileCMake        string
	DepFileIsAbs        bool
	ConfigPath          string
}

// ToSnapshot exports a deep copy of the current state.
func (m *Manager) ToSnapshot() Snapshot {
	return Snapshot{
		BuildDir:            m.buildDir,
		DefaultTestTarget:   m.defaultTestTarget,
		TestTargets:         slices.Clone(m.testTargets),
		DependencyFile:      m.dependencyFile,
		DependencyLocalFunc: m.dependencyLocalFunc,
		DependencyFetchFunc: m.dependencyFetchFunc,
		Project:             cloneOverrides(m.project),
		ProjectRoot:         m.projectRoot,
		BuildDirResolved:    m.buildDirResolved,
		DepFileResolved:     m.depFileResolved,
		DepFileCMake:        m.depFileCMake,
		DepFileIsAbs:        m.depFileIsAbs,
		ConfigPath:          m.configPath,
	}
}

// FromSnapshot builds a Manager from a detached snapshot.
func FromSnapshot(s Snapshot) *Manager {
	return &Manager{
		buildDir:            s.BuildDir,
		defaultTestTarget:   s.DefaultTestTarget,
		testTargets:         slices.Clone(s.TestTargets),
		dependencyFile:      s.DependencyFile,
		dependencyLocalFunc: s.DependencyLocalFunc,
		dependencyFetchFunc: s.DependencyFetchFunc,
		project:             cloneOverrides(s.Project),
		projectRoot:         s.ProjectRoot,
		buildDirResolved:    s.BuildDirResolved,
		depFileResolved:     s.DepFileResolved,
		depFileCMake:        s.DepFileCMake,
		depFileIsAbs:        s.DepFileIsAbs,
		configPath:          s.ConfigPath,
	}
}

func cloneOverrides(o ProjectOverrides) ProjectOverrides {
	out := o
	out.Languages = slices.Clone(o.Languages)
	out.MainSources = slices.Clone(o.MainSources)
	out.IncludeDirs = slices.Clone(o.IncludeDirs)
	out.Definitions = slices.Clone(o.Definitions)
	out.CompileOptions = slices.Clone(o.CompileOptions)
	out.LinkLibraries = slices.Clone(o.LinkLibraries)
	out.ExtraLines = slices.Clone(o.ExtraLines)
	out.CStandard = clonePtr(o.CStandard)
	out.CXXStandard = clonePtr(o.CXXStandard)
	if o.TestTargets != nil {
		targets := make([]TestTarget, len(o.TestTargets))
		for i, t := range o.TestTargets {
			targets[i] = TestTarget{Name: t.Name, Sources: slices.Clone(t.Sources)}
		}
		out.TestTargets = targets
	}
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func defaultProject() Project {
	c := DefaultCStandard
	return Project{
		Name:        DefaultProjectName,
		Languages:   []string{"C"},
		MinCMake:    DefaultMinCMake,
		CStandard:   &c,
		MainTarget:  DefaultMainTarget,
		MainSources: []string{DefaultMainSource},
	}
}

// EffectiveProject overlays the stored partial project overrides onto
// the built-in defaults. The name falls back to the working-directory
// name when no override is present, and is always sanitized. Empty
// languages/main_sources overrides fall back to the single-element
// defaults.
func (m *Manager) EffectiveProject() Project {
	merged := defaultProject()
	p := m.project

	if p.NameSet && p.Name != "" {
		merged.Name = SanitizeProjectName(p.Name)
	} else if wd, err := os.Getwd(); err == nil {
		merged.Name = SanitizeProjectName(filepath.Base(wd))
	}
	if len(p.Languages) > 0 {
		merged.Languages = slices.Clone(p.Languages)
	}
	if p.MinCMakeSet {
		merged.MinCMake = p.MinCMake
	}
	if p.CStandardSet {
		merged.CStandard = clonePtr(p.CStandard)
	}
	if p.CXXStandardSet {
		merged.CXXStandard = clonePtr(p.CXXStandard)
	}
	if p.MainTargetSet {
		merged.MainTarget = p.MainTarget
	}
	if len(p.MainSources) > 0 {
		merged.MainSources = slices.Clone(p.MainSources)
	}
	if p.TestTargetsSet {
		merged.TestTargets = cloneOverrides(p).TestTargets
	}
	if p.IncludeSet {
		merged.IncludeDirs = slices.Clone(p.IncludeDirs)
	}
	if p.DefinitionsSet {
		merged.Definitions = slices.Clone(p.Definitions)
	}
	if p.CompileSet {
		merged.CompileOptions = slices.Clone(p.CompileOptions)
	}
	if p.LinkSet {
		merged.LinkLibraries = slices.Clone(p.LinkLibraries)
	}
	if p.ExtraLinesSet {
		merged.ExtraLines = slices.Clone(p.ExtraLines)
	}
	return merged
}
