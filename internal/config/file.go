package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ApplyFile loads a JSON configuration file and applies it to the
// manager. Fields absent from the file are left untouched. The first
// validation failure aborts with an error and no further mutation.
func (m *Manager) ApplyFile(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var data map[string]any
	if err := json.Unmarshal(contents, &data); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return fmt.Errorf("config file %s must contain a JSON object", path)
		}
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	// A top-level null decodes into a nil map without error.
	if data == nil {
		return fmt.Errorf("config file %s must contain a JSON object", path)
	}

	if err := m.applyBuildLevel(data); err != nil {
		return err
	}

	if rawProject, ok := data["project"]; ok && rawProject != nil {
		project, isObj := rawProject.(map[string]any)
		if !isObj {
			return fmt.Errorf("config project must be an object")
		}
		overrides, err := validateProject(project)
		if err != nil {
			return err
		}
		m.MergeProject(overrides)
	}
	return nil
}

// applyBuildLevel validates and applies the top-level build fields.
// The deprecated top-level main_target key is rejected unconditionally.
func (m *Manager) applyBuildLevel(data map[string]any) error {
	if _, ok := data["main_target"]; ok {
		if project, isObj := data["project"].(map[string]any); isObj {
			if _, both := project["main_target"]; both {
				return fmt.Errorf("config has both main_target and project.main_target; keep only project.main_target")
			}
		}
		return fmt.Errorf("config main_target is not supported; use project.main_target")
	}

	if v, present, err := nonEmptyString(data["build_dir"], "build_dir"); err != nil {
		return err
	} else if present {
		m.SetBuildDir(v)
	}

	if v, present, err := nonEmptyString(data["default_test_target"], "default_test_target"); err != nil {
		return err
	} else if present {
		m.SetDefaultTestTarget(v)
	}

	if v, present, err := stringList(data["test_targets"], "test_targets", true); err != nil {
		return err
	} else if present {
		m.SetTestTargets(v)
	}

	if v, present, err := nonEmptyString(data["dependency_file"], "dependency_file"); err != nil {
		return err
	} else if present {
		m.SetDependencyFile(v)
	}

	if v, present, err := nonEmptyString(data["dependency_local_function"], "dependency_local_function"); err != nil {
		return err
	} else if present {
		m.SetDependencyLocalFunc(v)
	}

	if v, present, err := nonEmptyString(data["dependency_fetch_function"], "dependency_fetch_function"); err != nil {
		return err
	} else if present {
		m.SetDependencyFetchFunc(v)
	}

	return nil
}

// validateProject validates the nested project object and returns the
// overrides it sets.
func validateProject(project map[string]any) (ProjectOverrides, error) {
	var out ProjectOverrides

	if v, present, err := nonEmptyString(project["name"], "project.name"); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.Name, out.NameSet = v, true
	}

	if v, present, err := stringList(project["languages"], "project.languages", false); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.Languages = v
	}

	if raw, ok := project["min_cmake"]; ok && raw != nil {
		v, _, err := standard(raw, "project.min_cmake", false)
		if err != nil {
			return ProjectOverrides{}, err
		}
		out.MinCMake, out.MinCMakeSet = v, true
	}

	if raw, ok := project["c_standard"]; ok {
		v, present, err := standard(raw, "project.c_standard", true)
		if err != nil {
			return ProjectOverrides{}, err
		}
		out.CStandardSet = true
		if present {
			out.CStandard = &v
		}
	}

	if raw, ok := project["cxx_standard"]; ok {
		v, present, err := standard(raw, "project.cxx_standard", true)
		if err != nil {
			return ProjectOverrides{}, err
		}
		out.CXXStandardSet = true
		if present {
			out.CXXStandard = &v
		}
	}

	if v, present, err := nonEmptyString(project["main_target"], "project.main_target"); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.MainTarget, out.MainTargetSet = v, true
	}

	if v, present, err := stringList(project["main_sources"], "project.main_sources", false); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.MainSources = v
	}

	if raw, ok := project["test_targets"]; ok && raw != nil {
		entries, isList := raw.([]any)
		if !isList {
			return ProjectOverrides{}, fmt.Errorf("config project.test_targets must be a list of objects")
		}
		targets := make([]TestTarget, 0, len(entries))
		for i, entry := range entries {
			target, err := testTarget(entry, i)
			if err != nil {
				return ProjectOverrides{}, err
			}
			targets = append(targets, target)
		}
		out.TestTargets, out.TestTargetsSet = targets, true
	}

	if v, present, err := stringList(project["include_dirs"], "project.include_dirs", true); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.IncludeDirs, out.IncludeSet = v, true
	}

	if v, present, err := stringList(project["definitions"], "project.definitions", true); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.Definitions, out.DefinitionsSet = v, true
	}

	if v, present, err := stringList(project["compile_options"], "project.compile_options", true); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.CompileOptions, out.CompileSet = v, true
	}

	if v, present, err := stringList(project["link_libraries"], "project.link_libraries", true); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.LinkLibraries, out.LinkSet = v, true
	}

	if v, present, err := rawLineList(project["extra_cmake_lines"], "project.extra_cmake_lines"); err != nil {
		return ProjectOverrides{}, err
	} else if present {
		out.ExtraLines, out.ExtraLinesSet = v, true
	}

	return out, nil
}
