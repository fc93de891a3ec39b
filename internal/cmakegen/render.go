// Package cmakegen renders generated file contents: the CMakeLists.txt
// build description, starter sources and related checks. Rendering is
// pure text assembly; identical inputs yield byte-identical output.
package cmakegen

import (
	"fmt"
	"strings"

	"github.com/cmkr/cmkr/internal/config"
	"github.com/cmkr/cmkr/internal/pathutil"
	"golang.org/x/mod/semver"
)

const (
	cStandardVar   = "CMAKE_C_STANDARD"
	cxxStandardVar = "CMAKE_CXX_STANDARD"

	// CMake deprecated cmake_minimum_required below 3.5; warn when a
	// configured minimum predates it.
	oldestSupportedCMake = "3.5"
)

// MinVersionSupported reports whether v is a well-formed CMake minimum
// version no older than the oldest release current CMake accepts.
func MinVersionSupported(v string) bool {
	sv := "v" + strings.TrimSpace(v)
	if !semver.IsValid(sv) {
		return false
	}
	return semver.Compare(sv, "v"+oldestSupportedCMake) >= 0
}

func appendList(lines []string, name string, entries []string) []string {
	lines = append(lines, "set("+name)
	for _, entry := range entries {
		lines = append(lines, "  "+entry)
	}
	lines = append(lines, ")", "")
	return lines
}

// Render produces the complete CMakeLists.txt text for a project.
// depFileCMake is the path spelling to embed for the dependency file
// include; depFileAbs selects between the absolute spelling and a
// CMAKE_SOURCE_DIR-relative one. localFn and fetchFn name the emitted
// dependency helper functions.
func Render(project config.Project, depFileCMake string, depFileAbs bool, localFn, fetchFn string) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("cmake_minimum_required(VERSION %s)", project.MinCMake),
		"",
		fmt.Sprintf("project(%s LANGUAGES %s)", project.Name, strings.Join(project.Languages, " ")),
		"",
	)

	hasC := contains(project.Languages, "C")
	hasCXX := contains(project.Languages, "CXX")
	if hasC && project.CStandard != nil && *project.CStandard != "" {
		lines = append(lines, fmt.Sprintf("set(%s %s)", cStandardVar, *project.CStandard))
	}
	if hasCXX && project.CXXStandard != nil && *project.CXXStandard != "" {
		lines = append(lines, fmt.Sprintf("set(%s %s)", cxxStandardVar, *project.CXXStandard))
	}
	if hasC || hasCXX {
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("add_executable(%s", project.MainTarget))
	for _, source := range project.MainSources {
		lines = append(lines, "  "+source)
	}
	lines = append(lines, ")", "")

	for _, target := range project.TestTargets {
		lines = append(lines, fmt.Sprintf("add_executable(%s", target.Name))
		for _, source := range target.Sources {
			lines = append(lines, "  "+source)
		}
		lines = append(lines, ")", "")
	}

	targetNames := append([]string{project.MainTarget}, testTargetNames(project.TestTargets)...)
	lines = appendList(lines, "PROJECT_TARGETS", targetNames)
	lines = append(lines, "# Dependency helpers")
	lines = append(lines, "set(PROJECT_DEP_TARGETS ${PROJECT_TARGETS})", "")
	lines = append(lines, helperFunctions(localFn, fetchFn)...)

	if depFileAbs {
		lines = append(lines, fmt.Sprintf(`include("%s" OPTIONAL)`, pathutil.CMakePath(depFileCMake)))
	} else {
		lines = append(lines, fmt.Sprintf(`include("${CMAKE_SOURCE_DIR}/%s" OPTIONAL)`, pathutil.CMakePath(depFileCMake)))
	}
	lines = append(lines, "")

	if len(project.IncludeDirs) > 0 {
		lines = appendList(lines, "PROJECT_INCLUDE_DIRS", project.IncludeDirs)
	}
	if len(project.Definitions) > 0 {
		lines = appendList(lines, "PROJECT_DEFINITIONS", project.Definitions)
	}
	if len(project.CompileOptions) > 0 {
		lines = appendList(lines, "PROJECT_COMPILE_OPTIONS", project.CompileOptions)
	}
	if len(project.LinkLibraries) > 0 {
		lines = appendList(lines, "PROJECT_LINK_LIBRARIES", project.LinkLibraries)
	}

	if len(project.IncludeDirs) > 0 || len(project.Definitions) > 0 ||
		len(project.CompileOptions) > 0 || len(project.LinkLibraries) > 0 {
		lines = append(lines,
			"foreach(target_name IN LISTS PROJECT_TARGETS)",
			"  if(TARGET ${target_name})",
		)
		if len(project.IncludeDirs) > 0 {
			lines = append(lines, "    target_include_directories(${target_name} PRIVATE ${PROJECT_INCLUDE_DIRS})")
		}
		if len(project.Definitions) > 0 {
			lines = append(lines, "    target_compile_definitions(${target_name} PRIVATE ${PROJECT_DEFINITIONS})")
		}
		if len(project.CompileOptions) > 0 {
			lines = append(lines, "    target_compile_options(${target_name} PRIVATE ${PROJECT_COMPILE_OPTIONS})")
		}
		if len(project.LinkLibraries) > 0 {
			lines = append(lines, "    target_link_libraries(${target_name} PRIVATE ${PROJECT_LINK_LIBRARIES})")
		}
		lines = append(lines, "  endif()", "endforeach()", "")
	}

	lines = append(lines, project.ExtraLines...)

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}

func contains(list []string, want string) bool {
	for _, entry := range list {
		if entry == want {
			return true
		}
	}
	return false
}

func testTargetNames(targets []config.TestTarget) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

// helperFunctions emits the fixed bodies of the link helpers plus the
// two configurable dependency routines: local lookup via pkg-config and
// path probing, and fetch via FetchContent with an optional tag.
func helperFunctions(localFn, fetchFn string) []string {
	return []string{
		"function(project_link_dep_includes include_dirs)",
		"  if(NOT include_dirs)",
		"    return()",
		"  endif()",
		"  foreach(target_name IN LISTS PROJECT_DEP_TARGETS)",
		"    if(TARGET ${target_name})",
		"      target_include_directories(${target_name} PRIVATE ${include_dirs})",
		"    endif()",
		"  endforeach()",
		"endfunction()",
		"",
		"function(project_link_dep_libs libs)",
		"  if(NOT libs)",
		"    return()",
		"  endif()",
		"  foreach(target_name IN LISTS PROJECT_DEP_TARGETS)",
		"    if(TARGET ${target_name})",
		"      target_link_libraries(${target_name} PRIVATE ${libs})",
		"    endif()",
		"  endforeach()",
		"endfunction()",
		"",
		fmt.Sprintf("function(%s name)", localFn),
		"  if(WIN32)",
		`    message(FATAL_ERROR "Local dependency lookup is Linux-only. Provide a git URL instead.")`,
		"  endif()",
		"",
		`  string(REGEX REPLACE "[^A-Za-z0-9_]" "_" dep_id "${name}")`,
		"  find_package(PkgConfig QUIET)",
		"  if(PKG_CONFIG_FOUND)",
		"    pkg_check_modules(${dep_id} QUIET ${name})",
		"  endif()",
		"",
		"  if(${dep_id}_FOUND)",
		"    project_link_dep_includes(${${dep_id}_INCLUDE_DIRS})",
		"    project_link_dep_libs(${${dep_id}_LIBRARIES})",
		"    return()",
		"  endif()",
		"",
		"  set(env_lib_paths)",
		"  foreach(var_name IN ITEMS LIBRARY_PATH LD_LIBRARY_PATH)",
		`    if(DEFINED ENV{${var_name}} AND NOT "$ENV{${var_name}}" STREQUAL "")`,
		`      string(REPLACE ":" ";" paths "$ENV{${var_name}}")`,
		"      list(APPEND env_lib_paths ${paths})",
		"    endif()",
		"  endforeach()",
		"",
		"  if(env_lib_paths)",
		"    set(lib_paths ${env_lib_paths})",
		"  else()",
		"    set(lib_paths /usr/lib /usr/local/lib /usr/lib64 /usr/local/lib64 /opt/lib /opt/local/lib)",
		"    file(GLOB opt_lib_dirs LIST_DIRECTORIES true /opt/*/lib /opt/*/lib64)",
		"    list(APPEND lib_paths ${opt_lib_dirs})",
		"  endif()",
		"",
		"  set(env_include_paths)",
		"  foreach(var_name IN ITEMS CPATH C_INCLUDE_PATH CPLUS_INCLUDE_PATH)",
		`    if(DEFINED ENV{${var_name}} AND NOT "$ENV{${var_name}}" STREQUAL "")`,
		`      string(REPLACE ":" ";" paths "$ENV{${var_name}}")`,
		"      list(APPEND env_include_paths ${paths})",
		"    endif()",
		"  endforeach()",
		"",
		"  if(env_include_paths)",
		"    set(include_paths ${env_include_paths})",
		"  else()",
		"    set(include_paths /usr/include /usr/local/include /opt/include /opt/local/include)",
		"    file(GLOB opt_include_dirs LIST_DIRECTORIES true /opt/*/include)",
		"    list(APPEND include_paths ${opt_include_dirs})",
		"  endif()",
		"",
		`  set(header_candidates "${name}.h" "${name}/${name}.h")`,
		"  find_library(${dep_id}_LIBRARY NAMES ${name} PATHS ${lib_paths})",
		"  find_path(${dep_id}_INCLUDE_DIR NAMES ${header_candidates} PATHS ${include_paths})",
		"",
		"  if(NOT (DEFINED ${dep_id}_INCLUDE_DIR AND ${dep_id}_INCLUDE_DIR))",
		"    foreach(base_path IN LISTS include_paths)",
		`      if(IS_DIRECTORY "${base_path}/${name}")`,
		`        file(GLOB dep_headers "${base_path}/${name}/*.h")`,
		"        if(dep_headers)",
		`          set(${dep_id}_INCLUDE_DIR "${base_path}")`,
		"          break()",
		"        endif()",
		"      endif()",
		"    endforeach()",
		"  endif()",
		"",
		"  if(DEFINED ${dep_id}_LIBRARY AND ${dep_id}_LIBRARY)",
		"    project_link_dep_libs(${${dep_id}_LIBRARY})",
		"  endif()",
		"  if(DEFINED ${dep_id}_INCLUDE_DIR AND ${dep_id}_INCLUDE_DIR)",
		"    project_link_dep_includes(${${dep_id}_INCLUDE_DIR})",
		"  endif()",
		"",
		"  if(NOT (DEFINED ${dep_id}_LIBRARY AND ${dep_id}_LIBRARY)",
		"          AND NOT (DEFINED ${dep_id}_INCLUDE_DIR AND ${dep_id}_INCLUDE_DIR))",
		`    message(FATAL_ERROR "Dependency '${name}' not found. Provide a git URL or check the name (e.g., 'ryalib' vs 'raylib').")`,
		"  endif()",
		"endfunction()",
		"",
		fmt.Sprintf("function(%s name git_url [git_tag])", fetchFn),
		`  string(REGEX REPLACE "[^A-Za-z0-9_]" "_" dep_id "${name}")`,
		"  include(FetchContent)",
		`  if(DEFINED git_tag AND NOT "${git_tag}" STREQUAL "")`,
		"    FetchContent_Declare(",
		"      ${dep_id}",
		"      GIT_REPOSITORY ${git_url}",
		"      GIT_TAG ${git_tag}",
		"    )",
		"  else()",
		"    FetchContent_Declare(",
		"      ${dep_id}",
		"      GIT_REPOSITORY ${git_url}",
		"      GIT_TAG HEAD",
		"    )",
		"  endif()",
		"  FetchContent_MakeAvailable(${dep_id})",
		"  if(TARGET ${name})",
		"    project_link_dep_libs(${name})",
		"  elseif(TARGET ${name}::${name})",
		"    project_link_dep_libs(${name}::${name})",
		"  elseif(TARGET ${dep_id})",
		"    project_link_dep_libs(${dep_id})",
		"  else()",
		`    message(WARNING "Fetched '${name}' but no CMake target named '${name}', '${name}::${name}' or '${dep_id}' was found; link it manually.")`,
		"  endif()",
		"endfunction()",
		"",
	}
}
