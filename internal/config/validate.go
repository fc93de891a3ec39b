package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validation primitives for raw JSON-decoded values. Each returns the
// normalized value, whether the input was present, and an error naming
// the offending field. Absent input (nil) is success with present=false
// unless stated otherwise.

// nonEmptyString accepts a string with non-whitespace content and
// returns it trimmed.
func nonEmptyString(v any, field string) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false, fmt.Errorf("config %s must be a non-empty string", field)
	}
	return strings.TrimSpace(s), true, nil
}

// stringList accepts a list of strings. Elements must not be empty or
// whitespace-only but are preserved verbatim, not trimmed. An empty
// list is rejected when allowEmpty is false.
func stringList(v any, field string, allowEmpty bool) ([]string, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false, fmt.Errorf("config %s must be a list of strings", field)
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false, fmt.Errorf("config %s must be a list of non-empty strings", field)
		}
		out = append(out, s)
	}
	if len(out) == 0 && !allowEmpty {
		return nil, false, fmt.Errorf("config %s must not be empty", field)
	}
	return out, true, nil
}

// standard accepts a language-standard value: an integral JSON number
// (converted to its decimal string) or a non-empty string (trimmed).
// JSON null means "no standard pinned" and is accepted only when
// allowNull is set; the caller receives present=false for it.
func standard(v any, field string, allowNull bool) (string, bool, error) {
	if v == nil {
		if allowNull {
			return "", false, nil
		}
		return "", false, fmt.Errorf("config %s must be a string or integer", field)
	}
	switch val := v.(type) {
	case float64:
		// Only values float64 represents exactly convert safely.
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return strconv.FormatInt(int64(val), 10), true, nil
		}
	case string:
		if strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val), true, nil
		}
	}
	return "", false, fmt.Errorf("config %s must be a string or integer", field)
}

// optionalString accepts any string verbatim, including the empty one.
func optionalString(v any, field string) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("config %s must be a string", field)
	}
	return s, true, nil
}

// testTarget validates one project.test_targets entry. Error messages
// embed the entry's index for diagnosability.
func testTarget(v any, index int) (TestTarget, error) {
	entry, ok := v.(map[string]any)
	if !ok {
		return TestTarget{}, fmt.Errorf("config project.test_targets entries must be objects")
	}
	name, ok := entry["name"].(string)
	if !ok || name == "" {
		return TestTarget{}, fmt.Errorf("config project.test_targets[%d].name must be a non-empty string", index)
	}
	rawSources, present := entry["sources"]
	if !present || rawSources == nil {
		return TestTarget{}, fmt.Errorf("config project.test_targets[%d].sources is required", index)
	}
	sources, _, err := stringList(rawSources, fmt.Sprintf("project.test_targets[%d].sources", index), false)
	if err != nil {
		return TestTarget{}, err
	}
	return TestTarget{Name: name, Sources: sources}, nil
}

// rawLineList validates extra_cmake_lines: a list whose elements are
// strings passed through verbatim (empty strings allowed, nulls skipped).
func rawLineList(v any, field string) ([]string, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false, fmt.Errorf("config %s must be a list of strings", field)
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, present, err := optionalString(entry, field)
		if err != nil {
			return nil, false, err
		}
		if present {
			out = append(out, s)
		}
	}
	return out, true, nil
}
