package subprocess

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// environ supplies the inherited environment.
var environ = os.Environ

// colorEnv disables colored output in most tools.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

// mergeEnv overlays vars onto base, a list of KEY=value entries.
// Overlaid keys already in base keep their position; new keys are appended
// in key order after everything inherited.
func mergeEnv(base []string, vars map[string]string) []string {
	merged := make([]string, 0, len(base)+len(vars))
	placed := make(map[string]bool, len(vars))

	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		value, ok := vars[key]
		if !ok {
			merged = append(merged, entry)
			continue
		}
		if placed[key] {
			continue
		}
		placed[key] = true
		merged = append(merged, key+"="+value)
	}

	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if !placed[key] {
			merged = append(merged, key+"="+vars[key])
		}
	}

	return merged
}

// coerceEnv converts every value to a string, in key order so the first
// offending key reported is deterministic.
func coerceEnv(env map[string]any) (map[string]string, error) {
	vars := make(map[string]string, len(env))
	for _, key := range slices.Sorted(maps.Keys(env)) {
		value, err := asString(env[key], envField(key))
		if err != nil {
			return nil, err
		}
		vars[key] = value
	}
	return vars, nil
}

func envField(key string) string {
	return fmt.Sprintf("env[%q]", key)
}
