package terraformfmt

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// ColorEnvVar is set by pre-commit to tell hooks whether to use color.
	ColorEnvVar = "PRE_COMMIT_COLOR"
	colorNever  = "never"
)

var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ParseEnvVars parses KEY=VALUE entries. Surrounding double quotes are
// stripped from the value. Later entries for the same key win.
func ParseEnvVars(entries []string) (map[string]string, error) {
	envs := make(map[string]string, len(entries))

	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q, expected KEY=VALUE", ErrInvalidEnvVar, entry)
		}

		envs[key] = strings.Trim(value, `"`)
	}

	return envs, nil
}

// EnvironToMap converts an os.Environ style list into a map. Entries without
// a key are dropped.
func EnvironToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue
		}

		env[key] = value
	}

	return env
}

// MapToEnviron converts env into an os.Environ style list sorted by key.
func MapToEnviron(env map[string]string) []string {
	environ := make([]string, 0, len(env))
	for key, value := range env {
		environ = append(environ, key+"="+value)
	}

	sort.Strings(environ)

	return environ
}

// MergeEnv returns a new map holding inherited overlaid with overrides.
// Neither input is modified.
func MergeEnv(inherited map[string]string, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(inherited)+len(overrides))

	for key, value := range inherited {
		merged[key] = value
	}

	for key, value := range overrides {
		merged[key] = value
	}

	return merged
}

// expandEnvRefs replaces ${NAME} references in args with values from env.
// Unknown names expand to the empty string. Bare $NAME is left untouched.
func expandEnvRefs(args []string, env map[string]string) []string {
	expanded := make([]string, 0, len(args))

	for _, arg := range args {
		expanded = append(expanded, envRefPattern.ReplaceAllStringFunc(arg, func(ref string) string {
			name := envRefPattern.FindStringSubmatch(ref)[1]
			return env[name]
		}))
	}

	return expanded
}
