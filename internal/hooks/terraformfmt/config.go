package terraformfmt

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional configuration file in the
// repository root.
const DefaultConfigFile = ".terraform-fmt.yml"

// Recognized hook configuration keys.
const (
	keyTFPath  = "tf-path"
	keyNoColor = "no-color"
)

// Config is the hook configuration. The zero value is the default.
type Config struct {
	// TFPath is an explicit path to the terraform (or tofu) binary.
	TFPath string `yaml:"tf_path,omitempty"`
	// NoColor always passes -no-color to terraform fmt.
	NoColor bool `yaml:"no_color,omitempty"`
}

// LoadConfig loads the configuration from the specified directory. A missing
// file yields the default configuration.
func LoadConfig(repoPath string) (*Config, error) {
	configPath := filepath.Join(repoPath, DefaultConfigFile)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &config, nil
}

// ApplyHookConfig applies --hook-config entries on top of the configuration.
// Entries have the form "--key=value" or "key=value"; later entries win.
// Unknown keys are ignored.
func (c *Config) ApplyHookConfig(entries []string, logger *slog.Logger) error {
	for _, entry := range entries {
		key, value, err := parseHookConfigEntry(entry)
		if err != nil {
			return err
		}

		switch key {
		case keyTFPath:
			c.TFPath = value

		case keyNoColor:
			noColor, parseErr := strconv.ParseBool(value)
			if parseErr != nil {
				return fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidHookConfig, key, value)
			}

			c.NoColor = noColor

		default:
			logger.Debug("ignoring unknown hook config key", "key", key)
		}
	}

	return nil
}

func parseHookConfigEntry(entry string) (key string, value string, err error) {
	entry = strings.TrimSpace(entry)
	entry = strings.TrimSuffix(entry, ";")

	key, value, found := strings.Cut(entry, "=")
	key = strings.TrimLeft(strings.TrimSpace(key), "-")
	key = strings.ReplaceAll(strings.ToLower(key), "_", "-")
	if !found || key == "" {
		return "", "", fmt.Errorf("%w: %q, expected --key=value", ErrInvalidHookConfig, entry)
	}

	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"'`)

	return key, value, nil
}

// findRepoRoot returns the worktree root of the repository containing dir,
// or dir itself if it is not inside a repository.
func findRepoRoot(dir string, logger *slog.Logger) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debug("not inside a git repository, using working directory", "dir", dir, "error", err)
		return dir
	}

	worktree, err := repo.Worktree()
	if err != nil {
		logger.Debug("repository has no worktree, using working directory", "dir", dir, "error", err)
		return dir
	}

	return worktree.Filesystem.Root()
}
