package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// FindFile locates the YAML settings file.
//
// Returns userValue as-is when set. Else the first existing candidate among
// standard locations, or empty when none exists.
func FindFile(userValue string) (configpath string) {
	if userValue != "" {
		return userValue
	}

	slog.Debug("Searching settings file in standard locations.")
	home, _ := os.UserHomeDir()
	candidates := []string{
		"./pgpriv.yml",
		"./pgpriv.yaml",
		path.Join(home, "/.config/pgpriv.yml"),
		path.Join(home, "/.config/pgpriv.yaml"),
		"/etc/pgpriv.yml",
		"/etc/pgpriv.yaml",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found settings file.", "path", candidate)
			return candidate
		}
		slog.Debug("Ignoring settings file.", "path", candidate, "error", err)
	}

	return ""
}

// Load reads the YAML settings file as a flat map for the koanf stack.
//
// Top level must be a mapping. An empty path yields an empty map, not an
// error: the settings file is optional.
func Load(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	slog.Debug("Loading YAML settings.", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("YAML error: %w", err)
	}
	return values, nil
}
