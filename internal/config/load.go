package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file. An empty path
// searches the standard locations; a missing file there is not an error.
// Flags are applied afterwards by the caller through Flags.Apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./perspectiveview.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PerspectiveView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PerspectiveView")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "perspectiveview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "perspectiveview")
	}
}

// unitKeys records which tile size keys a file spells out.
type unitKeys struct {
	Render struct {
		UnitX   *float64 `yaml:"unit_x"`
		UnitY   *float64 `yaml:"unit_y"`
		MapUnit *bool    `yaml:"map_unit"`
	} `yaml:"render"`
}

// loadFromFile merges a YAML file over the values already in cfg. A file that
// sets the unit without saying map_unit keeps its unit over the map's.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	var keys unitKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	r := keys.Render
	if (r.UnitX != nil || r.UnitY != nil) && r.MapUnit == nil {
		cfg.Render.MapUnit = false
	}
	return nil
}
