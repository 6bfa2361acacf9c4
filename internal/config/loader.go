package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a kitchen layout.
// Search order: customPath -> ~/.welldone/configs/<layout>.yaml ->
// ./configs/<layout>.yaml -> embedded default.
// Override files are applied on top of the embedded layout, so they only need
// the fields they change. The result is validated.
func Load(layout, customPath string) (KitchenConfig, error) {
	if layout == "" {
		layout = DefaultLayout
	}

	base, err := Builtin(layout)
	if err != nil && customPath == "" {
		return KitchenConfig{}, err
	}

	cfg := base
	switch {
	case customPath != "":
		data, readErr := os.ReadFile(customPath)
		if readErr != nil {
			return KitchenConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, readErr)
		}
		if parseErr := overlay(&cfg, data); parseErr != nil {
			return KitchenConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, parseErr)
		}
	default:
		for _, p := range searchPaths(layout) {
			data, readErr := os.ReadFile(p)
			if readErr != nil {
				continue
			}
			candidate := base
			if overlay(&candidate, data) == nil {
				cfg = candidate
				break
			}
		}
	}

	if cfg.Name == "" {
		cfg.Name = layout
	}
	if err := cfg.Validate(); err != nil {
		return KitchenConfig{}, err
	}
	return cfg, nil
}

// overlay decodes YAML over an existing config. Lists are replaced, not merged.
func overlay(cfg *KitchenConfig, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

// searchPaths lists the override locations for a layout, in priority order.
func searchPaths(layout string) []string {
	filename := layout + ".yaml"
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".welldone", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg KitchenConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode %q: %w", cfg.Name, err)
	}
	return data, nil
}
