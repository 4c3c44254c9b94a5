package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Radiosity.Variant != VariantAnalytic && c.Radiosity.Variant != VariantHemicube {
		return fmt.Errorf("unknown calculator variant %q", c.Radiosity.Variant)
	}
	if c.Radiosity.Subdivision < 2 || c.Radiosity.Subdivision%2 != 0 {
		return fmt.Errorf("subdivision must be a positive even number, got %d", c.Radiosity.Subdivision)
	}
	if c.Radiosity.Resolution < 2 || c.Radiosity.Resolution%2 != 0 {
		return fmt.Errorf("hemicube resolution must be a positive even number, got %d", c.Radiosity.Resolution)
	}
	if c.Radiosity.ConvergenceTarget <= 0 {
		return fmt.Errorf("convergence target must be positive, got %v", c.Radiosity.ConvergenceTarget)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "Radiosity")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Radiosity")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "radiosity")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "radiosity")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
