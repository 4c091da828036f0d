// Package config loads the berth deployment configuration.
//
// Config lives in berth.yaml, looked up in the working directory first
// and then at $XDG_CONFIG_HOME/berth/berth.yaml (defaults to
// ~/.config/berth/berth.yaml). An explicit --config path bypasses the
// lookup entirely.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config names the managed container and the image version and port it
// should run.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
}

// DefaultPath returns the XDG config file location, respecting
// XDG_CONFIG_HOME and falling back to ~/.config/berth/berth.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "berth", "berth.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "berth", "berth.yaml")
}

// Load reads the config from explicit when set, otherwise from the first
// existing lookup candidate. The result is not validated — callers apply
// flag overrides first, then call Validate.
func Load(explicit string) (*Config, error) {
	var candidates []string
	if strings.TrimSpace(explicit) != "" {
		candidates = []string{explicit}
	} else {
		candidates = []string{"berth.yaml", DefaultPath()}
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
		return &cfg, nil
	}

	return nil, fmt.Errorf("no config found (looked for %s)", strings.Join(candidates, ", "))
}

// Validate checks that the loaded values can form a desired spec.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("config: name is required")
	}
	if strings.ContainsAny(c.Name, " \t\n\r") {
		return fmt.Errorf("config: name %q must not contain whitespace", c.Name)
	}
	if strings.TrimSpace(c.Version) == "" {
		return fmt.Errorf("config: version is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range 1-65535", c.Port)
	}
	return nil
}
