package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults, optionally loaded from a YAML file.
type Config struct {
	DB     string       `yaml:"db"`
	Store  string       `yaml:"store"`
	Cookie CookieConfig `yaml:"cookie"`
}

// CookieConfig holds the attribute defaults used by the cookie commands.
type CookieConfig struct {
	Path     string `yaml:"path"`
	Domain   string `yaml:"domain"`
	Secure   bool   `yaml:"secure"`
	SameSite string `yaml:"samesite"`
	Prefix   string `yaml:"prefix"`
}

// loadConfig returns built-in defaults overlaid with the YAML file at path,
// when one is given.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		DB:    DefaultDBPath,
		Store: "default",
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.DB == "" {
		cfg.DB = DefaultDBPath
	}
	if cfg.Store == "" {
		cfg.Store = "default"
	}
	return cfg, nil
}
