// Package main is a PTY host that drives a vtengine.Engine and renders it
// with bubbletea/lipgloss, demonstrating the engine as an embedder would
// use it.
package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the demo host's user-configurable settings. It has no
// bearing on the engine itself, which persists no state of its own.
type Config struct {
	// Shell is the command spawned under the PTY. Empty means $SHELL.
	Shell string `yaml:"shell"`

	// Theme names one of the two built-in palettes ("dark" or "light").
	// Rendering does not use it: cells are painted with the colors the
	// engine's snapshot resolves.
	Theme string `yaml:"theme"`

	// ScrollbackLines bounds the engine's scrollback.
	ScrollbackLines int `yaml:"scrollback_lines"`

	// Rows and Cols size the initial PTY/grid before the terminal
	// window reports its real size.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Shell:           "",
		Theme:           "dark",
		ScrollbackLines: 5000,
		Rows:            24,
		Cols:            80,
	}
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtdemo.yaml")
}

// LoadConfig reads ~/.vtdemo.yaml, merging it over the defaults. If the
// file doesn't exist yet, it writes one out for future editing.
func LoadConfig() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		writeDefaultConfig(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}
	if cfg.Rows < 1 {
		cfg.Rows = 24
	}
	if cfg.Cols < 1 {
		cfg.Cols = 80
	}
	validThemes := map[string]bool{"dark": true, "light": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	return cfg
}

func writeDefaultConfig(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# vtdemo configuration\n# Edit this file to customize the PTY host.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
