package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// Config holds user preferences for the detail panel.
type Config struct {
	Workspace string `yaml:"workspace"`
	Product   string `yaml:"product"`
	Theme     string `yaml:"theme"` // classic | neon | mono
	Color     string `yaml:"color"` // auto | always | never
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`

	// Optional overrides for the estimate scale and status table, in
	// display order.
	Scores   []ScoreEntry  `yaml:"scores"`
	Statuses []StatusEntry `yaml:"statuses"`
}

type ScoreEntry struct {
	Key    string `yaml:"key"`
	Points int    `yaml:"points"`
}

type StatusEntry struct {
	Key    string `yaml:"key"`
	Status string `yaml:"status"`
}

func defaults() *Config {
	return &Config{
		Theme:    "classic",
		Color:    "auto",
		LogLevel: "info",
	}
}

// Load reads the config at path. With an empty path the default locations
// are tried; when none exists the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		for _, c := range candidates() {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Workspace = expandHome(cfg.Workspace)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

func candidates() []string {
	return []string{
		expandHome("~/.config/itemdetail/config.yaml"),
		"./itemdetail.yaml",
	}
}

// ScoreTable is the configured estimate scale, or the default one.
func (c *Config) ScoreTable() model.Table[int] {
	if len(c.Scores) == 0 {
		return model.ScoreMap
	}
	t := make(model.Table[int], 0, len(c.Scores))
	for _, s := range c.Scores {
		t = append(t, model.Entry[int]{Key: s.Key, Value: s.Points})
	}
	return t
}

// StatusTable is the configured status table, or the default one.
func (c *Config) StatusTable() model.Table[string] {
	if len(c.Statuses) == 0 {
		return model.StatusMap
	}
	t := make(model.Table[string], 0, len(c.Statuses))
	for _, s := range c.Statuses {
		t = append(t, model.Entry[string]{Key: s.Key, Value: s.Status})
	}
	return t
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
