package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	MinDetectTimeout = time.Second
	MaxDetectTimeout = 60 * time.Second
)

// Config holds the CLI configuration. The detector itself takes none.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Detect  DetectConfig  `yaml:"detect"`
	History HistoryConfig `yaml:"history"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr (or discard while the TUI runs)
}

// DetectConfig bounds a detection pass from the outside.
type DetectConfig struct {
	Timeout time.Duration `yaml:"timeout"` // "5s" or a bare number of seconds
}

// UnmarshalYAML reads timeout as a duration string, or as whole seconds when
// given a plain integer, matching CLAUDE_SESSIONS_TIMEOUT.
func (d *DetectConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Timeout yaml.Node `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Timeout.Kind == 0 {
		return nil
	}
	if raw.Timeout.Tag == "!!int" {
		seconds, err := strconv.Atoi(raw.Timeout.Value)
		if err != nil {
			return errors.Wrapf(err, "invalid detect timeout %q", raw.Timeout.Value)
		}
		d.Timeout = time.Duration(seconds) * time.Second
		return nil
	}
	timeout, err := time.ParseDuration(raw.Timeout.Value)
	if err != nil {
		return errors.Wrapf(err, "invalid detect timeout %q", raw.Timeout.Value)
	}
	d.Timeout = timeout
	return nil
}

// HistoryConfig points at the claude prompt history used for "last active".
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config with default values.
func Default() *Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".claude", "history.jsonl")
	}
	return &Config{
		Log:     LogConfig{Level: "info"},
		Detect:  DetectConfig{Timeout: 5 * time.Second},
		History: HistoryConfig{Path: history},
	}
}

// DefaultPath returns ~/.config/claude-sessions/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "claude-sessions", "config.yaml")
}

// LoadFile overlays values from a YAML file. A missing file is not an error.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config %s", path)
	}
	return nil
}

// New builds a Config from defaults, the config file at path and the environment.
func New(path string) (*Config, error) {
	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		return nil, err
	}
	LoadFromEnv(cfg)
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Detect.Timeout < MinDetectTimeout || c.Detect.Timeout > MaxDetectTimeout {
		return fmt.Errorf("detect timeout must be between %v and %v, got %v",
			MinDetectTimeout, MaxDetectTimeout, c.Detect.Timeout)
	}
	return nil
}

// SlogLevel returns the configured level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf("unknown log level %q", s)
}
