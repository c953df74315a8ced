package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.Detect.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\ndetect:\n  timeout: 10s\nhistory:\n  path: /tmp/h.jsonl\n"), 0o644))

	cfg := Default()
	require.NoError(t, LoadFile(cfg, path))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Detect.Timeout)
	assert.Equal(t, "/tmp/h.jsonl", cfg.History.Path)
}

func TestLoadFileTimeoutForms(t *testing.T) {
	testCases := []struct {
		description string
		yaml        string
		expect      time.Duration
		expectErr   bool
	}{
		{description: "duration string", yaml: "detect:\n  timeout: 7s\n", expect: 7 * time.Second},
		{description: "bare integer is seconds", yaml: "detect:\n  timeout: 5\n", expect: 5 * time.Second},
		{description: "absent keeps default", yaml: "log:\n  level: warn\n", expect: 5 * time.Second},
		{description: "garbage", yaml: "detect:\n  timeout: soon\n", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			cfg := Default()
			err := LoadFile(cfg, path)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, cfg.Detect.Timeout)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "claude-sessions", "config.yaml"), DefaultPath())
}

func TestLoadFileMissingIsIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, LoadFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, Default().Detect, cfg.Detect)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o644))
	assert.Error(t, LoadFile(Default(), path))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLAUDE_SESSIONS_LOG_LEVEL", "warn")
	t.Setenv("CLAUDE_SESSIONS_LOG_FILE", "/tmp/cs.log")
	t.Setenv("CLAUDE_SESSIONS_TIMEOUT", "3")
	t.Setenv("CLAUDE_SESSIONS_HISTORY", "/tmp/history.jsonl")

	cfg, err := New("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Equal(t, "/tmp/cs.log", cfg.Log.File)
	assert.Equal(t, 3*time.Second, cfg.Detect.Timeout)
	assert.Equal(t, "/tmp/history.jsonl", cfg.History.Path)
}

func TestLoadFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("CLAUDE_SESSIONS_TIMEOUT", "soon")
	cfg := Default()
	LoadFromEnv(cfg)
	assert.Equal(t, 5*time.Second, cfg.Detect.Timeout)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "default", mutate: func(c *Config) {}},
		{description: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, expectErr: true},
		{description: "timeout too small", mutate: func(c *Config) { c.Detect.Timeout = time.Millisecond }, expectErr: true},
		{description: "timeout too large", mutate: func(c *Config) { c.Detect.Timeout = time.Hour }, expectErr: true},
		{description: "upper bound", mutate: func(c *Config) { c.Detect.Timeout = MaxDetectTimeout }},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
