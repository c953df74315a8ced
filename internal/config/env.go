package config

import (
	"os"
	"strconv"
	"time"
)

// LoadFromEnv loads configuration from environment variables
// Environment variables override file and default values
func LoadFromEnv(cfg *Config) {
	if level := os.Getenv("CLAUDE_SESSIONS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if file := os.Getenv("CLAUDE_SESSIONS_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}

	if timeout := os.Getenv("CLAUDE_SESSIONS_TIMEOUT"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			cfg.Detect.Timeout = time.Duration(seconds) * time.Second
		}
	}

	if history := os.Getenv("CLAUDE_SESSIONS_HISTORY"); history != "" {
		cfg.History.Path = history
	}
}
