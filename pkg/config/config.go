package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys understood by Load.
const (
	EnvInvalidPause = "WORDGRADE_INVALID_PAUSE"
	EnvLog          = "WORDGRADE_LOG"
	EnvLogFile      = "WORDGRADE_LOG_FILE"
	EnvLogLevel     = "WORDGRADE_LOG_LEVEL"
)

// DefaultLogFile is used when logging is enabled without a file.
const DefaultLogFile = "wordgrade.log"

// Config holds settings shared by the wordgrade commands.
type Config struct {
	// InvalidPause is how long the grade averager waits after reporting an
	// invalid grade.
	InvalidPause time.Duration
	LogEnabled   bool
	LogFile      string
	LogLevel     logrus.Level
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		InvalidPause: time.Second,
		LogLevel:     logrus.InfoLevel,
	}
}

// Load reads a dotenv file at path and applies it over the defaults. Process
// environment variables win over file values. A missing file is not an error.
func Load(path string) (*Config, error) {
	vars := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if m != nil {
			vars = m
		}
	}
	for _, k := range []string{EnvInvalidPause, EnvLog, EnvLogFile, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return fromVars(vars)
}

// LoadDefault loads ./.env, or ~/.wordgrade/config.env if that is absent.
func LoadDefault() (*Config, error) {
	paths := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".wordgrade", "config.env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Load("")
}

func fromVars(vars map[string]string) (*Config, error) {
	cfg := Default()
	if v := vars[EnvInvalidPause]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvInvalidPause, v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid %s %q: negative duration", EnvInvalidPause, v)
		}
		cfg.InvalidPause = d
	}
	if v := vars[EnvLog]; v != "" && v != "0" && v != "false" {
		cfg.LogEnabled = true
	}
	if v := vars[EnvLogFile]; v != "" {
		cfg.LogEnabled = true
		cfg.LogFile = v
	}
	if cfg.LogEnabled && cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(".", DefaultLogFile)
	}
	if v := vars[EnvLogLevel]; v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}
