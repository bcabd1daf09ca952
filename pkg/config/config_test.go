package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvInvalidPause, EnvLog, EnvLogFile, EnvLogLevel} {
		k := k
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InvalidPause != time.Second {
		t.Fatalf("expected 1s pause, got %v", cfg.InvalidPause)
	}
	if cfg.LogEnabled || cfg.LogFile != "" {
		t.Fatalf("expected logging disabled, got %+v", cfg)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.env")
	data := "# wordgrade\nWORDGRADE_INVALID_PAUSE=250ms\nWORDGRADE_LOG=1\nWORDGRADE_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InvalidPause != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.InvalidPause)
	}
	if !cfg.LogEnabled || cfg.LogFile != filepath.Join(".", DefaultLogFile) {
		t.Fatalf("expected default log file, got %+v", cfg)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.env")
	if err := os.WriteFile(path, []byte("WORDGRADE_INVALID_PAUSE=5s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvInvalidPause, "0s")
	t.Setenv(EnvLogFile, "custom.log")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InvalidPause != 0 {
		t.Fatalf("expected env pause 0, got %v", cfg.InvalidPause)
	}
	if !cfg.LogEnabled || cfg.LogFile != "custom.log" {
		t.Fatalf("expected logging to custom.log, got %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvInvalidPause, "soon")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for bad duration")
	}
	t.Setenv(EnvInvalidPause, "-1s")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for negative duration")
	}
	t.Setenv(EnvInvalidPause, "")
	t.Setenv(EnvLogLevel, "loud")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for bad log level")
	}
}

func TestLogDisabledValues(t *testing.T) {
	clearEnv(t)
	for _, v := range []string{"0", "false"} {
		t.Setenv(EnvLog, v)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.LogEnabled {
			t.Fatalf("expected %s=%s to keep logging off", EnvLog, v)
		}
	}
}
