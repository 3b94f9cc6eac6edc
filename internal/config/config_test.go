package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetFilter(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default filter",
			config:   &Config{},
			expected: "",
		},
		{
			name:     "from environment",
			config:   &Config{Filter: "Array*"},
			expected: "Array*",
		},
		{
			name: "flag wins",
			config: &Config{
				Filter: "Array*",
				Flags:  Flags{Filter: "*Integer*"},
			},
			expected: "*Integer*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetFilter()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		}
	}

	t.Run("overrides defaults", func(t *testing.T) {
		cfg := New()
		err := cfg.ApplyEnv(env(map[string]string{
			EnvNoColor:   "true",
			EnvProgress:  "1",
			EnvLogLevel:  "DEBUG",
			EnvLogFormat: "json",
			EnvFilter:    "Array",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UseColor() {
			t.Error("expected color to be disabled")
		}
		if !cfg.ShowProgress() {
			t.Error("expected progress to be enabled")
		}
		if cfg.GetLogLevel() != "debug" {
			t.Errorf("expected log level debug, got %s", cfg.GetLogLevel())
		}
		if cfg.GetLogFormat() != "json" {
			t.Errorf("expected log format json, got %s", cfg.GetLogFormat())
		}
		if cfg.GetFilter() != "Array" {
			t.Errorf("expected filter Array, got %s", cfg.GetFilter())
		}
	})

	t.Run("NO_COLOR disables color", func(t *testing.T) {
		cfg := New()
		if err := cfg.ApplyEnv(env(map[string]string{EnvStdNoColor: ""})); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UseColor() {
			t.Error("expected color to be disabled")
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		invalid := []map[string]string{
			{EnvNoColor: "sometimes"},
			{EnvProgress: "maybe"},
			{EnvLogLevel: "verbose"},
			{EnvLogFormat: "xml"},
		}
		for _, vars := range invalid {
			if err := New().ApplyEnv(env(vars)); err == nil {
				t.Errorf("expected error for %v", vars)
			}
		}
	})
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "GOSPEC_LOG_LEVEL=info\nGOSPEC_FILTER=*Integer*\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv(EnvFilter, "Array")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("expected log level from file, got %s", cfg.GetLogLevel())
	}
	if cfg.GetFilter() != "Array" {
		t.Errorf("expected environment to win over file, got %s", cfg.GetFilter())
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetLogLevel() != DefaultLogLevel {
		t.Errorf("expected default log level, got %s", cfg.GetLogLevel())
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.EnvFile != DefaultEnvFile {
		t.Errorf("expected EnvFile %s, got %s", DefaultEnvFile, cfg.EnvFile)
	}

	if !cfg.UseColor() {
		t.Error("expected color by default")
	}

	if cfg.ShowProgress() {
		t.Error("expected no progress bar by default")
	}
}
