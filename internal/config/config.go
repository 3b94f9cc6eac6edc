package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Environment file loaded before reading variables
	EnvFile string

	// Output settings
	NoColor  bool
	Progress bool

	// Logging settings
	LogLevel  string
	LogFormat string

	// Suite selection
	Filter string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter    string
	Progress  bool
	NoColor   bool
	LogLevel  string
	LogFormat string
	Examples  bool
	Summary   bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		EnvFile:   DefaultEnvFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load creates a config from defaults, the dotenv file at envFile and the
// process environment. Variables already set in the environment win over
// the file, as with godotenv.Load.
func Load(envFile string) (*Config, error) {
	cfg := New()
	if envFile != "" {
		cfg.EnvFile = envFile
	}

	fileVars, err := godotenv.Read(cfg.EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", cfg.EnvFile, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if _, ok := lookup(EnvStdNoColor); ok {
		c.NoColor = true
	}
	if v, ok := lookup(EnvNoColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvNoColor, err)
		}
		c.NoColor = b
	}
	if v, ok := lookup(EnvProgress); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvProgress, err)
		}
		c.Progress = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvFilter); ok {
		c.Filter = v
	}
	return c.Validate()
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if !slices.Contains(ValidLogLevels, c.GetLogLevel()) {
		return fmt.Errorf("invalid log level %q, expected one of %s", c.GetLogLevel(), strings.Join(ValidLogLevels, ", "))
	}
	if f := c.GetLogFormat(); f != "text" && f != "json" {
		return fmt.Errorf("invalid log format %q, expected text or json", f)
	}
	return nil
}

// GetFilter returns the suite filter, using the flag if provided
func (c *Config) GetFilter() string {
	if c.Flags.Filter != "" {
		return c.Flags.Filter
	}
	return c.Filter
}

// UseColor reports whether console output is colored.
func (c *Config) UseColor() bool {
	return !c.NoColor && !c.Flags.NoColor
}

// ShowProgress reports whether the progress bar is shown.
func (c *Config) ShowProgress() bool {
	return c.Progress || c.Flags.Progress
}

// GetLogLevel returns the log level, using the flag if provided
func (c *Config) GetLogLevel() string {
	if c.Flags.LogLevel != "" {
		return strings.ToLower(c.Flags.LogLevel)
	}
	return c.LogLevel
}

// GetLogFormat returns the log format, using the flag if provided
func (c *Config) GetLogFormat() string {
	if c.Flags.LogFormat != "" {
		return strings.ToLower(c.Flags.LogFormat)
	}
	return c.LogFormat
}
