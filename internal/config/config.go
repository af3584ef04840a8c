// Package config holds the settings of the lvlquest runner: how many jobs run
// at once, how loudly to log, whether to stop at the first failure and which
// extra case files to load.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvParallel = "LVLQUEST_PARALLEL"
	EnvLogLevel = "LVLQUEST_LOG_LEVEL"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the on-disk shape of lvlquest.yaml.
type Config struct {
	// Parallelism bounds concurrently running jobs; 0 means one per CPU.
	Parallelism int `yaml:"parallelism"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// FailFast stops a run at the first failing case.
	FailFast bool `yaml:"fail_fast"`
	// CaseFiles are extra YAML case files merged over the embedded ones.
	CaseFiles []string `yaml:"case_files"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Parallelism: 0,
		LogLevel:    "info",
		FailFast:    false,
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error. Relative case files are resolved against
// the directory holding path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		dir := filepath.Dir(path)
		for i, f := range cfg.CaseFiles {
			if !filepath.IsAbs(f) {
				cfg.CaseFiles[i] = filepath.Join(dir, f)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadDotEnv copies variables from a dotenv file into the process
// environment without replacing ones already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv(EnvParallel)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvParallel, v)
		}
		c.Parallelism = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d is negative", ErrInvalidConfig, c.Parallelism)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, f := range c.CaseFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: empty case file path", ErrInvalidConfig)
		}
	}

	return nil
}

// Level parses LogLevel; an empty value means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
