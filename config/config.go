// Package config loads the runtime configuration for the reelmind command
// from a YAML file, applying defaults and environment-based secrets. The
// library packages take explicit options and never read configuration
// themselves.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reelmind/reelmind/logging"
)

// Provider names accepted in the configuration file.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	// ProviderScripted runs a canned offline demo without any API key.
	ProviderScripted = "scripted"
)

// Config is the top-level runtime configuration.
type Config struct {
	// Provider selects the model backend: openai, anthropic or scripted.
	Provider string `yaml:"provider"`
	// Model is the provider-specific model identifier.
	Model string `yaml:"model"`
	// BaseURL overrides the API endpoint (OpenAI-compatible providers only).
	BaseURL string `yaml:"base_url"`
	// APIKeyEnv names the environment variable holding the API key. The key
	// itself never lives in the file.
	APIKeyEnv string `yaml:"api_key_env"`
	// Temperature for model sampling.
	Temperature float64 `yaml:"temperature"`
	// MaxSteps bounds model invocations per user turn.
	MaxSteps int `yaml:"max_steps"`

	Log Log `yaml:"log"`
}

// Log configures structured logging output.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Default returns the baseline configuration: scripted provider (runs
// offline), sixteen-step budget, text logs at info level.
func Default() Config {
	return Config{
		Provider:    ProviderScripted,
		Temperature: 0.7,
		MaxSteps:    16,
		Log:         Log{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path on top of defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values after loading.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderScripted:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be at least 1, got %d", c.MaxSteps)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", c.Temperature)
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// APIKey resolves the configured key environment variable, returning an
// empty string when unset.
func (c *Config) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// LogLevel maps the configured level string onto the logging enum.
func (c *Config) LogLevel() logging.LogLevel {
	return logging.ParseLevel(c.Log.Level)
}
