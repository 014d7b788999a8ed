// Package config loads tmux-fragments configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (TMUX_FRAGMENTS_*), including a .env file in
//     the current directory
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .tmux-fragments.yaml in current directory
//  2. ~/.config/tmux-fragments/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all tmux-fragments configuration.
type Config struct {
	// Multiplexer
	TmuxBinary          string `yaml:"tmux_binary"`
	HistoryLimitDefault int    `yaml:"history_limit_default"`
	Shell               string `yaml:"shell"` // overrides $SHELL for sys fragments

	// LLM settings (ask command)
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int64  `yaml:"max_tokens"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		TmuxBinary:          "tmux",
		HistoryLimitDefault: 3000,
		Provider:            "anthropic",
		MaxTokens:           4096,
		LogLevel:            "warn",
	}
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		if err := cfg.mergeYAML(path, data); err != nil {
			return nil, err
		}
	}

	if err := mergeEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Call it after flag overrides are applied.
// The provider is not checked here; only the ask command uses it.
func (c *Config) Validate() error {
	if c.HistoryLimitDefault <= 0 {
		return fmt.Errorf("history_limit_default must be positive, got %d", c.HistoryLimitDefault)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (supported: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".tmux-fragments.yaml"); err == nil {
		return ".tmux-fragments.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "tmux-fragments", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeYAML parses a config file and applies its non-zero values.
func (c *Config) mergeYAML(path string, data []byte) error {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.ConfigFile = path
	mergeFile(c, &file)
	return nil
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.TmuxBinary != "" {
		cfg.TmuxBinary = file.TmuxBinary
	}
	if file.HistoryLimitDefault != 0 {
		cfg.HistoryLimitDefault = file.HistoryLimitDefault
	}
	if file.Shell != "" {
		cfg.Shell = file.Shell
	}
	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.MaxTokens > 0 {
		cfg.MaxTokens = file.MaxTokens
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("TMUX_FRAGMENTS_TMUX_BINARY"); v != "" {
		cfg.TmuxBinary = v
	}
	if v := getenv("TMUX_FRAGMENTS_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TMUX_FRAGMENTS_HISTORY_LIMIT %q: %w", v, err)
		}
		cfg.HistoryLimitDefault = n
	}
	if v := getenv("TMUX_FRAGMENTS_SHELL"); v != "" {
		cfg.Shell = v
	}
	if v := getenv("TMUX_FRAGMENTS_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := getenv("TMUX_FRAGMENTS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := getenv("TMUX_FRAGMENTS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("TMUX_FRAGMENTS_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := getenv("TMUX_FRAGMENTS_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TMUX_FRAGMENTS_MAX_TOKENS %q: %w", v, err)
		}
		cfg.MaxTokens = n
	}
	if v := getenv("TMUX_FRAGMENTS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
	return nil
}

// ResolveAPIKey fills an empty APIKey from the provider's own variable
// (ANTHROPIC_API_KEY, OPENAI_API_KEY). It runs after flag overrides so that
// --provider picks the matching key.
func (c *Config) ResolveAPIKey(getenv func(string) string) {
	if c.APIKey != "" {
		return
	}
	switch c.Provider {
	case "anthropic":
		c.APIKey = getenv("ANTHROPIC_API_KEY")
	case "openai":
		c.APIKey = getenv("OPENAI_API_KEY")
	}
}

// DefaultModel returns the model to use when none is configured.
func (c *Config) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == "openai" {
		return "gpt-4o-mini"
	}
	return "claude-sonnet-4-5"
}
