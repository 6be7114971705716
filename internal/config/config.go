// Package config loads gcpmigrate's runtime configuration: pipeline
// timeouts/retry budgets, the optional LLM provider credentials, and
// logging options. Mirrors the teacher's split between a viper-backed CLI
// layer and a JSON-file ConfigManager for programmatic embedders.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is gcpmigrate's full runtime configuration.
type Config struct {
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	LLM      LLMConfig      `json:"llm" yaml:"llm"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

// PipelineConfig controls the Translation Pipeline's retry/timeout budget.
type PipelineConfig struct {
	// MaxLLMRetries is loaded and validated but is not passed to the
	// pipeline, whose bound on extra LLM refinement calls is fixed at two.
	MaxLLMRetries int `json:"max_llm_retries" yaml:"max_llm_retries"`
	// LLMTimeout bounds a single LLM call's wall-clock time.
	LLMTimeout time.Duration `json:"llm_timeout" yaml:"llm_timeout"`
	// FileBudget bounds one file's end-to-end pipeline time, including
	// retries.
	FileBudget time.Duration `json:"file_budget" yaml:"file_budget"`
}

// LLMConfig configures the optional LLM Refinement Adapter.
type LLMConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Provider    string `json:"provider" yaml:"provider"`
	APIKeyEnv   string `json:"api_key_env" yaml:"api_key_env"`
	Model       string `json:"model" yaml:"model"`
}

// LoggingConfig configures the observability/logger package.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MaxLLMRetries: 2,
			LLMTimeout:    90 * time.Second,
			FileBudget:    120 * time.Second,
		},
		LLM: LLMConfig{
			Enabled:   false,
			Provider:  "gemini",
			APIKeyEnv: "GEMINI_API_KEY",
			Model:     "gemini-2.5-flash",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// Manager loads, validates, and persists Config, matching the teacher's
// ConfigManager JSON load/save/validate contract for programmatic callers
// that don't go through the cobra/viper CLI layer.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager creates a Manager seeded with defaults.
func NewManager() *Manager {
	return &Manager{config: Default()}
}

// Load reads configuration from a JSON file, creating it with defaults if
// absent.
func (m *Manager) Load(path string) error {
	m.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m.config = &cfg
	return nil
}

// Save writes the current configuration to disk.
func (m *Manager) Save() error {
	if m.configPath == "" {
		return fmt.Errorf("no config path specified")
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config { return m.config }

func validate(cfg *Config) error {
	if cfg.Pipeline.MaxLLMRetries < 0 {
		return fmt.Errorf("invalid max_llm_retries: %d", cfg.Pipeline.MaxLLMRetries)
	}
	if cfg.Pipeline.LLMTimeout < 0 {
		return fmt.Errorf("invalid llm_timeout: %v", cfg.Pipeline.LLMTimeout)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}
	return nil
}

// LoadFromViper builds a Config from viper's merged view of defaults,
// an optional YAML file, and GCPMIGRATE_-prefixed environment overrides
// -- the CLI-level config layer described alongside the ConfigManager.
func LoadFromViper(v *viper.Viper, configFile string) (*Config, error) {
	cfg := Default()

	v.SetEnvPrefix("GCPMIGRATE")
	v.AutomaticEnv()

	v.SetDefault("pipeline.max_llm_retries", cfg.Pipeline.MaxLLMRetries)
	v.SetDefault("pipeline.llm_timeout", cfg.Pipeline.LLMTimeout)
	v.SetDefault("pipeline.file_budget", cfg.Pipeline.FileBudget)
	v.SetDefault("llm.enabled", cfg.LLM.Enabled)
	v.SetDefault("llm.provider", cfg.LLM.Provider)
	v.SetDefault("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.SetDefault("llm.model", cfg.LLM.Model)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.Pipeline.MaxLLMRetries = v.GetInt("pipeline.max_llm_retries")
	cfg.Pipeline.LLMTimeout = v.GetDuration("pipeline.llm_timeout")
	cfg.Pipeline.FileBudget = v.GetDuration("pipeline.file_budget")
	cfg.LLM.Enabled = v.GetBool("llm.enabled")
	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.APIKeyEnv = v.GetString("llm.api_key_env")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Format = v.GetString("logging.format")
	cfg.Logging.Output = v.GetString("logging.output")

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns the default on-disk config path, matching the
// teacher's GetConfigPath convention.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gcpmigrate", "config.json")
}
