// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/spf13/viper"
)

// Classifier backends.
const (
	BackendArtifact = "artifact"
	BackendLLM      = "llm"
)

// Config is the desk's runtime configuration.
type Config struct {
	Logging    LoggingConfig
	Classifier ClassifierConfig
	Model      ModelConfig
	LLM        LLMConfig
	Sentiment  SentimentConfig
}

// LoggingConfig controls the global slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ClassifierConfig selects the classifier backend.
type ClassifierConfig struct {
	Backend string
}

// ModelConfig locates the trained model artifact.
type ModelConfig struct {
	Path      string
	Tokenizer string
	MaxLen    int
}

// LLMConfig configures the hosted model backend.
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// SentimentConfig locates the labelled tweet table.
type SentimentConfig struct {
	Path string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("classifier.backend", BackendArtifact)
	v.SetDefault("model.path", "categorization_model.json")
	v.SetDefault("model.tokenizer", "tokenizer.json")
	v.SetDefault("model.max_len", 50)
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("sentiment.path", "combined.csv")
}

// Load reads the configuration from v. It follows this precedence:
// 1. Viper configuration (config file, DESK_ env vars, bound flags)
// 2. Provider API key environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY)
// 3. Default values
// Relative file paths are resolved against the directory of the config
// file in use, if any.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	baseDir := ""
	if used := v.ConfigFileUsed(); used != "" {
		baseDir = filepath.Dir(used)
	}

	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Classifier: ClassifierConfig{
			Backend: strings.ToLower(v.GetString("classifier.backend")),
		},
		Model: ModelConfig{
			Path:      ResolvePath(baseDir, v.GetString("model.path")),
			Tokenizer: ResolvePath(baseDir, v.GetString("model.tokenizer")),
			MaxLen:    v.GetInt("model.max_len"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(v.GetString("llm.provider")),
			APIKey:   v.GetString("llm.api_key"),
			Model:    v.GetString("llm.model"),
			BaseURL:  v.GetString("llm.base_url"),
			Timeout:  v.GetDuration("llm.timeout"),
		},
		Sentiment: SentimentConfig{
			Path: ResolvePath(baseDir, v.GetString("sentiment.path")),
		},
	}

	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of options.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Classifier.Backend {
	case BackendArtifact:
		if c.Model.MaxLen <= 0 {
			return fmt.Errorf("%w: model.max_len must be positive", common.ErrInvalidConfig)
		}
	case BackendLLM:
		if c.LLM.Provider != "openai" && c.LLM.Provider != "anthropic" {
			return fmt.Errorf("%w: unsupported llm.provider %q", common.ErrInvalidConfig, c.LLM.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown classifier.backend %q", common.ErrInvalidConfig, c.Classifier.Backend)
	}

	return nil
}
