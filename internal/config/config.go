package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/atelierpage/traduire/internal/language"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE" default:""`

	NotionToken string `envconfig:"NOTION_API_TOKEN" required:"true"`
	DeepLAPIKey string `envconfig:"DEEPL_API_KEY" required:"true"`

	TranslationProvider string `envconfig:"TRANSLATION_PROVIDER" default:"deepl"`
	TranslationWorkers  int    `envconfig:"TRANSLATION_WORKERS" default:"5"`
	TranslationRPM      int    `envconfig:"TRANSLATION_RPM" default:"0"`

	LocalEndpoint string `envconfig:"TRANSLATION_ENDPOINT" default:""`
	LocalModel    string `envconfig:"TRANSLATION_MODEL" default:""`

	DefaultSourceLang string `envconfig:"DEFAULT_SOURCE_LANG" default:"fr"`
	DefaultTargetLang string `envconfig:"DEFAULT_TARGET_LANG" default:"nl"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.NotionToken) == "" {
		return fmt.Errorf("NOTION_API_TOKEN is required")
	}
	if strings.TrimSpace(c.DeepLAPIKey) == "" {
		return fmt.Errorf("DEEPL_API_KEY is required")
	}
	if c.TranslationWorkers < 1 {
		return fmt.Errorf("TRANSLATION_WORKERS must be >= 1")
	}
	if c.TranslationRPM < 0 {
		return fmt.Errorf("TRANSLATION_RPM must be >= 0")
	}
	if !language.IsValidSource(c.DefaultSourceLang) {
		return fmt.Errorf("DEFAULT_SOURCE_LANG %q is not a supported source language", c.DefaultSourceLang)
	}
	if !language.IsValidTarget(c.DefaultTargetLang) {
		return fmt.Errorf("DEFAULT_TARGET_LANG %q is not a supported target language", c.DefaultTargetLang)
	}
	return nil
}
