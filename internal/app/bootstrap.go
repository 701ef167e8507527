package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/atelierpage/traduire/internal/config"
	"github.com/atelierpage/traduire/internal/logging"
	"github.com/atelierpage/traduire/internal/pipeline"
	"github.com/atelierpage/traduire/internal/store"
	"github.com/atelierpage/traduire/internal/translation"
)

// bootstrap loads configuration and assembles the translation pipeline with
// its process-lifetime clients.
func bootstrap() (*config.Config, zerolog.Logger, *pipeline.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("initialize logger: %w", err)
	}

	registry := translation.NewRegistry(cfg.TranslationProvider)
	if err := registry.Register(translation.NewDeepLProvider(cfg.DeepLAPIKey, cfg.TranslationRPM)); err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("register deepl provider: %w", err)
	}
	if strings.TrimSpace(cfg.LocalEndpoint) != "" {
		if err := registry.Register(translation.NewLocalProvider(cfg.LocalEndpoint, cfg.LocalModel)); err != nil {
			return nil, zerolog.Logger{}, nil, fmt.Errorf("register local provider: %w", err)
		}
	}

	provider, err := registry.Provider(cfg.TranslationProvider)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	dispatcher := translation.NewDispatcher(provider, cfg.TranslationWorkers)
	gateway := store.NewNotionGateway(cfg.NotionToken)
	service := pipeline.NewService(gateway, dispatcher, logger)

	logger.Info().
		Str("provider", provider.Name()).
		Int("workers", cfg.TranslationWorkers).
		Msg("translation pipeline ready")

	return cfg, logger, service, nil
}
