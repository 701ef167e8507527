package httpapi

import (
	"errors"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atelierpage/traduire/internal/language"
	"github.com/atelierpage/traduire/internal/store"
	requestschema "github.com/atelierpage/traduire/schema"
)

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service": "traduire",
		"time":    time.Now().UTC(),
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"sources": language.SourceCodes(),
		"targets": language.TargetOptions(),
	})
}

func (s *Server) handleTranslate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return failValidation(c, "failed to read request body")
	}

	request, err := requestschema.ValidateTranslateRequest(body, s.opts.DefaultSourceLang, s.opts.DefaultTargetLang)
	if err != nil {
		return failValidation(c, err.Error())
	}

	ctx := c.Request().Context()

	switch request.Mode {
	case requestschema.ModeAuto:
		outcomes, err := s.runner.RunAuto(ctx, request.DatabaseURL, request.FromLang, request.ToLang)
		if err != nil {
			if errors.Is(err, store.ErrInvalidLocator) {
				return failValidation(c, "database_url does not contain a valid database id")
			}
			s.logger.Error().Err(err).Str("mode", request.Mode).Msg("auto translation batch failed")
			return internalError(c, "Translation batch failed")
		}
		return success(c, map[string]any{
			"mode":      request.Mode,
			"from_lang": request.FromLang,
			"to_lang":   request.ToLang,
			"results":   outcomes,
		})
	default:
		outcomes, err := s.runner.RunManual(ctx, request.PageIDs, request.FromLang, request.ToLang)
		if err != nil {
			s.logger.Error().Err(err).Str("mode", request.Mode).Msg("manual translation batch failed")
			return internalError(c, "Translation batch failed")
		}
		return success(c, map[string]any{
			"mode":      request.Mode,
			"from_lang": request.FromLang,
			"to_lang":   request.ToLang,
			"results":   outcomes,
		})
	}
}
