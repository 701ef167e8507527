// Package pipeline is the content-traversal-and-translation core: it walks a
// page's properties and child blocks, sends text runs through the dispatcher,
// writes translations back through the store gateway and stamps completion
// metadata, isolating failures per page.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelierpage/traduire/internal/doc"
	"github.com/atelierpage/traduire/internal/language"
	"github.com/atelierpage/traduire/internal/store"
)

// Translator is the dispatcher-side contract: one blocking text translation.
type Translator interface {
	Translate(ctx context.Context, text, fromLang, toLang string) (string, error)
}

// Outcome statuses.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcome is the per-page result of a translation run. Created once, never
// mutated; batches collect one per attempted page.
type Outcome struct {
	PageID       string `json:"page_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// BlockTranslationError wraps a provider failure with the offending block id.
type BlockTranslationError struct {
	BlockID string
	Cause   error
}

func (e *BlockTranslationError) Error() string {
	return fmt.Sprintf("translate block %s: %v", e.BlockID, e.Cause)
}

func (e *BlockTranslationError) Unwrap() error {
	return e.Cause
}

// Service runs the translation pipeline against one document store and one
// translation dispatcher.
type Service struct {
	gateway    store.Gateway
	fetcher    *store.Fetcher
	translator Translator
	logger     zerolog.Logger
}

func NewService(gateway store.Gateway, translator Translator, logger zerolog.Logger) *Service {
	return &Service{
		gateway:    gateway,
		fetcher:    store.NewFetcher(gateway, logger),
		translator: translator,
		logger:     logger,
	}
}

// TranslatePage translates one page's properties and child blocks, then
// stamps its status and language metadata. Failures never propagate: they are
// captured in the returned Outcome so a batch keeps going.
func (s *Service) TranslatePage(ctx context.Context, pageID, fromLang, toLang string) Outcome {
	if err := s.translatePage(ctx, pageID, fromLang, toLang); err != nil {
		s.logger.Error().Err(err).Str("page_id", pageID).Msg("page translation failed")
		return Outcome{PageID: pageID, Status: OutcomeError, ErrorMessage: err.Error()}
	}
	return Outcome{PageID: pageID, Status: OutcomeSuccess}
}

func (s *Service) translatePage(ctx context.Context, pageID, fromLang, toLang string) error {
	page, err := s.gateway.GetPage(ctx, pageID)
	if err != nil {
		return err
	}

	staged := make(map[string]doc.Property)
	for name, property := range page.Properties {
		if !property.Kind.Translatable() || len(property.Runs) == 0 {
			continue
		}
		runs, mutated, err := s.translateRuns(ctx, property.Runs, fromLang, toLang)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		if !mutated {
			continue
		}
		staged[name] = doc.Property{Kind: property.Kind, Runs: runs}
	}

	if len(staged) > 0 {
		if err := s.gateway.UpdatePageProperties(ctx, pageID, staged); err != nil {
			return err
		}
		s.logger.Info().Str("page_id", pageID).Int("properties", len(staged)).Msg("page properties translated")
	} else {
		s.logger.Warn().Str("page_id", pageID).Msg("no translatable properties found")
	}

	blocks, err := s.gateway.ListChildBlocks(ctx, pageID)
	if err != nil {
		return err
	}
	for _, block := range blocks {
		translated, err := s.TranslateBlock(ctx, block, fromLang, toLang)
		if err != nil {
			return err
		}
		if translated == nil || !translated.HasText() {
			continue
		}
		if err := s.gateway.UpdateBlock(ctx, *translated); err != nil {
			return err
		}
	}

	return s.gateway.UpdatePageProperties(ctx, pageID, map[string]doc.Property{
		doc.PropertyNameStatus:   {Kind: doc.PropertyStatus, Value: doc.StatusTranslated},
		doc.PropertyNameLanguage: {Kind: doc.PropertySelect, Value: language.DisplayName(toLang)},
	})
}

// TranslateBlock translates every text run of a block in run order. Returns
// nil for block kinds outside the translatable set, leaving the original
// untouched. A translatable block with no runs comes back unchanged.
func (s *Service) TranslateBlock(ctx context.Context, block doc.Block, fromLang, toLang string) (*doc.Block, error) {
	if !block.Kind.Translatable() {
		return nil, nil
	}

	runs, _, err := s.translateRuns(ctx, block.Runs, fromLang, toLang)
	if err != nil {
		return nil, &BlockTranslationError{BlockID: block.ID, Cause: err}
	}

	translated := block
	translated.Runs = runs
	return &translated, nil
}

// translateRuns translates text runs one at a time, each awaited before the
// next, preserving run order and count. Non-text and empty runs pass through.
func (s *Service) translateRuns(ctx context.Context, runs []doc.TextRun, fromLang, toLang string) ([]doc.TextRun, bool, error) {
	translated := make([]doc.TextRun, len(runs))
	copy(translated, runs)

	mutated := false
	for i, run := range translated {
		if run.Kind != doc.RunText || run.Content == "" {
			continue
		}
		content, err := s.translator.Translate(ctx, run.Content, fromLang, toLang)
		if err != nil {
			return nil, false, err
		}
		translated[i].Content = content
		mutated = true
	}
	return translated, mutated, nil
}
