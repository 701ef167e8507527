package pipeline

import (
	"context"

	"github.com/atelierpage/traduire/internal/store"
)

// RunAuto translates every page whose status marks it pending in the database
// named by locator. Pages are processed strictly sequentially; a per-page
// failure is recorded in its outcome and never stops the batch. Locator and
// listing failures abort before any page is touched.
func (s *Service) RunAuto(ctx context.Context, locator, fromLang, toLang string) ([]Outcome, error) {
	databaseID, err := store.ExtractDatabaseID(locator)
	if err != nil {
		return nil, err
	}

	pending, err := s.fetcher.FetchPending(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(pending))
	for _, summary := range pending {
		outcomes = append(outcomes, s.TranslatePage(ctx, summary.ID, fromLang, toLang))
	}

	s.logger.Info().
		Str("database_id", databaseID).
		Int("pages", len(outcomes)).
		Msg("auto translation batch finished")
	return outcomes, nil
}

// RunManual translates an explicit page-id list with the same sequential
// per-page isolation as RunAuto, skipping the fetch and filter step.
func (s *Service) RunManual(ctx context.Context, pageIDs []string, fromLang, toLang string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(pageIDs))
	for _, pageID := range pageIDs {
		outcomes = append(outcomes, s.TranslatePage(ctx, pageID, fromLang, toLang))
	}

	s.logger.Info().
		Int("pages", len(outcomes)).
		Msg("manual translation batch finished")
	return outcomes, nil
}
