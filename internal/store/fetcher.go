package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelierpage/traduire/internal/doc"
)

// Fetcher drains cursor-based database listings into full summary sets.
type Fetcher struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewFetcher(gateway Gateway, logger zerolog.Logger) *Fetcher {
	return &Fetcher{gateway: gateway, logger: logger}
}

// FetchAll lists every page summary in the database, following the listing
// cursor until the store reports no more pages. Any page request failure
// aborts the whole fetch; no partial result is returned.
func (f *Fetcher) FetchAll(ctx context.Context, databaseID string) ([]doc.PageSummary, error) {
	var summaries []doc.PageSummary
	cursor := ""
	for {
		page, err := f.gateway.QueryDatabase(ctx, databaseID, cursor)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, page.Summaries...)
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}

	f.logger.Info().
		Str("database_id", databaseID).
		Int("pages", len(summaries)).
		Msg("database listing fetched")
	return summaries, nil
}

// FetchPending returns the subset of FetchAll whose status property equals the
// pending-translation literal, in upstream listing order. Summaries without a
// status property are excluded.
func (f *Fetcher) FetchPending(ctx context.Context, databaseID string) ([]doc.PageSummary, error) {
	all, err := f.FetchAll(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	pending := make([]doc.PageSummary, 0, len(all))
	for _, summary := range all {
		if summary.Status == doc.StatusPending {
			pending = append(pending, summary)
		}
	}

	f.logger.Info().
		Str("database_id", databaseID).
		Int("pending", len(pending)).
		Msg("pages awaiting translation")
	return pending, nil
}
