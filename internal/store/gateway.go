// Package store is the document-store boundary: the gateway contract the
// translation pipeline depends on, its Notion-backed implementation, and the
// paginated listing fetcher.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/atelierpage/traduire/internal/doc"
)

// ErrInvalidLocator reports a database locator with no recognizable id.
var ErrInvalidLocator = errors.New("locator does not contain a database id")

var databaseIDPattern = regexp.MustCompile(`[a-f0-9]{32}`)

// ExtractDatabaseID pulls the 32-hex-character database id out of a Notion
// database URL or raw locator string.
func ExtractDatabaseID(locator string) (string, error) {
	match := databaseIDPattern.FindString(locator)
	if match == "" {
		return "", ErrInvalidLocator
	}
	return match, nil
}

// UpstreamError wraps a document-store failure with the operation that hit it.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("document store: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// QueryPage is one page of a database listing.
type QueryPage struct {
	Summaries  []doc.PageSummary
	HasMore    bool
	NextCursor string
}

// Gateway is the document-store contract consumed by the pipeline. The Notion
// client behind it is replaceable; tests use in-memory stubs.
type Gateway interface {
	QueryDatabase(ctx context.Context, databaseID, cursor string) (QueryPage, error)
	GetPage(ctx context.Context, pageID string) (doc.Page, error)
	UpdatePageProperties(ctx context.Context, pageID string, properties map[string]doc.Property) error
	ListChildBlocks(ctx context.Context, pageID string) ([]doc.Block, error)
	UpdateBlock(ctx context.Context, block doc.Block) error
}
