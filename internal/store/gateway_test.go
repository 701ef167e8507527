package store

import (
	"errors"
	"testing"
)

func TestExtractDatabaseID_FromURL(t *testing.T) {
	t.Parallel()

	id, err := ExtractDatabaseID("https://www.notion.so/workspace/0123456789abcdef0123456789abcdef?v=aabbccddeeff00112233445566778899")
	if err != nil {
		t.Fatalf("expected locator to be valid, got error: %v", err)
	}
	if id != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("unexpected database id: %q", id)
	}
}

func TestExtractDatabaseID_RawID(t *testing.T) {
	t.Parallel()

	id, err := ExtractDatabaseID("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("expected raw id to be valid, got error: %v", err)
	}
	if id != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("unexpected database id: %q", id)
	}
}

func TestExtractDatabaseID_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ExtractDatabaseID("https://www.notion.so/workspace/not-a-database")
	if !errors.Is(err, ErrInvalidLocator) {
		t.Fatalf("expected ErrInvalidLocator, got: %v", err)
	}
}

func TestExtractDatabaseID_UppercaseHexRejected(t *testing.T) {
	t.Parallel()

	_, err := ExtractDatabaseID("0123456789ABCDEF0123456789ABCDEF")
	if !errors.Is(err, ErrInvalidLocator) {
		t.Fatalf("expected uppercase hex to be rejected, got: %v", err)
	}
}

func TestUpstreamError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &UpstreamError{Op: "query database", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Error() != "document store: query database: connection refused" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}
