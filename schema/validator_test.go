package requestschema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidateTranslateRequest_AutoMode(t *testing.T) {
	payload := json.RawMessage(`{
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef",
		"from_lang":"fr",
		"to_lang":"nl",
		"mode":"auto"
	}`)

	request, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err != nil {
		t.Fatalf("expected payload to be valid, got error: %v", err)
	}

	if request.Mode != ModeAuto {
		t.Fatalf("expected auto mode, got %q", request.Mode)
	}
	if request.DatabaseURL == "" {
		t.Fatalf("expected database_url to be carried through")
	}
}

func TestValidateTranslateRequest_DefaultsApplied(t *testing.T) {
	payload := json.RawMessage(`{
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef"
	}`)

	request, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err != nil {
		t.Fatalf("expected payload to be valid, got error: %v", err)
	}

	if request.Mode != ModeAuto {
		t.Fatalf("expected mode to default to auto, got %q", request.Mode)
	}
	if request.FromLang != "fr" || request.ToLang != "nl" {
		t.Fatalf("expected default languages fr->nl, got %q -> %q", request.FromLang, request.ToLang)
	}
}

func TestValidateTranslateRequest_NormalizesLanguages(t *testing.T) {
	payload := json.RawMessage(`{
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef",
		"from_lang":"FR",
		"to_lang":"EN_GB"
	}`)

	request, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err != nil {
		t.Fatalf("expected payload to be valid, got error: %v", err)
	}

	if request.FromLang != "fr" {
		t.Fatalf("expected normalized from_lang, got %q", request.FromLang)
	}
	if request.ToLang != "en-gb" {
		t.Fatalf("expected normalized to_lang, got %q", request.ToLang)
	}
}

func TestValidateTranslateRequest_AutoRequiresDatabaseURL(t *testing.T) {
	payload := json.RawMessage(`{"mode":"auto"}`)

	_, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err == nil {
		t.Fatalf("expected auto mode without database_url to fail")
	}
	if !strings.Contains(err.Error(), "database_url is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTranslateRequest_ManualRequiresPageIDs(t *testing.T) {
	payload := json.RawMessage(`{"mode":"manual"}`)

	_, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err == nil {
		t.Fatalf("expected manual mode without page_ids to fail")
	}
	if !strings.Contains(err.Error(), "page_ids is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTranslateRequest_ManualMode(t *testing.T) {
	payload := json.RawMessage(`{
		"mode":"manual",
		"page_ids":["page-1","page-2"]
	}`)

	request, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err != nil {
		t.Fatalf("expected payload to be valid, got error: %v", err)
	}
	if len(request.PageIDs) != 2 {
		t.Fatalf("expected 2 page ids, got %v", request.PageIDs)
	}
}

func TestValidateTranslateRequest_UnknownMode(t *testing.T) {
	payload := json.RawMessage(`{
		"mode":"batch",
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef"
	}`)

	if _, err := ValidateTranslateRequest(payload, "fr", "nl"); err == nil {
		t.Fatalf("expected unknown mode to fail schema validation")
	}
}

func TestValidateTranslateRequest_UnknownField(t *testing.T) {
	payload := json.RawMessage(`{
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef",
		"glossary_id":"g-1"
	}`)

	if _, err := ValidateTranslateRequest(payload, "fr", "nl"); err == nil {
		t.Fatalf("expected unknown field to fail schema validation")
	}
}

func TestValidateTranslateRequest_UnsupportedTargetLanguage(t *testing.T) {
	payload := json.RawMessage(`{
		"database_url":"https://www.notion.so/workspace/0123456789abcdef0123456789abcdef",
		"to_lang":"xx"
	}`)

	_, err := ValidateTranslateRequest(payload, "fr", "nl")
	if err == nil {
		t.Fatalf("expected unsupported target language to fail")
	}
	if !strings.Contains(err.Error(), "not a supported target language") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTranslateRequest_TrailingContent(t *testing.T) {
	payload := json.RawMessage(`{"mode":"manual","page_ids":["p-1"]} extra`)

	if _, err := ValidateTranslateRequest(payload, "fr", "nl"); err == nil {
		t.Fatalf("expected trailing content to fail strict decoding")
	}
}
