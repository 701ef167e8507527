// Package requestschema validates translate-request payloads against an
// embedded JSON Schema plus the mode-specific semantic rules.
package requestschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/atelierpage/traduire/internal/language"
)

//go:embed translate_request.schema.json
var translateRequestSchemaJSON string

// Modes of a translate request.
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

// TranslateRequest is a validated, normalized translate request.
type TranslateRequest struct {
	DatabaseURL string   `json:"database_url,omitempty"`
	PageIDs     []string `json:"page_ids,omitempty"`
	FromLang    string   `json:"from_lang,omitempty"`
	ToLang      string   `json:"to_lang,omitempty"`
	Mode        string   `json:"mode,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateTranslateRequest parses and validates one request body. Missing
// mode and languages take the supplied defaults before semantic validation.
func ValidateTranslateRequest(payload json.RawMessage, defaultFrom, defaultTo string) (*TranslateRequest, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize payload JSON: %w", err)
	}

	var request TranslateRequest
	if err := json.Unmarshal(normalized, &request); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	applyDefaults(&request, defaultFrom, defaultTo)
	if err := validateSemantics(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

func applyDefaults(request *TranslateRequest, defaultFrom, defaultTo string) {
	if strings.TrimSpace(request.Mode) == "" {
		request.Mode = ModeAuto
	}
	if strings.TrimSpace(request.FromLang) == "" {
		request.FromLang = defaultFrom
	}
	if strings.TrimSpace(request.ToLang) == "" {
		request.ToLang = defaultTo
	}
	request.FromLang = language.Normalize(request.FromLang)
	request.ToLang = language.Normalize(request.ToLang)
}

func validateSemantics(request *TranslateRequest) error {
	if request == nil {
		return fmt.Errorf("payload is nil")
	}

	switch request.Mode {
	case ModeAuto:
		if strings.TrimSpace(request.DatabaseURL) == "" {
			return fmt.Errorf("database_url is required for auto mode")
		}
	case ModeManual:
		if len(request.PageIDs) == 0 {
			return fmt.Errorf("page_ids is required for manual mode")
		}
		for i, pageID := range request.PageIDs {
			if strings.TrimSpace(pageID) == "" {
				return fmt.Errorf("page_ids[%d] must not be empty", i)
			}
		}
	default:
		return fmt.Errorf("mode must be auto or manual")
	}

	if !language.IsValidSource(request.FromLang) {
		return fmt.Errorf("from_lang %q is not a supported source language", request.FromLang)
	}
	if !language.IsValidTarget(request.ToLang) {
		return fmt.Errorf("to_lang %q is not a supported target language", request.ToLang)
	}

	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		if err := compiler.AddResource("translate_request.schema.json", strings.NewReader(translateRequestSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("translate_request.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}

	return value, nil
}
