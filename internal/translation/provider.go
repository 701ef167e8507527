// Package translation contains the translation backend: the provider
// contract, the named provider registry, the DeepL and local providers, and
// the bounded dispatcher that isolates blocking provider calls.
package translation

import (
	"context"
	"fmt"
)

// Provider translates free-form text between languages.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error)
	Name() string
	SupportedLanguages() []string
}

// TranslateRequest describes one translation request. SourceLang may be the
// "auto" sentinel or empty, leaving detection to the provider.
type TranslateRequest struct {
	Text       string
	SourceLang string
	TargetLang string
}

// TranslateResponse contains translated text and provider metadata.
type TranslateResponse struct {
	Text         string
	SourceLang   string
	TargetLang   string
	ProviderName string
	LatencyMs    int64
}

// ProviderError wraps a provider call failure (network, quota, unsupported
// language pair). Nothing retries these; callers decide whether the failure
// is fatal to the enclosing document.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("translation provider %s: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
