package translation

import (
	"strings"
	"testing"
)

func TestRegistry_ResolvesByName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("deepl")
	if err := registry.Register(&stubProvider{name: "deepl"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if err := registry.Register(&stubProvider{name: "local"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	provider, err := registry.Provider("local")
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if provider.Name() != "local" {
		t.Fatalf("unexpected provider: %q", provider.Name())
	}
}

func TestRegistry_EmptyNameUsesDefault(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("local")
	if err := registry.Register(&stubProvider{name: "deepl"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if err := registry.Register(&stubProvider{name: "local"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	provider, err := registry.Provider("")
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if provider.Name() != "local" {
		t.Fatalf("expected default provider, got %q", provider.Name())
	}
}

func TestRegistry_BlankDefaultFallsBackToDeepL(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("  ")
	if registry.DefaultProvider() != DefaultProviderName {
		t.Fatalf("expected default provider %q, got %q", DefaultProviderName, registry.DefaultProvider())
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("deepl")
	if err := registry.Register(&stubProvider{name: "deepl"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	_, err := registry.Provider("google")
	if err == nil {
		t.Fatalf("expected unknown provider to fail resolution")
	}
	if !strings.Contains(err.Error(), "deepl") {
		t.Fatalf("expected available providers in error, got: %v", err)
	}
}

func TestRegistry_NoProvidersRegistered(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("deepl")
	if _, err := registry.Provider(""); err == nil {
		t.Fatalf("expected resolution to fail with no providers registered")
	}
}
