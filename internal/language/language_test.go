package language

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"FR", "fr"},
		{" en_GB ", "en-gb"},
		{"pt-BR", "pt-br"},
		{"", ""},
		{"fr1", ""},
		{"fr fr", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestIsValidSourceAcceptsAutoSentinel(t *testing.T) {
	t.Parallel()

	if !IsValidSource("auto") {
		t.Fatalf("expected auto to be a valid source")
	}
	if !IsValidSource("fr") {
		t.Fatalf("expected fr to be a valid source")
	}
	if IsValidSource("en-gb") {
		t.Fatalf("regional variants are target-only codes")
	}
	if IsValidSource("xx") {
		t.Fatalf("expected xx to be rejected")
	}
}

func TestIsValidTargetDistinguishesRegionalVariants(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"nl", "en-gb", "en-us", "pt-pt", "pt-br"} {
		if !IsValidTarget(code) {
			t.Fatalf("expected %q to be a valid target", code)
		}
	}
	if IsValidTarget("auto") {
		t.Fatalf("auto must not be a valid target")
	}
}

func TestDisplayNameFallsBackToRawCode(t *testing.T) {
	t.Parallel()

	if got := DisplayName("nl"); got != "Nederlands" {
		t.Fatalf("unexpected display name for nl: %q", got)
	}
	if got := DisplayName("fr"); got != "Français" {
		t.Fatalf("unexpected display name for fr: %q", got)
	}
	if got := DisplayName("tlh"); got != "tlh" {
		t.Fatalf("expected raw-code fallback, got %q", got)
	}
}

func TestSourceCodesStartWithAuto(t *testing.T) {
	t.Parallel()

	codes := SourceCodes()
	if len(codes) != 27 {
		t.Fatalf("unexpected source code count: %d", len(codes))
	}
	if codes[0] != Auto {
		t.Fatalf("expected auto first, got %q", codes[0])
	}
}
