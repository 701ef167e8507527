// Package language is the static registry of translation language codes:
// which codes are accepted as source and target, and how codes map to the
// display names written into the document store.
package language

import (
	"sort"
	"strings"
)

// Auto is the sentinel source code that lets the provider detect the source
// language itself.
const Auto = "auto"

var sourceCodes = map[string]struct{}{
	"bg": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "en": {}, "es": {},
	"et": {}, "fi": {}, "fr": {}, "hu": {}, "id": {}, "it": {}, "ja": {},
	"lt": {}, "lv": {}, "nl": {}, "pl": {}, "pt": {}, "ro": {}, "ru": {},
	"sk": {}, "sl": {}, "sv": {}, "tr": {}, "zh": {},
}

// Target codes additionally split English and Portuguese into regional
// variants, matching what the provider accepts.
var targetCodes = map[string]struct{}{
	"bg": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "en-gb": {}, "en-us": {},
	"es": {}, "et": {}, "fi": {}, "fr": {}, "hu": {}, "id": {}, "it": {},
	"ja": {}, "lt": {}, "lv": {}, "nl": {}, "pl": {}, "pt-pt": {}, "pt-br": {},
	"ro": {}, "ru": {}, "sk": {}, "sl": {}, "sv": {}, "tr": {}, "zh": {},
}

var displayNames = map[string]string{
	"bg":    "Български",
	"cs":    "Čeština",
	"da":    "Dansk",
	"de":    "Deutsch",
	"el":    "Ελληνικά",
	"en":    "English",
	"en-gb": "English (UK)",
	"en-us": "English (US)",
	"es":    "Español",
	"et":    "Eesti",
	"fi":    "Suomi",
	"fr":    "Français",
	"hu":    "Magyar",
	"id":    "Bahasa Indonesia",
	"it":    "Italiano",
	"ja":    "日本語",
	"lt":    "Lietuvių",
	"lv":    "Latviešu",
	"nl":    "Nederlands",
	"pl":    "Polski",
	"pt":    "Português",
	"pt-br": "Português (Brasil)",
	"pt-pt": "Português (Portugal)",
	"ro":    "Română",
	"ru":    "Русский",
	"sk":    "Slovenčina",
	"sl":    "Slovenščina",
	"sv":    "Svenska",
	"tr":    "Türkçe",
	"zh":    "中文",
}

// Normalize lowercases a language code and converts "_" separators to "-".
// Returns an empty string when the value is blank or contains characters
// other than letters and separators.
func Normalize(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	trimmed = strings.ReplaceAll(trimmed, "_", "-")
	for _, r := range trimmed {
		if (r < 'a' || r > 'z') && r != '-' {
			return ""
		}
	}
	return trimmed
}

// IsValidSource reports whether code is an accepted source language. The
// "auto" sentinel is always accepted.
func IsValidSource(code string) bool {
	normalized := Normalize(code)
	if normalized == Auto {
		return true
	}
	_, ok := sourceCodes[normalized]
	return ok
}

// IsValidTarget reports whether code is an accepted target language.
func IsValidTarget(code string) bool {
	_, ok := targetCodes[Normalize(code)]
	return ok
}

// DisplayName returns the human-readable name for a language code, falling
// back to the raw code when unmapped.
func DisplayName(code string) string {
	if name, ok := displayNames[Normalize(code)]; ok {
		return name
	}
	return code
}

// SourceCodes returns the accepted source codes in sorted order, with the
// "auto" sentinel first.
func SourceCodes() []string {
	codes := make([]string, 0, len(sourceCodes)+1)
	for code := range sourceCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return append([]string{Auto}, codes...)
}

// TargetCodes returns the accepted target codes in sorted order.
func TargetCodes() []string {
	codes := make([]string, 0, len(targetCodes))
	for code := range targetCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Option pairs a code with its display label for API listings.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// TargetOptions returns the selectable target languages for API consumers.
func TargetOptions() []Option {
	codes := TargetCodes()
	options := make([]Option, 0, len(codes))
	for _, code := range codes {
		options = append(options, Option{Code: code, Label: DisplayName(code)})
	}
	return options
}
