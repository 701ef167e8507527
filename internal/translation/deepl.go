package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/atelierpage/traduire/internal/language"
)

const (
	deeplPaidEndpoint = "https://api.deepl.com/v2/translate"
	deeplFreeEndpoint = "https://api-free.deepl.com/v2/translate"

	// freeKeySuffix marks DeepL API Free plan keys, which must use the
	// api-free host.
	freeKeySuffix = ":fx"
)

// DeepLProvider translates text through the DeepL REST API.
type DeepLProvider struct {
	apiKey      string
	endpointURL string
	client      *http.Client
	limiter     *rate.Limiter
}

// NewDeepLProvider builds a provider for the given API key. The endpoint is
// chosen from the key's plan suffix. requestsPerMinute <= 0 disables pacing.
func NewDeepLProvider(apiKey string, requestsPerMinute int) *DeepLProvider {
	endpoint := deeplPaidEndpoint
	if strings.HasSuffix(strings.TrimSpace(apiKey), freeKeySuffix) {
		endpoint = deeplFreeEndpoint
	}
	return NewDeepLProviderWithEndpoint(apiKey, endpoint, requestsPerMinute)
}

// NewDeepLProviderWithEndpoint builds a provider against an explicit endpoint.
func NewDeepLProviderWithEndpoint(apiKey, endpoint string, requestsPerMinute int) *DeepLProvider {
	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
	}
	return &DeepLProvider{
		apiKey:      strings.TrimSpace(apiKey),
		endpointURL: endpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: limiter,
	}
}

func (p *DeepLProvider) Name() string {
	return "deepl"
}

func (p *DeepLProvider) SupportedLanguages() []string {
	return language.TargetCodes()
}

func (p *DeepLProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if p == nil {
		return nil, fmt.Errorf("deepl provider is nil")
	}
	if req.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	targetLang := language.Normalize(req.TargetLang)
	if targetLang == "" {
		return nil, fmt.Errorf("target language is required")
	}

	payload := deeplRequest{
		Text:       []string{req.Text},
		TargetLang: strings.ToUpper(targetLang),
	}
	sourceLang := language.Normalize(req.SourceLang)
	if sourceLang != "" && sourceLang != language.Auto {
		payload.SourceLang = strings.ToUpper(sourceLang)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal translation request: %w", err)
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for request slot: %w", err)
		}
	}

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errPayload deeplErrorResponse
		if unmarshalErr := json.Unmarshal(respBody, &errPayload); unmarshalErr == nil {
			if msg := strings.TrimSpace(errPayload.Message); msg != "" {
				return nil, fmt.Errorf("deepl status %d: %s", resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("deepl status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed deeplResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode translation response: %w", err)
	}
	if len(parsed.Translations) == 0 {
		return nil, fmt.Errorf("translation response missing translations")
	}

	detectedSource := language.Normalize(parsed.Translations[0].DetectedSourceLanguage)
	if detectedSource == "" {
		detectedSource = sourceLang
	}

	return &TranslateResponse{
		Text:         parsed.Translations[0].Text,
		SourceLang:   detectedSource,
		TargetLang:   targetLang,
		ProviderName: p.Name(),
		LatencyMs:    time.Since(started).Milliseconds(),
	}, nil
}

type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang,omitempty"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

type deeplErrorResponse struct {
	Message string `json:"message"`
}
