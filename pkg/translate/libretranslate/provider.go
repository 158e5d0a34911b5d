// Package libretranslate implements the secondary translation provider.
//
// Several self-hosted public instances expose the same API shape; they are
// tried in order and the first usable answer wins.
package libretranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slayer3098/tts-translator/pkg/request"
)

// DefaultEndpoints lists known public instances, in priority order.
var DefaultEndpoints = []string{
	"https://libretranslate.com/translate",
	"https://translate.argosopentech.com/translate",
}

// Provider implements translate.Provider over a list of LibreTranslate
// endpoints.
type Provider struct {
	rc        *request.Client
	endpoints []string
}

// New creates a LibreTranslate provider. An empty endpoint list falls back
// to DefaultEndpoints.
func New(rc *request.Client, endpoints []string) *Provider {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	return &Provider{rc: rc, endpoints: endpoints}
}

// Name implements translate.Provider.
func (p *Provider) Name() string { return "libretranslate" }

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate implements translate.Provider. Exhausting the endpoint list is
// a failure.
func (p *Provider) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "en",
		Target: targetLanguage,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate marshal failed: %w", err)
	}

	var lastErr error
	for _, endpoint := range p.endpoints {
		result, err := p.tryEndpoint(ctx, endpoint, payload, text)
		if err != nil {
			slog.Debug("LibreTranslate endpoint failed", "endpoint", endpoint, "error", err)
			lastErr = err
			continue
		}
		return result, nil
	}

	return "", fmt.Errorf("libretranslate endpoints exhausted: %w", lastErr)
}

func (p *Provider) tryEndpoint(ctx context.Context, endpoint string, payload []byte, original string) (string, error) {
	body, err := p.rc.Post(ctx, endpoint, payload, "application/json")
	if err != nil {
		return "", err
	}

	var resp translateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	if resp.TranslatedText == "" {
		return "", fmt.Errorf("no translation in response")
	}
	if resp.TranslatedText == original {
		return "", fmt.Errorf("endpoint echoed input")
	}
	return resp.TranslatedText, nil
}
