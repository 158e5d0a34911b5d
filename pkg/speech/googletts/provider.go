// Package googletts drives the unofficial Google Translate TTS endpoint.
//
// The endpoint is free but undocumented and rate-limited, so it gets the
// same distrust as the translation providers. It returns MP3 frames; the
// bytes are passed through unmodified — no transcoding happens here, the
// download layer documents this limitation.
package googletts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/slayer3098/tts-translator/pkg/request"
	"github.com/slayer3098/tts-translator/pkg/speech"
)

const defaultBaseURL = "https://translate.google.com/translate_tts"

// Provider implements speech.Provider for Google Translate TTS.
type Provider struct {
	rc      *request.Client
	baseURL string
}

// New creates a Google TTS provider.
func New(rc *request.Client, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{rc: rc, baseURL: baseURL}
}

// Name implements speech.Provider.
func (p *Provider) Name() string { return "google-tts" }

// Synthesize implements speech.Provider. Voice and pitch are not supported
// by the endpoint; only speed is forwarded.
func (p *Provider) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	params := url.Values{
		"ie":       {"UTF-8"},
		"q":        {req.Text},
		"tl":       {req.Language},
		"client":   {"tw-ob"},
		"ttsspeed": {strconv.FormatFloat(req.Speed, 'f', -1, 64)},
	}

	body, err := p.rc.Get(ctx, p.baseURL, params)
	if err != nil {
		return nil, fmt.Errorf("google tts request failed: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("google tts returned no audio")
	}

	return body, nil
}
