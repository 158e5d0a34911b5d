// Package mymemory implements the primary translation provider.
//
// MyMemory is free: 5000 chars/day anonymous, 50000 chars/day when a
// contact email is sent along.
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/net/html"

	"github.com/slayer3098/tts-translator/pkg/request"
)

const defaultBaseURL = "https://api.mymemory.translated.net/get"

// Provider implements translate.Provider for the MyMemory API.
type Provider struct {
	rc      *request.Client
	baseURL string
	email   string
}

// New creates a MyMemory provider. email is optional; when set it is sent
// as the "de" parameter for the quota uplift.
func New(rc *request.Client, baseURL, email string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{rc: rc, baseURL: baseURL, email: email}
}

// Name implements translate.Provider.
func (p *Provider) Name() string { return "mymemory" }

// response mirrors the subset of the MyMemory payload we read.
type response struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate implements translate.Provider.
func (p *Provider) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	params := url.Values{
		"q":        {text},
		"langpair": {"en|" + targetLanguage},
		"mt":       {"1"}, // enable machine translation
	}
	if p.email != "" {
		params.Set("de", p.email)
	}

	body, err := p.rc.Get(ctx, p.baseURL, params)
	if err != nil {
		return "", fmt.Errorf("mymemory request failed: %w", err)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("mymemory malformed response: %w", err)
	}

	translated := resp.ResponseData.TranslatedText
	if translated == "" {
		return "", fmt.Errorf("mymemory returned no translation")
	}
	if translated == text {
		return "", fmt.Errorf("mymemory echoed input")
	}

	// MyMemory escapes quotes and the like as HTML entities.
	return html.UnescapeString(translated), nil
}
