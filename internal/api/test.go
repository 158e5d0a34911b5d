package api

import (
	"context"
	"net/http"
	"time"

	"github.com/slayer3098/tts-translator/pkg/translate"
)

// testPhrase exercises each provider with a known-translatable input.
const testPhrase = "Hello, how are you?"

// TestHandler probes every translation provider once and reports the
// outcome. Only wired up when debug mode is enabled.
type TestHandler struct {
	providers []translate.Provider
	timeout   time.Duration
}

// NewTestHandler creates a TestHandler over the given providers.
func NewTestHandler(providers []translate.Provider) *TestHandler {
	return &TestHandler{providers: providers, timeout: 15 * time.Second}
}

// ProviderTestResult is one provider's probe outcome.
type ProviderTestResult struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HandleTest runs each provider against a fixed English phrase.
func (h *TestHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	results := make(map[string]ProviderTestResult, len(h.providers))

	for _, p := range h.providers {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		result, err := p.Translate(ctx, testPhrase, "es")
		cancel()

		if err != nil {
			results[p.Name()] = ProviderTestResult{Success: false, Error: err.Error()}
			continue
		}
		results[p.Name()] = ProviderTestResult{Success: true, Result: result}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"phrase":    testPhrase,
		"providers": results,
	})
}
