package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// attemptTimeout bounds a single provider call.
const attemptTimeout = 30 * time.Second

// Resolver tries translation providers in priority order and falls back to
// the local phrase table when every provider fails. Resolve never fails
// outward: it always returns displayable text.
type Resolver struct {
	providers []Provider
	timeout   time.Duration
	observer  Observer
}

// NewResolver creates a Resolver over the given providers. The slice order
// is the priority order. observer may be nil.
func NewResolver(providers []Provider, observer Observer) *Resolver {
	return &Resolver{
		providers: providers,
		timeout:   attemptTimeout,
		observer:  observer,
	}
}

// Resolve returns a translation of text into targetLanguage. Each provider
// gets one bounded attempt; the first acceptable result wins. A provider
// that echoes its input or returns blank text is treated as failed. When
// the chain is exhausted, the local phrase-table fallback supplies the
// result.
func (r *Resolver) Resolve(ctx context.Context, text, targetLanguage string) string {
	for _, p := range r.providers {
		result, err := r.attempt(ctx, p, text, targetLanguage)
		r.observe(p.Name(), err)
		if err != nil {
			slog.Warn("Translation provider failed, falling back", "provider", p.Name(), "error", err)
			continue
		}
		slog.Info("Translation successful", "provider", p.Name(), "target", targetLanguage)
		return result
	}

	slog.Warn("All translation providers failed, using local fallback", "target", targetLanguage)
	return LocalTranslation(text, targetLanguage)
}

// attempt runs one provider with a bounded timeout and validates the result.
func (r *Resolver) attempt(ctx context.Context, p Provider, text, targetLanguage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := p.Translate(ctx, text, targetLanguage)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result) == "" {
		return "", fmt.Errorf("empty translation")
	}
	if result == text {
		// Some providers echo the input instead of reporting failure.
		return "", fmt.Errorf("provider echoed input")
	}
	return result, nil
}

func (r *Resolver) observe(provider string, err error) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveAttempt(provider, err)
}
