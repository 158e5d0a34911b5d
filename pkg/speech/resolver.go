package speech

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// attemptTimeout bounds a single provider call, network or subprocess.
const attemptTimeout = 30 * time.Second

// Resolver tries synthesis providers in priority order and falls back to
// silent placeholder audio when every provider fails. Resolve never fails
// outward: it always returns playable bytes.
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

// Resolve returns synthesized audio for the request. Each provider gets one
// bounded attempt; the first non-empty result wins. When the chain is
// exhausted, a validly-framed silent WAV is returned.
func (r *Resolver) Resolve(ctx context.Context, req Request) []byte {
	for _, p := range r.providers {
		audio, err := r.attempt(ctx, p, req)
		r.observe(p.Name(), err)
		if err != nil {
			slog.Warn("TTS provider failed, falling back", "provider", p.Name(), "error", err)
			continue
		}
		slog.Info("Audio generation successful", "provider", p.Name(), "bytes", len(audio))
		return audio
	}

	slog.Warn("All TTS providers failed, using silent fallback audio")
	return SilentWAV()
}

func (r *Resolver) attempt(ctx context.Context, p Provider, req Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	audio, err := p.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio")
	}
	return audio, nil
}

func (r *Resolver) observe(provider string, err error) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveAttempt(provider, err)
}
