package translate

import (
	"context"
)

// Provider defines the interface for translation backends.
type Provider interface {
	// Name identifies the provider in logs and stats.
	Name() string

	// Translate converts English text into the target language.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Attempt describes one try of one provider, for diagnostics only.
type Attempt struct {
	Provider string
	Err      error // nil on success
}

// Observer consumes per-attempt diagnostic events emitted by the Resolver.
// Implementations must not influence resolution; the Resolver ignores
// anything they do.
type Observer interface {
	ObserveAttempt(provider string, err error)
}
