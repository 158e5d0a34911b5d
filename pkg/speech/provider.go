package speech

import (
	"context"

	"github.com/slayer3098/tts-translator/pkg/model"
)

// Request carries everything a synthesis backend needs for one utterance.
// Pitch and Speed use the application range [0.5, 2.0]; adapters rescale
// into their engine's native range.
type Request struct {
	Text     string
	Language string
	Voice    model.VoiceType
	Pitch    float64
	Speed    float64
}

// Provider defines the interface for speech synthesis backends.
type Provider interface {
	// Name identifies the provider in logs and stats.
	Name() string

	// Synthesize generates audio bytes for the request.
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// Observer consumes per-attempt diagnostic events emitted by the Resolver.
type Observer interface {
	ObserveAttempt(provider string, err error)
}
