// Package guru is a placeholder slot in the translation fallback chain.
//
// The upstream service never materialized; the adapter is kept so the chain
// retains its three-provider shape and a real backend can drop in later.
package guru

import (
	"context"
	"fmt"
)

// Provider implements translate.Provider and always fails.
type Provider struct{}

// New creates the placeholder provider.
func New() *Provider {
	return &Provider{}
}

// Name implements translate.Provider.
func (p *Provider) Name() string { return "freetranslateguru" }

// Translate implements translate.Provider.
func (p *Provider) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return "", fmt.Errorf("free translate guru not implemented yet")
}
