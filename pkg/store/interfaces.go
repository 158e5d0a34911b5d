package store

import (
	"context"

	"github.com/slayer3098/tts-translator/pkg/model"
)

// TranslationStore handles translation record persistence.
// Records are write-once: there is no update or delete.
type TranslationStore interface {
	// CreateTranslation persists a new record, assigning ID and CreatedAt.
	CreateTranslation(ctx context.Context, tr *model.Translation) error

	// GetTranslation returns the record with the given id, or nil if absent.
	GetTranslation(ctx context.Context, id string) (*model.Translation, error)

	// ListTranslations returns the requester's records, most recent first.
	// page is 1-based.
	ListTranslations(ctx context.Context, requesterAddr string, page, pageSize int) ([]*model.Translation, error)

	// CountTranslations returns the total number of records for a requester.
	CountTranslations(ctx context.Context, requesterAddr string) (int, error)
}

// Store composes the repository interfaces plus lifecycle management.
type Store interface {
	TranslationStore

	// Close closes the store connection.
	Close() error
}
