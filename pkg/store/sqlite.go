package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/slayer3098/tts-translator/pkg/db"
	"github.com/slayer3098/tts-translator/pkg/model"
)

// SQLiteStore implements Store.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a new store.
func NewSQLiteStore(db *db.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTranslation persists a new record. The ID and CreatedAt are assigned
// here; a UUID keeps concurrent creates collision-free.
func (s *SQLiteStore) CreateTranslation(ctx context.Context, tr *model.Translation) error {
	if tr.ID == "" {
		tr.ID = uuid.New().String()
	}
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations
			(id, original_text, source_language, target_language, translated_text, voice_type, pitch, speed, requester_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.ID, tr.OriginalText, tr.SourceLanguage, tr.TargetLanguage, tr.TranslatedText,
		string(tr.VoiceType), tr.Pitch, tr.Speed, tr.RequesterAddr, tr.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetTranslation(ctx context.Context, id string) (*model.Translation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, original_text, source_language, target_language, translated_text, voice_type, pitch, speed, requester_addr, created_at
		 FROM translations WHERE id = ?`, id)

	tr, err := scanTranslation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return tr, nil
}

func (s *SQLiteStore) ListTranslations(ctx context.Context, requesterAddr string, page, pageSize int) ([]*model.Translation, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, original_text, source_language, target_language, translated_text, voice_type, pitch, speed, requester_addr, created_at
		 FROM translations WHERE requester_addr = ?
		 ORDER BY created_at DESC
		 LIMIT ? OFFSET ?`, requesterAddr, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.Translation
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	return result, rows.Err()
}

func (s *SQLiteStore) CountTranslations(ctx context.Context, requesterAddr string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM translations WHERE requester_addr = ?`, requesterAddr).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row scanner) (*model.Translation, error) {
	var tr model.Translation
	var voice string
	var requester sql.NullString
	var createdAt string

	err := row.Scan(
		&tr.ID, &tr.OriginalText, &tr.SourceLanguage, &tr.TargetLanguage, &tr.TranslatedText,
		&voice, &tr.Pitch, &tr.Speed, &requester, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	tr.VoiceType = model.VoiceType(voice)
	if requester.Valid {
		tr.RequesterAddr = requester.String
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		tr.CreatedAt = t
	}

	return &tr, nil
}
