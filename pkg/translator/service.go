// Package translator orchestrates the translation and audio pipelines
// around the persistent record store.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slayer3098/tts-translator/pkg/model"
	"github.com/slayer3098/tts-translator/pkg/speech"
	"github.com/slayer3098/tts-translator/pkg/store"
	"github.com/slayer3098/tts-translator/pkg/translate"
)

// ErrNotFound reports a missing translation record.
var ErrNotFound = errors.New("translation not found")

// Request is a validated translate request. Validation happens at the HTTP
// boundary; the service assumes the fields are in range.
type Request struct {
	Text           string
	TargetLanguage string
	Voice          model.VoiceType
	Pitch          float64
	Speed          float64
	RequesterAddr  string
}

// AudioDownload is a synthesized audio payload ready to stream.
type AudioDownload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Service drives both resolver pipelines and persists the results.
type Service struct {
	translate *translate.Resolver
	speech    *speech.Resolver
	store     store.TranslationStore
}

// New creates a Service.
func New(tr *translate.Resolver, sp *speech.Resolver, st store.TranslationStore) *Service {
	return &Service{translate: tr, speech: sp, store: st}
}

// Translate resolves a translation and persists one record. The resolver
// never fails, so the only error source is persistence.
func (s *Service) Translate(ctx context.Context, req Request) (*model.Translation, error) {
	translated := s.translate.Resolve(ctx, req.Text, req.TargetLanguage)

	tr := &model.Translation{
		OriginalText:   req.Text,
		SourceLanguage: "en",
		TargetLanguage: req.TargetLanguage,
		TranslatedText: translated,
		VoiceType:      req.Voice,
		Pitch:          model.ClampRate(req.Pitch),
		Speed:          model.ClampRate(req.Speed),
		RequesterAddr:  req.RequesterAddr,
	}
	if err := s.store.CreateTranslation(ctx, tr); err != nil {
		return nil, fmt.Errorf("failed to persist translation: %w", err)
	}

	return tr, nil
}

// History returns one page of the requester's records, most recent first,
// along with the total count for pagination.
func (s *Service) History(ctx context.Context, requesterAddr string, page, pageSize int) ([]*model.Translation, int, error) {
	records, err := s.store.ListTranslations(ctx, requesterAddr, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history: %w", err)
	}
	total, err := s.store.CountTranslations(ctx, requesterAddr)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}
	return records, total, nil
}

// DownloadAudio synthesizes audio for a stored record. A missing record is
// the only surfaced error; anything else degrades to the silent fallback so
// the endpoint always returns playable audio.
func (s *Service) DownloadAudio(ctx context.Context, id string) (*AudioDownload, error) {
	tr, err := s.store.GetTranslation(ctx, id)
	if err != nil {
		slog.Error("Audio download store lookup failed, serving silent fallback", "id", id, "error", err)
		return s.fallbackAudio(id), nil
	}
	if tr == nil {
		return nil, ErrNotFound
	}

	data := s.speech.Resolve(ctx, speech.Request{
		Text:     tr.TranslatedText,
		Language: tr.TargetLanguage,
		Voice:    tr.VoiceType,
		Pitch:    tr.Pitch,
		Speed:    tr.Speed,
	})

	return &AudioDownload{
		Data:        data,
		ContentType: "audio/wav",
		Filename:    audioFilename(id),
	}, nil
}

func (s *Service) fallbackAudio(id string) *AudioDownload {
	return &AudioDownload{
		Data:        speech.SilentWAV(),
		ContentType: "audio/wav",
		Filename:    audioFilename(id),
	}
}

func audioFilename(id string) string {
	return fmt.Sprintf("translation_%s_audio.wav", id)
}
