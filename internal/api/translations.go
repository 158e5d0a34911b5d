package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/slayer3098/tts-translator/pkg/model"
	"github.com/slayer3098/tts-translator/pkg/translator"
)

const (
	maxTextLength      = 5000
	defaultHistorySize = 20
	maxHistorySize     = 100
)

// TranslationHandler serves the translate, history and download endpoints.
type TranslationHandler struct {
	svc *translator.Service
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc *translator.Service) *TranslationHandler {
	return &TranslationHandler{svc: svc}
}

// TranslateRequest is the POST /api/translate body.
type TranslateRequest struct {
	Text           string  `json:"text"`
	TargetLanguage string  `json:"target_language"`
	VoiceType      string  `json:"voice_type"`
	Pitch          float64 `json:"pitch"`
	Speed          float64 `json:"speed"`
}

// TranslateResponse is the POST /api/translate response.
type TranslateResponse struct {
	Success        bool               `json:"success"`
	Translation    *model.Translation `json:"translation"`
	TranslatedText string             `json:"translated_text"`
}

// HistoryResponse is the GET /api/history response.
type HistoryResponse struct {
	Success      bool                 `json:"success"`
	Translations []*model.Translation `json:"translations"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// HandleTranslate accepts a translate request, runs the pipeline and
// returns the stored record.
func (h *TranslationHandler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Absent fields keep the form defaults.
	if req.VoiceType == "" {
		req.VoiceType = string(model.VoiceFemale)
	}
	if req.Pitch == 0 {
		req.Pitch = 1.0
	}
	if req.Speed == 0 {
		req.Speed = 1.0
	}

	if msg := validateTranslateRequest(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	record, err := h.svc.Translate(r.Context(), translator.Request{
		Text:           req.Text,
		TargetLanguage: req.TargetLanguage,
		Voice:          model.VoiceType(req.VoiceType),
		Pitch:          req.Pitch,
		Speed:          req.Speed,
		RequesterAddr:  requesterAddr(r),
	})
	if err != nil {
		slog.Error("Translate request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "translation could not be saved")
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{
		Success:        true,
		Translation:    record,
		TranslatedText: record.TranslatedText,
	})
}

func validateTranslateRequest(req *TranslateRequest) string {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "text is required"
	}
	if len(req.Text) > maxTextLength {
		return fmt.Sprintf("text must be at most %d characters", maxTextLength)
	}
	if !model.IsSupportedTarget(req.TargetLanguage) {
		return "unsupported target language"
	}
	if !model.VoiceType(req.VoiceType).Valid() {
		return "voice_type must be male or female"
	}
	if req.Pitch < model.MinRate || req.Pitch > model.MaxRate {
		return fmt.Sprintf("pitch must be between %g and %g", model.MinRate, model.MaxRate)
	}
	if req.Speed < model.MinRate || req.Speed > model.MaxRate {
		return fmt.Sprintf("speed must be between %g and %g", model.MinRate, model.MaxRate)
	}
	return ""
}

// HandleHistory returns one page of the requester's past translations,
// most recent first.
func (h *TranslationHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "limit", defaultHistorySize)
	if pageSize < 1 {
		pageSize = defaultHistorySize
	}
	if pageSize > maxHistorySize {
		pageSize = maxHistorySize
	}

	records, total, err := h.svc.History(r.Context(), requesterAddr(r), page, pageSize)
	if err != nil {
		slog.Error("History request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if records == nil {
		records = []*model.Translation{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		Success:      true,
		Translations: records,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	})
}

// HandleDownload streams the synthesized audio for a stored translation.
func (h *TranslationHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	dl, err := h.svc.DownloadAudio(r.Context(), id)
	if err != nil {
		if errors.Is(err, translator.ErrNotFound) {
			writeError(w, http.StatusNotFound, "translation not found")
			return
		}
		slog.Error("Audio download failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "audio unavailable")
		return
	}

	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	if _, err := w.Write(dl.Data); err != nil {
		slog.Error("Failed to write audio response", "id", id, "error", err)
	}
}

func handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"languages": model.Languages,
	})
}

// requesterAddr identifies the requester, preferring the first
// X-Forwarded-For hop over the socket address.
func requesterAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
