package api

import (
	"encoding/json"
	"net/http"

	"github.com/slayer3098/tts-translator/pkg/tracker"
)

// StatsHandler exposes per-provider attempt counters.
type StatsHandler struct {
	tracker           *tracker.Tracker
	translateFallback []string
	speechFallback    []string
}

// NewStatsHandler creates a StatsHandler. The fallback slices name each
// pipeline's providers in priority order, for display.
func NewStatsHandler(t *tracker.Tracker, translateFallback, speechFallback []string) *StatsHandler {
	return &StatsHandler{
		tracker:           t,
		translateFallback: translateFallback,
		speechFallback:    speechFallback,
	}
}

// ProviderStatsDTO is one provider's counters in the stats response.
type ProviderStatsDTO struct {
	Attempts    int64 `json:"attempts"`
	Successes   int64 `json:"successes"`
	Failures    int64 `json:"failures"`
	SuccessRate int64 `json:"success_rate"`
}

// StatsResponse is the GET /api/stats response.
type StatsResponse struct {
	Providers         map[string]ProviderStatsDTO `json:"providers"`
	TranslateFallback []string                    `json:"translate_fallback"`
	SpeechFallback    []string                    `json:"speech_fallback"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot()

	resp := StatsResponse{
		Providers:         make(map[string]ProviderStatsDTO),
		TranslateFallback: h.translateFallback,
		SpeechFallback:    h.speechFallback,
	}

	for provider, stats := range snapshot {
		rate := int64(0)
		if stats.Attempts > 0 {
			rate = (stats.Successes * 100) / stats.Attempts
		}
		resp.Providers[provider] = ProviderStatsDTO{
			Attempts:    stats.Attempts,
			Successes:   stats.Successes,
			Failures:    stats.Failures,
			SuccessRate: rate,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
