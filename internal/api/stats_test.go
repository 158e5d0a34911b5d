package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slayer3098/tts-translator/pkg/tracker"
)

func TestStatsHandler(t *testing.T) {
	tr := tracker.New()
	tr.ObserveAttempt("mymemory", nil)
	tr.ObserveAttempt("mymemory", nil)
	tr.ObserveAttempt("mymemory", errors.New("quota"))
	tr.ObserveAttempt("googletts", errors.New("blocked"))

	h := NewStatsHandler(tr,
		[]string{"mymemory", "libretranslate", "local"},
		[]string{"googletts", "espeak", "festival", "silence"})

	req := httptest.NewRequest("GET", "/api/stats", http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	mm := resp.Providers["mymemory"]
	assert.Equal(t, int64(3), mm.Attempts)
	assert.Equal(t, int64(2), mm.Successes)
	assert.Equal(t, int64(1), mm.Failures)
	assert.Equal(t, int64(66), mm.SuccessRate)

	gt := resp.Providers["googletts"]
	assert.Equal(t, int64(1), gt.Attempts)
	assert.Equal(t, int64(0), gt.SuccessRate)

	assert.Equal(t, []string{"mymemory", "libretranslate", "local"}, resp.TranslateFallback)
	assert.Equal(t, []string{"googletts", "espeak", "festival", "silence"}, resp.SpeechFallback)
}

func TestStatsHandlerEmpty(t *testing.T) {
	h := NewStatsHandler(tracker.New(), nil, nil)

	req := httptest.NewRequest("GET", "/api/stats", http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Providers)
}
