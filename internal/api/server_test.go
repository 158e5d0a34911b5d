package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slayer3098/tts-translator/pkg/tracker"
)

func newTestServer(t *testing.T, test *TestHandler) http.Handler {
	t.Helper()
	trans, _ := newTestHandler()
	stats := NewStatsHandler(tracker.New(), nil, nil)
	srv := NewServer("localhost:0", trans, stats, test, func() {})
	return srv.Handler
}

func TestServerRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/api/version", http.StatusOK},
		{"GET", "/api/languages", http.StatusOK},
		{"GET", "/api/history", http.StatusOK},
		{"GET", "/api/stats", http.StatusOK},
		{"GET", "/api/download/nope", http.StatusNotFound},
		// Debug test endpoint is absent unless a handler was wired.
		{"GET", "/api/test", http.StatusNotFound},
		// Wrong method on a registered pattern.
		{"GET", "/api/translate", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, http.NoBody)
			req.RemoteAddr = "127.0.0.1:9999"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestServerHealth(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestServerDebugTestRoute(t *testing.T) {
	h := newTestServer(t, NewTestHandler(nil))

	req := httptest.NewRequest("GET", "/api/test", http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
