package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/slayer3098/tts-translator/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts handlers for all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(addr string, trans *TranslationHandler, stats *StatsHandler, test *TestHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 3. Translation Endpoints
	mux.HandleFunc("GET /api/languages", handleLanguages)
	mux.HandleFunc("POST /api/translate", trans.HandleTranslate)
	mux.HandleFunc("GET /api/history", trans.HandleHistory)
	mux.HandleFunc("GET /api/download/{id}", trans.HandleDownload)

	// 4. Stats Endpoint
	mux.Handle("GET /api/stats", stats)

	// 5. Provider Test Endpoint (debug builds only)
	if test != nil {
		mux.HandleFunc("GET /api/test", test.HandleTest)
	}

	// 6. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
