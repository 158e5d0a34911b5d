package googletts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slayer3098/tts-translator/pkg/model"
	"github.com/slayer3098/tts-translator/pkg/request"
	"github.com/slayer3098/tts-translator/pkg/speech"
)

func TestSynthesize(t *testing.T) {
	var gotQuery map[string]string
	fakeAudio := []byte{0xFF, 0xFB, 0x90, 0x00} // mp3 frame sync
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"ie":       r.URL.Query().Get("ie"),
			"q":        r.URL.Query().Get("q"),
			"tl":       r.URL.Query().Get("tl"),
			"client":   r.URL.Query().Get("client"),
			"ttsspeed": r.URL.Query().Get("ttsspeed"),
		}
		w.Write(fakeAudio)
	}))
	defer srv.Close()

	p := New(request.New(request.Options{Timeout: 5 * time.Second}), srv.URL)
	got, err := p.Synthesize(context.Background(), speech.Request{
		Text:     "hola mundo",
		Language: "es",
		Voice:    model.VoiceFemale,
		Pitch:    1.2,
		Speed:    1.5,
	})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	// Bytes are passed through unmodified.
	if !bytes.Equal(got, fakeAudio) {
		t.Errorf("audio bytes altered: %v", got)
	}
	if gotQuery["ie"] != "UTF-8" || gotQuery["client"] != "tw-ob" {
		t.Errorf("fixed params wrong: %v", gotQuery)
	}
	if gotQuery["q"] != "hola mundo" || gotQuery["tl"] != "es" {
		t.Errorf("text/language params wrong: %v", gotQuery)
	}
	if gotQuery["ttsspeed"] != "1.5" {
		t.Errorf("ttsspeed = %q, want 1.5", gotQuery["ttsspeed"])
	}
}

func TestSynthesizeErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		p := New(request.New(request.Options{}), srv.URL)
		if _, err := p.Synthesize(context.Background(), speech.Request{Text: "hi", Language: "es"}); err == nil {
			t.Error("expected error for 429")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := New(request.New(request.Options{}), srv.URL)
		if _, err := p.Synthesize(context.Background(), speech.Request{Text: "hi", Language: "es"}); err == nil {
			t.Error("expected error for empty audio")
		}
	})
}
