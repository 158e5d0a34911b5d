package libretranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slayer3098/tts-translator/pkg/request"
)

func testClient() *request.Client {
	return request.New(request.Options{Timeout: 5 * time.Second})
}

func TestTranslatePostsExpectedShape(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"translatedText":"bonjour"}`)
	}))
	defer srv.Close()

	p := New(testClient(), []string{srv.URL})
	got, err := p.Translate(context.Background(), "hello", "fr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "bonjour" {
		t.Errorf("Translate = %q, want %q", got, "bonjour")
	}

	want := map[string]string{"q": "hello", "source": "en", "target": "fr", "format": "text"}
	for k, v := range want {
		if gotBody[k] != v {
			t.Errorf("request field %q = %q, want %q", k, gotBody[k], v)
		}
	}
}

func TestTranslateTriesEndpointsInOrder(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	var goodCalled bool
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goodCalled = true
		fmt.Fprint(w, `{"translatedText":"hallo"}`)
	}))
	defer good.Close()

	p := New(testClient(), []string{bad.URL, good.URL})
	got, err := p.Translate(context.Background(), "hello", "de")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hallo" {
		t.Errorf("Translate = %q, want %q", got, "hallo")
	}
	if !goodCalled {
		t.Error("second endpoint was never tried")
	}
}

func TestTranslateEchoFallsToNextEndpoint(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"translatedText":"hello"}`)
	}))
	defer echo.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"translatedText":"ciao"}`)
	}))
	defer good.Close()

	p := New(testClient(), []string{echo.URL, good.URL})
	got, err := p.Translate(context.Background(), "hello", "it")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "ciao" {
		t.Errorf("Translate = %q, want %q", got, "ciao")
	}
}

func TestTranslateExhaustedEndpointsIsError(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer bad.Close()

	p := New(testClient(), []string{bad.URL, bad.URL})
	if _, err := p.Translate(context.Background(), "hello", "es"); err == nil {
		t.Error("expected error when all endpoints fail")
	}
}
