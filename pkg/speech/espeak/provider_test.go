package espeak

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/slayer3098/tts-translator/pkg/model"
	"github.com/slayer3098/tts-translator/pkg/speech"
)

func TestVoiceTable(t *testing.T) {
	cases := []struct {
		lang  string
		voice model.VoiceType
		want  string
	}{
		{"es", model.VoiceFemale, "es+f3"},
		{"es", model.VoiceMale, "es+m3"},
		{"ru", model.VoiceFemale, "ru+f3"},
		{"zh", model.VoiceMale, "zh+m3"},
		// Unmapped languages fall back to generic English voices.
		{"xx", model.VoiceFemale, "en+f3"},
		{"xx", model.VoiceMale, "en+m3"},
	}
	for _, c := range cases {
		if got := Voice(c.lang, c.voice); got != c.want {
			t.Errorf("Voice(%q, %q) = %q, want %q", c.lang, c.voice, got, c.want)
		}
	}
}

func TestRescaling(t *testing.T) {
	// Application range [0.5, 2.0] maps into espeak's native ranges.
	if got := PitchValue(0.5); got != 25 {
		t.Errorf("PitchValue(0.5) = %d, want 25", got)
	}
	if got := PitchValue(2.0); got != 100 {
		t.Errorf("PitchValue(2.0) = %d, want 100", got)
	}
	if got := SpeedValue(1.0); got != 175 {
		t.Errorf("SpeedValue(1.0) = %d, want 175", got)
	}
	if got := SpeedValue(2.0); got != 350 {
		t.Errorf("SpeedValue(2.0) = %d, want 350", got)
	}
}

// fakeEspeak builds a shell script that mimics espeak's CLI surface: it
// reads the -w argument and writes fake audio there.
func fakeEspeak(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake not available on windows")
	}

	script := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-w" ]; then out="$2"; fi
  shift
done
printf 'FAKEWAV' > "$out"
`
	path := filepath.Join(t.TempDir(), "espeak")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSynthesizeReadsEngineOutput(t *testing.T) {
	p := New(fakeEspeak(t))
	got, err := p.Synthesize(context.Background(), speech.Request{
		Text:     "hola",
		Language: "es",
		Voice:    model.VoiceMale,
		Pitch:    1.0,
		Speed:    1.0,
	})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !bytes.Equal(got, []byte("FAKEWAV")) {
		t.Errorf("unexpected audio: %q", got)
	}
}

func TestSynthesizeMissingBinaryFails(t *testing.T) {
	p := New("definitely-not-a-real-espeak-binary")
	_, err := p.Synthesize(context.Background(), speech.Request{
		Text:     "hola",
		Language: "es",
		Voice:    model.VoiceFemale,
		Pitch:    1.0,
		Speed:    1.0,
	})
	if err == nil {
		t.Error("expected failure when the binary is not on PATH")
	}
}
