// Package festival drives the festival command-line speech engine.
//
// Festival has no per-voice pitch/speed knobs on its CLI, so those request
// fields are ignored; it serves purely as a last local resort.
package festival

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/slayer3098/tts-translator/pkg/speech"
)

// Provider implements speech.Provider using the festival binary.
type Provider struct {
	binary string
}

// New creates a festival provider. binary defaults to "festival".
func New(binary string) *Provider {
	if binary == "" {
		binary = "festival"
	}
	return &Provider{binary: binary}
}

// Name implements speech.Provider.
func (p *Provider) Name() string { return "festival" }

// Synthesize implements speech.Provider. Text goes through a temp file;
// both temp files are removed on every exit path.
func (p *Provider) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	bin, err := exec.LookPath(p.binary)
	if err != nil {
		return nil, fmt.Errorf("festival not available: %w", err)
	}

	id := uuid.New().String()
	textPath := filepath.Join(os.TempDir(), "tts_text_"+id+".txt")
	audioPath := filepath.Join(os.TempDir(), "tts_audio_"+id+".wav")
	defer os.Remove(textPath)
	defer os.Remove(audioPath)

	if err := os.WriteFile(textPath, []byte(req.Text), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write festival input: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin,
		"--tts", textPath,
		"--otype", "wav",
		"--output", audioPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("festival command failed: %w (output: %s)", err, out)
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("festival produced no output: %w", err)
	}
	return audio, nil
}
