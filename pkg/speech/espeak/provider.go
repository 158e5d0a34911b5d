// Package espeak drives the espeak command-line speech engine.
package espeak

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/slayer3098/tts-translator/pkg/model"
	"github.com/slayer3098/tts-translator/pkg/speech"
)

// voices maps a target language to espeak voice identifiers by gender.
// Unmapped languages fall back to the generic English voices.
var voices = map[string]struct{ female, male string }{
	"es": {"es+f3", "es+m3"},
	"fr": {"fr+f3", "fr+m3"},
	"de": {"de+f3", "de+m3"},
	"it": {"it+f3", "it+m3"},
	"pt": {"pt+f3", "pt+m3"},
	"ru": {"ru+f3", "ru+m3"},
	"ja": {"ja+f3", "ja+m3"},
	"ko": {"ko+f3", "ko+m3"},
	"zh": {"zh+f3", "zh+m3"},
}

// Rescaling factors from the application range [0.5, 2.0] into espeak's
// native pitch (0-99, default 50) and speed (words per minute) ranges.
const (
	pitchScale = 50
	speedScale = 175
)

// Provider implements speech.Provider using the espeak binary.
type Provider struct {
	binary string
}

// New creates an espeak provider. binary defaults to "espeak".
func New(binary string) *Provider {
	if binary == "" {
		binary = "espeak"
	}
	return &Provider{binary: binary}
}

// Name implements speech.Provider.
func (p *Provider) Name() string { return "espeak" }

// Voice returns the espeak voice identifier for a language and voice type.
func Voice(language string, voice model.VoiceType) string {
	v, ok := voices[language]
	if !ok {
		v = struct{ female, male string }{"en+f3", "en+m3"}
	}
	if voice == model.VoiceMale {
		return v.male
	}
	return v.female
}

// PitchValue rescales an application pitch into espeak's range.
func PitchValue(pitch float64) int { return int(pitch * pitchScale) }

// SpeedValue rescales an application speed into espeak's words-per-minute.
func SpeedValue(speed float64) int { return int(speed * speedScale) }

// Synthesize implements speech.Provider. A missing espeak binary is an
// immediate failure, letting the resolver move on. The output file is
// removed on every exit path.
func (p *Provider) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	bin, err := exec.LookPath(p.binary)
	if err != nil {
		return nil, fmt.Errorf("espeak not available: %w", err)
	}

	outPath := filepath.Join(os.TempDir(), "tts_"+uuid.New().String()+".wav")
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, bin,
		"-v", Voice(req.Language, req.Voice),
		"-p", fmt.Sprintf("%d", PitchValue(req.Pitch)),
		"-s", fmt.Sprintf("%d", SpeedValue(req.Speed)),
		"-w", outPath,
		req.Text,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("espeak command failed: %w (output: %s)", err, out)
	}

	audio, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("espeak produced no output: %w", err)
	}
	return audio, nil
}
