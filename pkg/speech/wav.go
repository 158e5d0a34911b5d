package speech

import (
	"bytes"
	"encoding/binary"
)

// Silent fallback audio parameters: PCM, mono, 16-bit.
const (
	FallbackSampleRate = 44100
	FallbackSeconds    = 3
)

// SilentWAV returns a validly-framed WAV file containing FallbackSeconds of
// silence. This is the guaranteed last resort of the audio pipeline: the
// download endpoint always has structurally valid audio to serve.
func SilentWAV() []byte {
	samples := FallbackSampleRate * FallbackSeconds
	dataLen := samples * 2 // 16-bit mono

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))                     // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))                      // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))                      // mono
	binary.Write(&buf, binary.LittleEndian, uint32(FallbackSampleRate))     // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(FallbackSampleRate*2))   // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))                      // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))                     // bits per sample

	// data chunk: all-zero samples are silence
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	return buf.Bytes()
}
