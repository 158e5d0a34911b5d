package model

import (
	"time"
)

// VoiceType selects the synthesized voice gender.
type VoiceType string

const (
	VoiceMale   VoiceType = "male"
	VoiceFemale VoiceType = "female"
)

// Valid reports whether v is one of the known voice types.
func (v VoiceType) Valid() bool {
	return v == VoiceMale || v == VoiceFemale
}

// Rate bounds for pitch and speed.
const (
	MinRate = 0.5
	MaxRate = 2.0
)

// ClampRate restricts a pitch or speed value to the supported range.
func ClampRate(v float64) float64 {
	if v < MinRate {
		return MinRate
	}
	if v > MaxRate {
		return MaxRate
	}
	return v
}

// Translation is a single recorded translation request.
// Records are immutable once created.
type Translation struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"original_text"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	TranslatedText string    `json:"translated_text"`
	VoiceType      VoiceType `json:"voice_type"`
	Pitch          float64   `json:"pitch"`
	Speed          float64   `json:"speed"`
	RequesterAddr  string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Language pairs a language code with its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists all languages known to the application, in display order.
// The source language is always "en"; every other entry is a valid target.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
}

// IsSupportedTarget reports whether code is a valid translation target.
// English is the fixed source language and never a valid target.
func IsSupportedTarget(code string) bool {
	if code == "en" {
		return false
	}
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
