package model

import "testing"

func TestClampRate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.1, 0.5},
		{0.5, 0.5},
		{1.0, 1.0},
		{2.0, 2.0},
		{3.5, 2.0},
	}
	for _, c := range cases {
		if got := ClampRate(c.in); got != c.want {
			t.Errorf("ClampRate(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsSupportedTarget(t *testing.T) {
	for _, code := range []string{"es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh"} {
		if !IsSupportedTarget(code) {
			t.Errorf("expected %q to be a supported target", code)
		}
	}

	// English is the source language, never a target.
	if IsSupportedTarget("en") {
		t.Error("en must not be a valid target")
	}
	if IsSupportedTarget("zz") {
		t.Error("zz must not be a valid target")
	}
	if IsSupportedTarget("") {
		t.Error("empty code must not be a valid target")
	}
}

func TestVoiceTypeValid(t *testing.T) {
	if !VoiceMale.Valid() || !VoiceFemale.Valid() {
		t.Error("male/female must be valid voice types")
	}
	if VoiceType("robot").Valid() {
		t.Error("unknown voice type must be invalid")
	}
}
