package dx7_test

import (
	"reflect"
	"testing"

	dx7 "github.com/softdevca/synthahol-dx7"
)

func TestNormalizeName(t *testing.T) {
	var tests = []struct {
		input []byte
		want  string
	}{
		{[]byte{}, ""},
		{[]byte(" AbC "), " AbC"},
		{[]byte("! 8X"), "! 8X"},
		{[]byte("ABC\x07def"), "ABC def"},
		{[]byte("abcdefghijklmnopqrstuvwxyz"), "abcdefghij"},
		{[]byte{'A' | 0x80, 'B', 'C'}, "ABC"}, // high bit is stripped before the printable check
		{[]byte{0x00, 0x1F, 0x7F}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := dx7.NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultPreset(t *testing.T) {
	preset := dx7.DefaultPreset()

	// The defaults must already be in range so normalizing shouldn't have
	// an effect.
	if !reflect.DeepEqual(preset, preset.Normalize()) {
		t.Errorf("normalizing the default preset changed it: %#v", preset.Normalize())
	}

	if preset.Name != dx7.DefaultPresetName {
		t.Errorf("default name got %q, want %q", preset.Name, dx7.DefaultPresetName)
	}
	if preset.PitchEnvelope.Rates[0] != 99 || preset.PitchEnvelope.Levels[0] != 50 {
		t.Errorf("default pitch envelope got rate %v level %v, want 99 and 50", preset.PitchEnvelope.Rates[0], preset.PitchEnvelope.Levels[0])
	}
	if preset.AlgorithmID != 0 {
		t.Errorf("default algorithm ID got %v, want 0", preset.AlgorithmID)
	}
	if !preset.OscillatorKeySync || !preset.LFOKeySync {
		t.Errorf("default key sync flags got %v and %v, want both true", preset.OscillatorKeySync, preset.LFOKeySync)
	}
	if preset.LFOSpeed != 35 || preset.LFOPitchModSensitivity != 3 || preset.Transpose != 24 {
		t.Errorf("default LFO speed %v, pitch mod sensitivity %v, transpose %v; want 35, 3, 24", preset.LFOSpeed, preset.LFOPitchModSensitivity, preset.Transpose)
	}

	// Only the first operator has an output level and only the last
	// envelope generator level is zero.
	if preset.Operators[0].OutputLevel != 99 || preset.Operators[dx7.NumOperators-1].OutputLevel != 0 {
		t.Errorf("default output levels got %v and %v, want 99 and 0", preset.Operators[0].OutputLevel, preset.Operators[dx7.NumOperators-1].OutputLevel)
	}
	envelope := preset.Operators[0].Envelope
	if envelope.Levels[0] != 99 || envelope.Levels[dx7.NumEnvelopeSegments-1] != 0 {
		t.Errorf("default operator envelope levels got %v and %v, want 99 and 0", envelope.Levels[0], envelope.Levels[dx7.NumEnvelopeSegments-1])
	}
	op := preset.Operators[0]
	if op.ScalingBreakPoint != 39 || op.Detune != 0 || op.Mode != dx7.Fixed || op.FrequencyCoarse != 1 || op.FrequencyFine != 0 {
		t.Errorf("unexpected default operator %#v", op)
	}
}

func TestNormalizeClamps(t *testing.T) {
	preset := dx7.DefaultPreset()
	preset.FeedbackLevel = 123
	preset.LFODelay = 100
	preset.Transpose = 200
	preset.AlgorithmID = 45
	preset.Operators[2].OutputLevel = 255
	preset.Operators[2].Detune = -7
	preset.PitchEnvelope.Rates[1] = 110

	normalized := preset.Normalize()
	if normalized.FeedbackLevel != 7 {
		t.Errorf("feedback level got %v, want 7", normalized.FeedbackLevel)
	}
	if normalized.LFODelay != 99 {
		t.Errorf("LFO delay got %v, want 99", normalized.LFODelay)
	}
	if normalized.Transpose != 48 {
		t.Errorf("transpose got %v, want 48", normalized.Transpose)
	}
	if normalized.AlgorithmID != 31 {
		t.Errorf("algorithm ID got %v, want 31", normalized.AlgorithmID)
	}
	if normalized.Operators[2].OutputLevel != 99 {
		t.Errorf("output level got %v, want 99", normalized.Operators[2].OutputLevel)
	}
	if normalized.Operators[2].Detune != 0 {
		t.Errorf("detune got %v, want 0", normalized.Operators[2].Detune)
	}
	if normalized.PitchEnvelope.Rates[1] != 99 {
		t.Errorf("pitch envelope rate got %v, want 99", normalized.PitchEnvelope.Rates[1])
	}

	// Normalizing is idempotent.
	if !reflect.DeepEqual(normalized, normalized.Normalize()) {
		t.Errorf("normalize is not idempotent: %#v", normalized.Normalize())
	}
}

func TestWaveformFromCode(t *testing.T) {
	for code := 0; code <= 5; code++ {
		if _, ok := dx7.WaveformFromCode(code); !ok {
			t.Errorf("WaveformFromCode(%v) not ok, want ok", code)
		}
	}
	for _, code := range []int{-1, 6, 7} {
		if _, ok := dx7.WaveformFromCode(code); ok {
			t.Errorf("WaveformFromCode(%v) ok, want not ok", code)
		}
	}
	if dx7.Sine.String() != "sine" {
		t.Errorf("Sine.String() got %q, want %q", dx7.Sine.String(), "sine")
	}
}
