package flicker

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseEmitterConfigSparse(t *testing.T) {
	cfg, err := ParseEmitterConfig([]byte(`{"textures":["spark","ember"],"speed":5,"position":{"X":10,"Y":20}}`))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "speed", cfg.Speed, 5)
	assertNear(t, "position.x", cfg.Position.X, 10)
	assertNear(t, "position.y", cfg.Position.Y, 20)
	if len(cfg.Textures) != 2 || cfg.Textures[1] != "ember" {
		t.Errorf("Textures = %v", cfg.Textures)
	}

	// Untouched fields keep their defaults.
	assertNear(t, "life", cfg.Life, 2)
	assertNear(t, "angleVar", cfg.AngleVar, math.Pi)
	assertNear(t, "limit.x", cfg.VelocityLimit.X, 100)
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.PoolName != DefaultPoolName {
		t.Errorf("PoolName = %q, want %q", cfg.PoolName, DefaultPoolName)
	}
}

func TestParseEmitterConfigEmptyPoolName(t *testing.T) {
	cfg, err := ParseEmitterConfig([]byte(`{"poolName":""}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PoolName != DefaultPoolName {
		t.Errorf("PoolName = %q, want %q", cfg.PoolName, DefaultPoolName)
	}
}

func TestParseEmitterConfigUnknownField(t *testing.T) {
	if _, err := ParseEmitterConfig([]byte(`{"sped":5}`)); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestParseEmitterConfigBlendMode(t *testing.T) {
	cfg, err := ParseEmitterConfig([]byte(`{"blendMode":"add"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BlendMode != BlendAdd {
		t.Errorf("BlendMode = %v, want BlendAdd", cfg.BlendMode)
	}

	_, err = ParseEmitterConfig([]byte(`{"blendMode":"glow"}`))
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "blendMode" {
		t.Errorf("err = %v, want ConfigError on blendMode", err)
	}
}

func TestEmitterConfigJSONRoundTripKeepsNames(t *testing.T) {
	cfg := DefaultEmitterConfig()
	cfg.BlendMode = BlendScreen
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["blendMode"] != "screen" {
		t.Errorf("blendMode = %v, want screen", raw["blendMode"])
	}
	if _, ok := raw["velocityLimit"]; !ok {
		t.Error("velocityLimit key missing")
	}
}

func TestResetNumericCoversAllFloats(t *testing.T) {
	var cfg EmitterConfig
	for _, field := range emitterNumericFields {
		*field(&cfg) = 123
	}
	cfg.resetNumeric(false)
	def := DefaultEmitterConfig()
	for i, field := range emitterNumericFields {
		if *field(&cfg) != *field(&def) {
			t.Errorf("field %d = %v, want %v", i, *field(&cfg), *field(&def))
		}
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Emitter: "sparks", Field: "textures", Err: ErrNoTextures}
	want := `flicker: emitter "sparks": textures: emitter has no textures`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
