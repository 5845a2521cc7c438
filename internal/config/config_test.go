package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}

	if cfg.GroundHalfSize != 10 {
		t.Errorf("Expected ground half size 10, got %v", cfg.GroundHalfSize)
	}
	if cfg.MoveSpeed != 10 {
		t.Errorf("Expected move speed 10, got %v", cfg.MoveSpeed)
	}
	if cfg.StopThreshold != 0.1 {
		t.Errorf("Expected stop threshold 0.1, got %v", cfg.StopThreshold)
	}
	if cfg.CapsuleHalfHeight+cfg.CapsuleRadius != cfg.RestHeight {
		t.Errorf("Capsule should rest at %v, half height + radius = %v",
			cfg.RestHeight, cfg.CapsuleHalfHeight+cfg.CapsuleRadius)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero step", func(c *Config) { c.FixedTimeStep = 0 }},
		{"negative speed", func(c *Config) { c.MoveSpeed = -1 }},
		{"zero threshold", func(c *Config) { c.StopThreshold = 0 }},
		{"zero ground", func(c *Config) { c.GroundHalfSize = 0 }},
		{"zero frustum", func(c *Config) { c.OrthoFrustumSize = 0 }},
		{"negative step cap", func(c *Config) { c.MaxStepsPerFrame = -2 }},
		{"bouncy ground", func(c *Config) { c.GroundRestitution = 1.5 }},
		{"zero camera offset", func(c *Config) { c.CameraOffset = [3]float32{} }},
		{"unknown variant", func(c *Config) { c.Variant = "sprite" }},
		{"model without path", func(c *Config) { c.Variant = VariantModel; c.ModelPath = "" }},
		{"zero window", func(c *Config) { c.WindowWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}
	if cfg != Default() {
		t.Error("Missing file should yield Default()")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	data := `{"moveSpeed": 4, "maxStepsPerFrame": 5, "variant": "model", "cameraOffset": [10, 12, 10]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MoveSpeed != 4 {
		t.Errorf("Expected move speed 4, got %v", cfg.MoveSpeed)
	}
	if cfg.MaxStepsPerFrame != 5 {
		t.Errorf("Expected step cap 5, got %d", cfg.MaxStepsPerFrame)
	}
	if cfg.Variant != VariantModel {
		t.Errorf("Expected model variant, got %q", cfg.Variant)
	}
	if cfg.CameraOffset != [3]float32{10, 12, 10} {
		t.Errorf("Expected camera offset [10 12 10], got %v", cfg.CameraOffset)
	}
	// Untouched fields keep their defaults
	if cfg.StopThreshold != Default().StopThreshold {
		t.Errorf("Expected default stop threshold, got %v", cfg.StopThreshold)
	}
}

func TestLoadRejectsMalformedAndInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected parse error for malformed JSON")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"moveSpeed": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	cfg := Default()
	cfg.Debug = true
	cfg.MaxStepsPerFrame = 8

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}

func TestVec3(t *testing.T) {
	v := Vec3([3]float32{1, 2, 3})
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Expected (1,2,3), got %v", v)
	}
}
