package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalid is returned by Validate (and Load) when a setting is out of range.
var ErrInvalid = errors.New("invalid config")

const (
	VariantCapsule = "capsule"
	VariantModel   = "model"
)

// Config holds every tunable of the demo. Vectors are stored as arrays so the
// JSON file stays readable.
type Config struct {
	// Simulation
	FixedTimeStep    float32    `json:"fixedTimeStep"`
	MaxStepsPerFrame int        `json:"maxStepsPerFrame"` // 0 = no cap
	Gravity          [3]float32 `json:"gravity"`

	// Ground and player body
	GroundHalfSize    float32    `json:"groundHalfSize"`
	GroundHalfHeight  float32    `json:"groundHalfHeight"`
	GroundFriction    float32    `json:"groundFriction"`
	GroundRestitution float32    `json:"groundRestitution"` // 0 = no bounce
	RestHeight        float32    `json:"restHeight"`
	SpawnPosition     [3]float32 `json:"spawnPosition"`
	CapsuleHalfHeight float32    `json:"capsuleHalfHeight"`
	CapsuleRadius     float32    `json:"capsuleRadius"`
	PlayerFriction    float32    `json:"playerFriction"`

	// Steering
	MoveSpeed     float32 `json:"moveSpeed"`
	StopThreshold float32 `json:"stopThreshold"`

	// Presentation
	OrthoFrustumSize  float32    `json:"orthoFrustumSize"`
	CameraOffset      [3]float32 `json:"cameraOffset"`
	LightOffset       [3]float32 `json:"lightOffset"`
	Variant           string     `json:"variant"`
	ModelPath         string     `json:"modelPath,omitempty"`
	ModelScale        float32    `json:"modelScale"`
	CharacterMaterial string     `json:"characterMaterial,omitempty"`

	// Window
	WindowWidth  int32 `json:"windowWidth"`
	WindowHeight int32 `json:"windowHeight"`
	TargetFPS    int32 `json:"targetFPS"`
	Debug        bool  `json:"debug"`
}

// Default returns the stock demo settings: a 20x20 ground, a capsule resting
// one unit above it, and a camera looking down the (1,1,1) diagonal.
func Default() Config {
	return Config{
		FixedTimeStep:    1.0 / 60.0,
		MaxStepsPerFrame: 0,
		Gravity:          [3]float32{0, -9.81, 0},

		GroundHalfSize:    10,
		GroundHalfHeight:  0.1,
		GroundFriction:    0.5,
		GroundRestitution: 0,
		RestHeight:        1,
		SpawnPosition:     [3]float32{0, 1, 0},
		CapsuleHalfHeight: 0.5,
		CapsuleRadius:     0.5,
		PlayerFriction:    0,

		MoveSpeed:     10,
		StopThreshold: 0.1,

		OrthoFrustumSize:  20,
		CameraOffset:      [3]float32{20, 20, 20},
		LightOffset:       [3]float32{5, 10, 7.5},
		Variant:           VariantCapsule,
		ModelPath:         "assets/models/character.glb",
		ModelScale:        1,
		CharacterMaterial: "assets/materials/character.json",

		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    120,
	}
}

// Load reads a JSON config file on top of Default(). A missing file is not an
// error; malformed JSON or out-of-range values are.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float32
	}{
		{"fixedTimeStep", c.FixedTimeStep},
		{"groundHalfSize", c.GroundHalfSize},
		{"groundHalfHeight", c.GroundHalfHeight},
		{"capsuleRadius", c.CapsuleRadius},
		{"moveSpeed", c.MoveSpeed},
		{"stopThreshold", c.StopThreshold},
		{"orthoFrustumSize", c.OrthoFrustumSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if c.CapsuleHalfHeight < 0 {
		return fmt.Errorf("%w: capsuleHalfHeight must be >= 0, got %v", ErrInvalid, c.CapsuleHalfHeight)
	}
	if c.GroundRestitution < 0 || c.GroundRestitution > 1 {
		return fmt.Errorf("%w: groundRestitution must be in [0, 1], got %v", ErrInvalid, c.GroundRestitution)
	}
	if c.MaxStepsPerFrame < 0 {
		return fmt.Errorf("%w: maxStepsPerFrame must be >= 0, got %d", ErrInvalid, c.MaxStepsPerFrame)
	}
	if c.CameraOffset == [3]float32{} {
		return fmt.Errorf("%w: cameraOffset must not be zero", ErrInvalid)
	}
	if c.Variant != VariantCapsule && c.Variant != VariantModel {
		return fmt.Errorf("%w: variant must be %q or %q, got %q", ErrInvalid, VariantCapsule, VariantModel, c.Variant)
	}
	if c.Variant == VariantModel && c.ModelPath == "" {
		return fmt.Errorf("%w: model variant needs modelPath", ErrInvalid)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Vec3 converts a config array into a raylib vector.
func Vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}
