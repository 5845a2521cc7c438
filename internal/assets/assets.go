package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrModelLoad is returned when a model file is missing or raylib could
// not build a usable model from it.
var ErrModelLoad = errors.New("model load failed")

// Material defines surface properties for rendering
type Material struct {
	Name      string
	Color     rl.Color
	Metallic  float32
	Roughness float32
	Emissive  float32
}

// materialDef is the JSON format for material files
type materialDef struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Metallic  float32 `json:"metallic"`
	Roughness float32 `json:"roughness"`
	Emissive  float32 `json:"emissive"`
}

var manager *Manager

type Manager struct {
	models    map[string]rl.Model
	materials map[string]*Material
}

// Color name mapping for materials
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Maroon":    rl.Maroon,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// DefaultMaterial is used when no material file is configured or it cannot be read.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "default",
		Color:     rl.Orange,
		Roughness: 0.5,
	}
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func Init() {
	manager = &Manager{
		models:    make(map[string]rl.Model),
		materials: make(map[string]*Material),
	}
}

// LoadModel loads a model once and caches it. The window must already be
// open because raylib uploads meshes to the GPU while loading.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("%w: %s: %v", ErrModelLoad, path, err)
	}

	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return rl.Model{}, fmt.Errorf("%w: %s: no usable meshes", ErrModelLoad, path)
	}

	log.Printf("Assets: loaded model %s (%d meshes)", path, model.MeshCount)
	manager.models[path] = model
	return model, nil
}

// LoadMaterial loads a material from a JSON file, caching it for reuse.
// Unreadable files fall back to DefaultMaterial.
func LoadMaterial(path string) *Material {
	if manager == nil {
		Init()
	}
	if path == "" {
		return DefaultMaterial()
	}

	if material, exists := manager.materials[path]; exists {
		return material
	}

	material, err := parseMaterial(path)
	if err != nil {
		log.Printf("Assets: using default material: %v", err)
		return DefaultMaterial()
	}

	manager.materials[path] = material
	return material
}

func parseMaterial(path string) (*Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Material{
		Name:      def.Name,
		Color:     LookupColor(def.Color),
		Metallic:  def.Metallic,
		Roughness: def.Roughness,
		Emissive:  def.Emissive,
	}, nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[string]rl.Model)
	manager.materials = make(map[string]*Material)
}
