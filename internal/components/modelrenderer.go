package components

import (
	"fmt"

	"isodemo/internal/assets"
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a model from the asset cache at its object's world
// transform. Offset and scale come from the object, not the renderer.
type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
}

// NewModelRendererFromFile loads the model through the asset cache. A model
// that cannot be loaded is a startup error for the model variant.
func NewModelRendererFromFile(path string, color rl.Color) (*ModelRenderer, error) {
	model, err := assets.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("model renderer: %w", err)
	}
	return &ModelRenderer{
		Model: model,
		Color: color,
	}, nil
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = g.WorldTransform().Matrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

// Unload is a no-op, the asset manager owns the model.
func (m *ModelRenderer) Unload() {}
