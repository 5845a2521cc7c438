package components

import (
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws an unrotated box at the object's world position.
// Static scenery uses it; the ground is a box matching its collider.
type MeshRenderer struct {
	engine.BaseComponent
	Color     rl.Color
	Size      rl.Vector3
	WireColor rl.Color // drawn over the box when alpha > 0
}

func NewMeshRenderer(color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		Color: color,
		Size:  size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	rl.DrawCubeV(pos, size, m.Color)
	if m.WireColor.A > 0 {
		rl.DrawCubeWiresV(pos, size, m.WireColor)
	}
}
