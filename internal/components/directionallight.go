package components

import (
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight is a sun that trails the character at a fixed offset so
// the shadow it casts always lands next to the character.
type DirectionalLight struct {
	engine.BaseComponent
	Offset    rl.Vector3
	Position  rl.Vector3
	Target    rl.Vector3
	Color     rl.Color
	Intensity float32
}

func NewDirectionalLight(offset rl.Vector3) *DirectionalLight {
	return &DirectionalLight{
		Offset:    offset,
		Position:  offset,
		Color:     rl.White,
		Intensity: 1.0,
	}
}

func (l *DirectionalLight) Follow(target rl.Vector3) {
	l.Position = rl.Vector3Add(target, l.Offset)
	l.Target = target
	if g := l.GetGameObject(); g != nil {
		g.Transform.Position = l.Position
	}
}

// Direction is the unit vector the light travels along.
func (l *DirectionalLight) Direction() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(l.Target, l.Position))
}

// ShadowPoint projects p along the light direction onto the plane y=height.
// It reports false when the light is horizontal.
func (l *DirectionalLight) ShadowPoint(p rl.Vector3, height float32) (rl.Vector3, bool) {
	dir := l.Direction()
	if dir.Y > -1e-4 {
		return rl.Vector3{}, false
	}
	d := (height - p.Y) / dir.Y
	return rl.Vector3Add(p, rl.Vector3Scale(dir, d)), true
}

// Draw renders a small gizmo: the light source and a line to its target.
func (l *DirectionalLight) Draw() {
	g := l.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	rl.DrawSphere(l.Position, 0.25, rl.Yellow)
	rl.DrawLine3D(l.Position, l.Target, rl.Fade(rl.Yellow, 0.6))
}
