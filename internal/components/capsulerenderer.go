package components

import (
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CapsuleRenderer draws a primitive capsule matching the player collider.
type CapsuleRenderer struct {
	engine.BaseComponent
	HalfHeight float32
	Radius     float32
	Color      rl.Color
	Wires      bool
}

func NewCapsuleRenderer(halfHeight, radius float32, color rl.Color) *CapsuleRenderer {
	return &CapsuleRenderer{
		HalfHeight: halfHeight,
		Radius:     radius,
		Color:      color,
	}
}

// Segment returns the world-space end points of the capsule axis.
func (c *CapsuleRenderer) Segment() (start, end rl.Vector3) {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}
	}
	wt := g.WorldTransform()
	axis := rl.Vector3Transform(rl.Vector3{Y: c.HalfHeight * wt.Scale.Y}, wt.RotationMatrix())
	return rl.Vector3Subtract(wt.Position, axis), rl.Vector3Add(wt.Position, axis)
}

func (c *CapsuleRenderer) Draw() {
	g := c.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	start, end := c.Segment()
	rl.DrawCapsule(start, end, c.Radius, 16, 8, c.Color)
	if c.Wires {
		rl.DrawCapsuleWires(start, end, c.Radius, 16, 8, rl.Fade(rl.Black, 0.3))
	}
}

func (c *CapsuleRenderer) Unload() {}
