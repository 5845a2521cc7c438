package components

import (
	"isodemo/internal/camera"
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera puts an isometric rig in the scene. Its GameObject mirrors the rig
// position so the camera shows up in the hierarchy like any other object.
type Camera struct {
	engine.BaseComponent
	Rig *camera.IsoCamera
}

func NewCamera(rig *camera.IsoCamera) *Camera {
	return &Camera{Rig: rig}
}

// Follow moves the rig to target+Offset, looking at target.
func (c *Camera) Follow(target rl.Vector3) {
	c.Rig.Follow(target)
	if g := c.GetGameObject(); g != nil {
		g.Transform.Position = c.Rig.Position
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return c.Rig.ToRaylib()
}
