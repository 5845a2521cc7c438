package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Posable is a visual that mirrors the body's position and facing.
type Posable interface {
	SetPose(position rl.Vector3, yaw float32)
}

// Follower keeps a fixed offset from a followed point and looks at it.
type Follower interface {
	Follow(target rl.Vector3)
}

// FrameSync copies the authoritative body translation into the objects that
// are drawn. Nil members are skipped; the capsule variant has no Light.
type FrameSync struct {
	Character Posable
	Camera    Follower
	Light     Follower
}

func (f *FrameSync) Sync(translation rl.Vector3, yaw float32) {
	if f.Character != nil {
		f.Character.SetPose(translation, yaw)
	}
	if f.Camera != nil {
		f.Camera.Follow(translation)
	}
	if f.Light != nil {
		f.Light.Follow(translation)
	}
}
