package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Targeting turns pointer rays into ground targets. Rays are only
// honoured while the button is held.
type Targeting struct {
	HalfExtent float32 // x and z are clamped to [-HalfExtent, HalfExtent]
	RestHeight float32 // y of every target

	pressed bool
}

func NewTargeting(halfExtent, restHeight float32) *Targeting {
	return &Targeting{HalfExtent: halfExtent, RestHeight: restHeight}
}

func (t *Targeting) Pressed() bool {
	return t.pressed
}

func (t *Targeting) Press(origin, direction rl.Vector3) (rl.Vector3, bool) {
	t.pressed = true
	return t.Retarget(origin, direction)
}

func (t *Targeting) Drag(origin, direction rl.Vector3) (rl.Vector3, bool) {
	if !t.pressed {
		return rl.Vector3{}, false
	}
	return t.Retarget(origin, direction)
}

func (t *Targeting) Release() {
	t.pressed = false
}

// Retarget intersects the ray with the ground plane and clamps the hit to
// the walkable area. It reports false when the ray never reaches the plane.
func (t *Targeting) Retarget(origin, direction rl.Vector3) (rl.Vector3, bool) {
	hit, ok := IntersectGround(origin, direction)
	if !ok {
		return rl.Vector3{}, false
	}
	return rl.Vector3{
		X: rl.Clamp(hit.X, -t.HalfExtent, t.HalfExtent),
		Y: t.RestHeight,
		Z: rl.Clamp(hit.Z, -t.HalfExtent, t.HalfExtent),
	}, true
}

// IntersectGround returns where the ray crosses y=0. Rays parallel to the
// plane or pointing away from it miss.
func IntersectGround(origin, direction rl.Vector3) (rl.Vector3, bool) {
	if direction.Y > -1e-6 && direction.Y < 1e-6 {
		return rl.Vector3{}, false
	}
	d := -origin.Y / direction.Y
	if d < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(origin, rl.Vector3Scale(direction, d)), true
}
