package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ShapeType int

const (
	ShapeCuboid ShapeType = iota
	ShapeCapsule
)

func (s ShapeType) String() string {
	switch s {
	case ShapeCuboid:
		return "cuboid"
	case ShapeCapsule:
		return "capsule"
	}
	return "unknown"
}

// ColliderDesc describes a collision shape before it is attached to a body.
type ColliderDesc struct {
	Shape       ShapeType
	HalfExtents rl.Vector3 // cuboid
	HalfHeight  float32    // capsule: half the length of the inner segment
	Radius      float32    // capsule
	Friction    float32
	Restitution float32
}

// Cuboid describes a box with the given half extents.
func Cuboid(hx, hy, hz float32) ColliderDesc {
	return ColliderDesc{
		Shape:       ShapeCuboid,
		HalfExtents: rl.Vector3{X: hx, Y: hy, Z: hz},
		Friction:    0.5,
	}
}

// Capsule describes a capsule aligned with the body's local Y axis. Its total
// height is 2*(halfHeight+radius).
func Capsule(halfHeight, radius float32) ColliderDesc {
	return ColliderDesc{
		Shape:      ShapeCapsule,
		HalfHeight: halfHeight,
		Radius:     radius,
		Friction:   0.5,
	}
}

func (d ColliderDesc) SetFriction(f float32) ColliderDesc {
	d.Friction = f
	return d
}

func (d ColliderDesc) SetRestitution(r float32) ColliderDesc {
	d.Restitution = r
	return d
}

type Collider struct {
	handle int
	desc   ColliderDesc
	body   *RigidBody
}

func (c *Collider) Handle() int          { return c.handle }
func (c *Collider) Shape() ShapeType     { return c.desc.Shape }
func (c *Collider) Body() *RigidBody     { return c.body }
func (c *Collider) Friction() float32    { return c.desc.Friction }
func (c *Collider) Restitution() float32 { return c.desc.Restitution }
func (c *Collider) Radius() float32      { return c.desc.Radius }
func (c *Collider) HalfHeight() float32  { return c.desc.HalfHeight }
func (c *Collider) HalfExtents() rl.Vector3 {
	return c.desc.HalfExtents
}

// Center returns the world-space center of the shape.
func (c *Collider) Center() rl.Vector3 {
	return c.body.translation
}

// OBB returns the box of a cuboid collider. Bodies never rotate, so it is
// always axis aligned.
func (c *Collider) OBB() OBB {
	return NewOBB(c.Center(), rl.Vector3Scale(c.desc.HalfExtents, 2))
}

// Segment returns the end points of a capsule's inner segment, which runs
// along world Y.
func (c *Collider) Segment() (a, b rl.Vector3) {
	center := c.Center()
	half := rl.Vector3{Y: c.desc.HalfHeight}
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

// AABB returns the world-space bounds of the shape.
func (c *Collider) AABB() AABB {
	switch c.desc.Shape {
	case ShapeCapsule:
		a, b := c.Segment()
		r := rl.Vector3{X: c.desc.Radius, Y: c.desc.Radius, Z: c.desc.Radius}
		return AABB{
			Min: rl.Vector3Subtract(rl.Vector3Min(a, b), r),
			Max: rl.Vector3Add(rl.Vector3Max(a, b), r),
		}
	default:
		return c.OBB().Bounds()
	}
}
