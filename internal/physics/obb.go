package physics

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an axis-aligned OBB from center and full size.
func NewOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes:     [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}},
	}
}

// toLocal expresses a world point in the box frame, relative to its center.
func (o OBB) toLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

func (o OBB) toWorld(local rl.Vector3) rl.Vector3 {
	p := o.Center
	p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], local.X))
	p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], local.Y))
	p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], local.Z))
	return p
}

// ClosestPoint returns the point of the box (surface or interior) nearest to p.
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	local := o.toLocal(p)
	local.X = rl.Clamp(local.X, -o.HalfSize.X, o.HalfSize.X)
	local.Y = rl.Clamp(local.Y, -o.HalfSize.Y, o.HalfSize.Y)
	local.Z = rl.Clamp(local.Z, -o.HalfSize.Z, o.HalfSize.Z)
	return o.toWorld(local)
}

// Contains reports whether p lies inside the box.
func (o OBB) Contains(p rl.Vector3) bool {
	local := o.toLocal(p)
	return math32.Abs(local.X) <= o.HalfSize.X &&
		math32.Abs(local.Y) <= o.HalfSize.Y &&
		math32.Abs(local.Z) <= o.HalfSize.Z
}

// ExitFace returns the outward face normal nearest to an interior point and
// the distance to that face.
func (o OBB) ExitFace(p rl.Vector3) (normal rl.Vector3, depth float32) {
	local := o.toLocal(p)
	l := [3]float32{local.X, local.Y, local.Z}
	h := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	depth = float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		if d := h[i] - l[i]; d < depth {
			depth = d
			normal = o.Axes[i]
		}
		if d := h[i] + l[i]; d < depth {
			depth = d
			normal = rl.Vector3Negate(o.Axes[i])
		}
	}
	return normal, depth
}

// Bounds returns the axis-aligned box enclosing the OBB.
func (o OBB) Bounds() AABB {
	extent := rl.Vector3{}
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		a := o.Axes[i]
		extent.X += math32.Abs(a.X) * h
		extent.Y += math32.Abs(a.Y) * h
		extent.Z += math32.Abs(a.Z) * h
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, extent),
		Max: rl.Vector3Add(o.Center, extent),
	}
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'
// using the separating axis test. Returns zero vector if no overlap.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math32.MaxFloat32)
	var mtv rl.Vector3

	project := func(o OBB, axis rl.Vector3) float32 {
		return o.HalfSize.X*math32.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
			o.HalfSize.Y*math32.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
			o.HalfSize.Z*math32.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
	}

	// 3 face normals of each box and 9 edge cross products
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axes = append(axes, rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}

	for _, axis := range axes {
		// Parallel edges give a degenerate axis
		if rl.Vector3Length(axis) < 0.0001 {
			continue
		}
		axis = rl.Vector3Normalize(axis)

		dist := rl.Vector3DotProduct(t, axis)
		penetration := project(a, axis) + project(b, axis) - math32.Abs(dist)
		if penetration <= 0 {
			return rl.Vector3Zero()
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}
	return mtv
}
