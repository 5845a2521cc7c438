package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes how to separate a moving collider from a fixed one.
// Pushing the moving body by Normal*Depth removes the overlap.
type Contact struct {
	Normal rl.Vector3
	Depth  float32
}

// segmentIterations bounds the alternating projection between the capsule
// segment and the box.
const segmentIterations = 4

// collide tests a collider on a dynamic body against a fixed cuboid.
// Other shape pairs are not simulated.
func collide(moving, fixed *Collider) (Contact, bool) {
	if fixed.Shape() != ShapeCuboid {
		return Contact{}, false
	}

	box := fixed.OBB()
	switch moving.Shape() {
	case ShapeCapsule:
		a, b := moving.Segment()
		return capsuleVsOBB(a, b, moving.Radius(), box)
	case ShapeCuboid:
		push := moving.OBB().ResolveOBB(box)
		depth := rl.Vector3Length(push)
		if depth < 0.0001 {
			return Contact{}, false
		}
		return Contact{Normal: rl.Vector3Scale(push, 1/depth), Depth: depth}, true
	}
	return Contact{}, false
}

func capsuleVsOBB(a, b rl.Vector3, radius float32, box OBB) (Contact, bool) {
	// Closest pair between segment and box by alternating projection
	p := rl.Vector3Lerp(a, b, 0.5)
	var q rl.Vector3
	for i := 0; i < segmentIterations; i++ {
		q = box.ClosestPoint(p)
		p = closestPointOnSegment(a, b, q)
	}
	q = box.ClosestPoint(p)

	diff := rl.Vector3Subtract(p, q)
	dist := rl.Vector3Length(diff)
	if dist >= radius {
		return Contact{}, false
	}

	if dist > 1e-5 {
		return Contact{
			Normal: rl.Vector3Scale(diff, 1/dist),
			Depth:  radius - dist,
		}, true
	}

	// Segment point is inside the box: leave through the nearest face
	normal, depth := box.ExitFace(p)
	return Contact{Normal: normal, Depth: depth + radius}, true
}

func closestPointOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq < 1e-12 {
		return a
	}
	t := rl.Clamp(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/lenSq, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}
