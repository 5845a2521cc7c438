package physics

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Collider *Collider
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// CastRay returns the closest collider hit by the ray within maxDistance.
func (w *World) CastRay(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if rl.Vector3Length(direction) < 1e-6 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	for _, c := range w.colliders {
		var t float32
		var ok bool
		switch c.Shape() {
		case ShapeCuboid:
			t, ok = raycastOBB(origin, direction, c.OBB())
		case ShapeCapsule:
			a, b := c.Segment()
			t, ok = raycastCapsule(origin, direction, a, b, c.Radius())
		}
		if !ok || t > closest.Distance {
			continue
		}

		point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		closest = RaycastHit{
			Collider: c,
			Point:    point,
			Normal:   surfaceNormal(c, point),
			Distance: t,
		}
		hit = true
	}

	return closest, hit
}

// raycastOBB runs the slab test in the box frame.
func raycastOBB(origin, direction rl.Vector3, box OBB) (float32, bool) {
	o := box.toLocal(origin)
	d := rl.Vector3{
		X: rl.Vector3DotProduct(direction, box.Axes[0]),
		Y: rl.Vector3DotProduct(direction, box.Axes[1]),
		Z: rl.Vector3DotProduct(direction, box.Axes[2]),
	}
	oa := [3]float32{o.X, o.Y, o.Z}
	da := [3]float32{d.X, d.Y, d.Z}
	ha := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		if math32.Abs(da[i]) < 1e-8 {
			if oa[i] < -ha[i] || oa[i] > ha[i] {
				return 0, false
			}
			continue
		}
		t1 := (-ha[i] - oa[i]) / da[i]
		t2 := (ha[i] - oa[i]) / da[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		// Origin inside the box
		return tmax, true
	}
	return tmin, true
}

// raycastCapsule intersects a normalized ray with the capsule around segment a-b.
func raycastCapsule(origin, direction, a, b rl.Vector3, radius float32) (float32, bool) {
	ba := rl.Vector3Subtract(b, a)
	oa := rl.Vector3Subtract(origin, a)

	baba := rl.Vector3DotProduct(ba, ba)
	bard := rl.Vector3DotProduct(ba, direction)
	baoa := rl.Vector3DotProduct(ba, oa)
	rdoa := rl.Vector3DotProduct(direction, oa)
	oaoa := rl.Vector3DotProduct(oa, oa)

	// Cylinder part, skipped when the ray runs along the axis
	qa := baba - bard*bard
	if qa > 1e-8 {
		qb := baba*rdoa - baoa*bard
		qc := baba*oaoa - baoa*baoa - radius*radius*baba
		h := qb*qb - qa*qc
		if h >= 0 {
			t := (-qb - math32.Sqrt(h)) / qa
			y := baoa + t*bard
			if t >= 0 && y > 0 && y < baba {
				return t, true
			}
		}
	}

	// Hemispherical caps
	best := float32(-1)
	for _, center := range [2]rl.Vector3{a, b} {
		if t, ok := raycastSphere(origin, direction, center, radius); ok && (best < 0 || t < best) {
			best = t
		}
	}
	return best, best >= 0
}

func raycastSphere(origin, direction, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	h := b*b - c
	if h < 0 {
		return 0, false
	}
	t := -b - math32.Sqrt(h)
	if t < 0 {
		t = -b + math32.Sqrt(h)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

func surfaceNormal(c *Collider, point rl.Vector3) rl.Vector3 {
	switch c.Shape() {
	case ShapeCapsule:
		a, b := c.Segment()
		axisPoint := closestPointOnSegment(a, b, point)
		return rl.Vector3Normalize(rl.Vector3Subtract(point, axisPoint))
	default:
		box := c.OBB()
		local := box.toLocal(point)
		// Face whose plane the point lies closest to
		l := [3]float32{local.X, local.Y, local.Z}
		h := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}
		best := float32(math32.MaxFloat32)
		var normal rl.Vector3
		for i := 0; i < 3; i++ {
			if d := math32.Abs(h[i] - l[i]); d < best {
				best = d
				normal = box.Axes[i]
			}
			if d := math32.Abs(h[i] + l[i]); d < best {
				best = d
				normal = rl.Vector3Negate(box.Axes[i])
			}
		}
		return normal
	}
}
