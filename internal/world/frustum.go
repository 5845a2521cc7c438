package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts the planes of a projection*view matrix using the
// Gribb/Hartmann method. Clip space z runs from -1 to 1.
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Rows()

	combine := func(a, b mgl32.Vec4, sign float32) Plane {
		return normalizePlane(Plane{
			normal:   rl.Vector3{X: a[0] + sign*b[0], Y: a[1] + sign*b[1], Z: a[2] + sign*b[2]},
			distance: a[3] + sign*b[3],
		})
	}

	var f Frustum
	f.planes[0] = combine(r3, r0, 1)  // left
	f.planes[1] = combine(r3, r0, -1) // right
	f.planes[2] = combine(r3, r1, 1)  // bottom
	f.planes[3] = combine(r3, r1, -1) // top
	f.planes[4] = combine(r3, r2, 1)  // near
	f.planes[5] = combine(r3, r2, -1) // far
	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
// Returns true if the sphere should be rendered
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		// Distance from center to plane
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		// If sphere is completely behind any plane, it's outside
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
