package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.01
	farPlane  = 1000.0
)

// IsoCamera is an orthographic camera that looks at its target from a fixed
// offset. FrustumSize is the vertical extent of the view volume in world
// units; the horizontal extent follows the window aspect.
type IsoCamera struct {
	Offset      rl.Vector3
	FrustumSize float32
	Aspect      float32

	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
}

func New(offset rl.Vector3, frustumSize float32, width, height int32) *IsoCamera {
	c := &IsoCamera{
		Offset:      offset,
		FrustumSize: frustumSize,
		Aspect:      1,
		Position:    offset,
		Up:          rl.Vector3{X: 0, Y: 1, Z: 0},
	}
	c.Resize(width, height)
	return c
}

// Resize recomputes the aspect ratio. The vertical extent never changes, so
// world-space size on screen is independent of the window height.
func (c *IsoCamera) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Bounds returns the orthographic view volume edges around the view axis.
func (c *IsoCamera) Bounds() (left, right, bottom, top float32) {
	halfW := c.FrustumSize * c.Aspect / 2
	halfH := c.FrustumSize / 2
	return -halfW, halfW, -halfH, halfH
}

// Follow places the camera at target+Offset looking at target.
func (c *IsoCamera) Follow(target rl.Vector3) {
	c.Position = rl.Vector3Add(target, c.Offset)
	c.Target = target
}

func (c *IsoCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(toMgl(c.Position), toMgl(c.Target), toMgl(c.Up))
}

func (c *IsoCamera) Projection() mgl32.Mat4 {
	left, right, bottom, top := c.Bounds()
	return mgl32.Ortho(left, right, bottom, top, nearPlane, farPlane)
}

func (c *IsoCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Ray returns the world-space ray through the given normalized device
// coordinates. For an orthographic camera every ray shares the view
// direction and only the origin moves.
func (c *IsoCamera) Ray(ndcX, ndcY float32) (origin, direction rl.Vector3) {
	inv := c.ViewProjection().Inv()

	near := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return fromMgl(near), rl.Vector3Normalize(fromMgl(far.Sub(near)))
}

// ToRaylib converts the rig into the camera raylib draws with.
func (c *IsoCamera) ToRaylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.FrustumSize,
		Projection: rl.CameraOrthographic,
	}
}

// ScreenToNDC maps a pixel position to [-1, 1] with +Y up.
func ScreenToNDC(x, y float32, width, height int32) (float32, float32) {
	return 2*x/float32(width) - 1, 1 - 2*y/float32(height)
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return p.Vec3()
}

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
