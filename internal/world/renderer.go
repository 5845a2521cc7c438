package world

import (
	"isodemo/internal/components"
	"isodemo/internal/engine"
	"isodemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	markerRadius = 0.35
	shadowRadius = 0.45
	groundLift   = 0.01 // keeps decals above the ground's top face
)

var (
	backgroundColor = rl.NewColor(32, 36, 44, 255)
	markerColor     = rl.NewColor(230, 80, 60, 255)
	shadowColor     = rl.NewColor(0, 0, 0, 90)
)

// Renderer draws a World from its isometric camera.
type Renderer struct {
	Debug     bool // collider wires and the light gizmo
	ShowLight bool

	frustum Frustum
	culled  int
}

func NewRenderer() *Renderer {
	return &Renderer{ShowLight: true}
}

// Culled returns how many objects the last Draw skipped.
func (r *Renderer) Culled() int {
	return r.culled
}

// Draw renders one frame into the current framebuffer. The caller owns
// BeginDrawing/EndDrawing so overlays can be added on top.
func (r *Renderer) Draw(w *World) {
	rig := w.Camera.Rig
	r.frustum = ExtractFrustum(rig.ViewProjection())
	r.culled = 0

	rl.ClearBackground(backgroundColor)
	rl.BeginMode3D(rig.ToRaylib())

	r.drawScene(w.Scene.GameObjects)
	r.drawShadow(w)
	r.drawTarget(w)
	if r.Debug {
		r.drawColliders(w.Physics)
	}

	rl.EndMode3D()
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if engine.GetComponent[engine.Drawable](g) == nil {
			continue
		}
		if light := engine.GetComponent[*components.DirectionalLight](g); light != nil {
			if r.Debug && r.ShowLight {
				g.Draw()
			}
			continue
		}
		if !r.visible(g) {
			r.culled++
			continue
		}
		g.Draw()
	}
}

// visible keeps the ground and anything whose bounding sphere touches the view.
func (r *Renderer) visible(g *engine.GameObject) bool {
	if g.HasTag("ground") {
		return true
	}
	s := g.WorldScale()
	radius := max(s.X, s.Y, s.Z) * 2
	return r.frustum.ContainsSphere(g.WorldPosition(), radius)
}

// drawShadow puts a blob under every object tagged "shadow", cast along the
// scene's directional light when there is one and straight down otherwise.
func (r *Renderer) drawShadow(w *World) {
	light, hasLight := engine.FindComponent[*components.DirectionalLight](w.Scene)
	for _, g := range w.Scene.FindByTag("shadow") {
		pos := g.WorldPosition()
		center := rl.Vector3{X: pos.X, Y: groundLift, Z: pos.Z}
		if hasLight {
			if p, ok := light.ShadowPoint(pos, groundLift); ok {
				center = p
			}
		}
		rl.DrawCylinder(center, shadowRadius, shadowRadius, 0.001, 24, shadowColor)
	}
}

func (r *Renderer) drawTarget(w *World) {
	target, ok := w.State.Steering.Target()
	if !ok {
		return
	}
	center := rl.Vector3{X: target.X, Y: groundLift, Z: target.Z}
	rl.DrawCircle3D(center, markerRadius, rl.Vector3{X: 1}, 90, markerColor)
	rl.DrawCircle3D(center, markerRadius*0.5, rl.Vector3{X: 1}, 90, markerColor)
}

func (r *Renderer) drawColliders(p *physics.World) {
	for _, c := range p.Colliders() {
		color := rl.Green
		if c.Body().IsSleeping() {
			color = rl.DarkGreen
		}
		switch c.Shape() {
		case physics.ShapeCapsule:
			a, b := c.Segment()
			rl.DrawCapsuleWires(a, b, c.Radius(), 8, 4, color)
		default:
			rl.DrawBoundingBox(c.AABB().BoundingBox(), color)
		}
	}
}
