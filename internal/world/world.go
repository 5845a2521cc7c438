package world

import (
	"fmt"
	"log"

	"isodemo/internal/assets"
	"isodemo/internal/camera"
	"isodemo/internal/components"
	"isodemo/internal/config"
	"isodemo/internal/engine"
	"isodemo/internal/physics"
	"isodemo/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties the scene graph to the physics world and the frame state.
// Physics is authoritative; the scene only mirrors it.
type World struct {
	Config  config.Config
	Scene   *engine.Scene
	Physics *physics.World
	State   *sim.State

	Player *engine.GameObject
	Body   *physics.RigidBody
	Ground *engine.GameObject
	Camera *components.Camera
	Light  *components.DirectionalLight // nil in the capsule variant
	Visual components.Visual

	OnRetarget engine.EventWithArg[rl.Vector3]
	OnArrived  engine.Event

	width, height int32
}

// New builds the physics world and the scene for cfg. The model variant
// loads its model here, so the window must already be open for it.
func New(cfg config.Config, width, height int32) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Config: cfg,
		Scene:  engine.NewScene("Main"),
		width:  width,
		height: height,
	}

	w.Physics = physics.NewWorld(config.Vec3(cfg.Gravity), physics.IntegrationParameters{Dt: cfg.FixedTimeStep})
	w.createGround()
	w.createPlayer()

	if err := w.createVisual(); err != nil {
		return nil, err
	}

	w.createCamera()
	if cfg.Variant == config.VariantModel {
		w.createLight()
	}

	sync := &sim.FrameSync{Character: w.Player, Camera: w.Camera}
	if w.Light != nil {
		sync.Light = w.Light
	}
	w.State = sim.NewState(cfg, w.Body, sync)

	// Place everything before the first frame is drawn
	sync.Sync(w.Body.Translation(), 0)

	w.Scene.Start()
	log.Printf("Game: world ready (%s variant, %d bodies, %d colliders)",
		cfg.Variant, len(w.Physics.Bodies()), len(w.Physics.Colliders()))
	return w, nil
}

func (w *World) createGround() {
	cfg := w.Config
	body := w.Physics.CreateRigidBody(physics.FixedBody().SetTranslation(0, -cfg.GroundHalfHeight, 0))
	w.Physics.CreateCollider(
		physics.Cuboid(cfg.GroundHalfSize, cfg.GroundHalfHeight, cfg.GroundHalfSize).
			SetFriction(cfg.GroundFriction).
			SetRestitution(cfg.GroundRestitution),
		body,
	)

	ground := engine.NewGameObject("Ground")
	ground.Tags = []string{"ground"}
	ground.Transform.Position = body.Translation()
	mesh := components.NewMeshRenderer(rl.LightGray, rl.Vector3{
		X: cfg.GroundHalfSize * 2,
		Y: cfg.GroundHalfHeight * 2,
		Z: cfg.GroundHalfSize * 2,
	})
	mesh.WireColor = rl.Gray
	ground.AddComponent(mesh)
	ground.AddComponent(components.NewRigidbody(body))

	w.Ground = ground
	w.Scene.AddGameObject(ground)
}

func (w *World) createPlayer() {
	cfg := w.Config
	sp := cfg.SpawnPosition
	w.Body = w.Physics.CreateRigidBody(physics.DynamicBody().SetTranslation(sp[0], sp[1], sp[2]).LockRotations())
	w.Physics.CreateCollider(
		physics.Capsule(cfg.CapsuleHalfHeight, cfg.CapsuleRadius).SetFriction(cfg.PlayerFriction),
		w.Body,
	)

	w.Player = engine.NewGameObject("Player")
	w.Player.Tags = []string{"player", "shadow"}
	w.Player.AddComponent(components.NewRigidbody(w.Body))
	w.Scene.AddGameObject(w.Player)
}

// createVisual hangs the character visual under the player as a child, so
// it inherits the body pose and keeps its own offset and scale.
func (w *World) createVisual() error {
	cfg := w.Config
	material := assets.LoadMaterial(cfg.CharacterMaterial)

	obj := engine.NewGameObject("PlayerVisual")
	obj.Tags = []string{"visual"}

	switch cfg.Variant {
	case config.VariantModel:
		r, err := components.NewModelRendererFromFile(cfg.ModelPath, material.Color)
		if err != nil {
			return fmt.Errorf("load character: %w", err)
		}
		// Models stand on their origin, the body is centred on the capsule
		obj.Transform.Position = rl.Vector3{Y: -(cfg.CapsuleHalfHeight + cfg.CapsuleRadius)}
		obj.Transform.Scale = rl.Vector3{X: cfg.ModelScale, Y: cfg.ModelScale, Z: cfg.ModelScale}
		w.Visual = r
	default:
		w.Visual = components.NewCapsuleRenderer(cfg.CapsuleHalfHeight, cfg.CapsuleRadius, material.Color)
	}

	obj.AddComponent(w.Visual)
	w.Player.AddChild(obj)
	w.Scene.AddGameObject(obj)
	return nil
}

func (w *World) createCamera() {
	cfg := w.Config
	rig := camera.New(config.Vec3(cfg.CameraOffset), cfg.OrthoFrustumSize, w.width, w.height)

	obj := engine.NewGameObject("Camera")
	obj.Tags = []string{"camera"}
	w.Camera = components.NewCamera(rig)
	obj.AddComponent(w.Camera)
	w.Scene.AddGameObject(obj)
}

func (w *World) createLight() {
	obj := engine.NewGameObject("Sun")
	obj.Tags = []string{"light"}
	w.Light = components.NewDirectionalLight(config.Vec3(w.Config.LightOffset))
	obj.AddComponent(w.Light)
	w.Scene.AddGameObject(obj)
}

// Resize keeps the projection in step with the window.
func (w *World) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	w.Camera.Rig.Resize(width, height)
}

// PointerRay returns the world ray under a window pixel.
func (w *World) PointerRay(x, y float32) (origin, direction rl.Vector3) {
	ndcX, ndcY := camera.ScreenToNDC(x, y, w.width, w.height)
	return w.Camera.Rig.Ray(ndcX, ndcY)
}

func (w *World) Press(x, y float32) bool {
	ok := w.State.Press(w.PointerRay(x, y))
	w.notifyTarget(ok)
	return ok
}

func (w *World) Drag(x, y float32) bool {
	ok := w.State.Drag(w.PointerRay(x, y))
	w.notifyTarget(ok)
	return ok
}

func (w *World) Release() {
	w.State.Release()
}

func (w *World) notifyTarget(ok bool) {
	if !ok {
		return
	}
	if target, has := w.State.Steering.Target(); has {
		w.OnRetarget.Invoke(target)
	}
}

// Update runs one frame of simulation and scene logic.
func (w *World) Update(dt float32) sim.FrameReport {
	report := w.State.Advance(dt, w.Physics)
	if report.Steering == sim.SteeringArrived {
		w.OnArrived.Invoke()
	}
	w.Scene.Update(dt)
	return report
}

// Hover reports the collider under a window pixel and the object owning it.
func (w *World) Hover(x, y float32) (physics.RaycastHit, *engine.GameObject, bool) {
	origin, dir := w.PointerRay(x, y)
	hit, ok := w.Physics.CastRay(origin, dir, 1000)
	if !ok {
		return physics.RaycastHit{}, nil, false
	}
	return hit, components.FindBodyOwner(w.Scene, hit.Collider.Body()), true
}

// Unload releases the visual and the asset cache and detaches event
// listeners registered by the host.
func (w *World) Unload() {
	w.OnRetarget.RemoveAllListeners()
	w.OnArrived.RemoveAllListeners()
	if w.Visual != nil {
		w.Visual.Unload()
	}
	assets.Unload()
}
