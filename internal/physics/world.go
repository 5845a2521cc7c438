package physics

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// IntegrationParameters controls how far a single Step advances the world.
type IntegrationParameters struct {
	Dt float32 // seconds per step
}

func DefaultIntegrationParameters() IntegrationParameters {
	return IntegrationParameters{Dt: 1.0 / 60.0}
}

// World owns every rigid body and collider. It is advanced in fixed
// increments by Step and never reads wall-clock time itself.
type World struct {
	Gravity rl.Vector3
	Params  IntegrationParameters

	bodies    []*RigidBody
	colliders []*Collider
	fixed     []*Collider // colliders attached to fixed bodies

	steps    uint64
	contacts int // contacts resolved during the last step
}

func NewWorld(gravity rl.Vector3, params IntegrationParameters) *World {
	if params.Dt <= 0 {
		params = DefaultIntegrationParameters()
	}
	return &World{
		Gravity:   gravity,
		Params:    params,
		bodies:    make([]*RigidBody, 0),
		colliders: make([]*Collider, 0),
		fixed:     make([]*Collider, 0),
	}
}

// CreateRigidBody inserts a new body described by desc and returns its handle.
func (w *World) CreateRigidBody(desc RigidBodyDesc) *RigidBody {
	b := newRigidBody(len(w.bodies), desc)
	w.bodies = append(w.bodies, b)
	return b
}

// CreateCollider attaches a shape to body. A nil body gets a fixed body at
// the origin, which is how static geometry without its own body is added.
func (w *World) CreateCollider(desc ColliderDesc, body *RigidBody) *Collider {
	if body == nil {
		body = w.CreateRigidBody(FixedBody())
	}
	c := &Collider{
		handle: len(w.colliders),
		desc:   desc,
		body:   body,
	}
	body.colliders = append(body.colliders, c)
	w.colliders = append(w.colliders, c)
	if body.IsFixed() {
		w.fixed = append(w.fixed, c)
	}
	return c
}

func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

func (w *World) Colliders() []*Collider {
	return w.colliders
}

// StepCount returns how many fixed steps have been taken since creation.
func (w *World) StepCount() uint64 {
	return w.steps
}

// ContactCount returns the number of contacts resolved by the last step.
func (w *World) ContactCount() int {
	return w.contacts
}

// Step advances the simulation by exactly Params.Dt.
func (w *World) Step() {
	dt := w.Params.Dt
	w.steps++
	w.contacts = 0

	// 1. Apply gravity and integrate dynamic bodies
	for _, b := range w.bodies {
		if !b.IsDynamic() || b.sleeping {
			continue
		}
		b.integrate(w.Gravity, dt)
	}

	// 2. Dynamic vs fixed contacts
	for _, b := range w.bodies {
		if !b.IsDynamic() || b.sleeping {
			continue
		}
		for _, c := range b.colliders {
			bounds := c.AABB()
			for _, f := range w.fixed {
				if !bounds.Intersects(f.AABB()) {
					continue
				}
				contact, ok := collide(c, f)
				if !ok {
					continue
				}
				w.contacts++
				b.translation = rl.Vector3Add(b.translation, rl.Vector3Scale(contact.Normal, contact.Depth))
				// Average of both surfaces
				friction := (c.Friction() + f.Friction()) / 2
				restitution := (c.Restitution() + f.Restitution()) / 2
				b.applyContact(contact.Normal, friction, restitution)
				bounds = c.AABB()
			}
		}
	}

	// 3. Sleep bodies that have come to rest
	for _, b := range w.bodies {
		if b.trySleep(dt) {
			log.Printf("Physics: body %d asleep at (%.2f, %.2f, %.2f)",
				b.handle, b.translation.X, b.translation.Y, b.translation.Z)
		}
	}
}
