package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type BodyType int

const (
	BodyDynamic BodyType = iota // moved by gravity, velocity and contacts
	BodyFixed                   // never moves (ground, walls)
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, body might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

// RigidBodyDesc describes a body before it is inserted into a World.
// Use DynamicBody or FixedBody and chain the setters.
type RigidBodyDesc struct {
	Type            BodyType
	Translation     rl.Vector3
	RotationsLocked bool
	GravityScale    float32
	CanSleep        bool
}

func DynamicBody() RigidBodyDesc {
	return RigidBodyDesc{
		Type:         BodyDynamic,
		GravityScale: 1,
		CanSleep:     true,
	}
}

func FixedBody() RigidBodyDesc {
	return RigidBodyDesc{Type: BodyFixed}
}

func (d RigidBodyDesc) SetTranslation(x, y, z float32) RigidBodyDesc {
	d.Translation = rl.Vector3{X: x, Y: y, Z: z}
	return d
}

// LockRotations freezes all rotational degrees of freedom. Contacts only
// exchange linear impulses, so a locked body keeps its orientation for life.
func (d RigidBodyDesc) LockRotations() RigidBodyDesc {
	d.RotationsLocked = true
	return d
}

func (d RigidBodyDesc) SetCanSleep(canSleep bool) RigidBodyDesc {
	d.CanSleep = canSleep
	return d
}

type RigidBody struct {
	handle          int
	bodyType        BodyType
	translation     rl.Vector3
	linvel          rl.Vector3
	rotationsLocked bool
	gravityScale    float32
	colliders       []*Collider

	// Sleeping bodies skip integration until woken
	canSleep   bool
	sleeping   bool
	sleepTimer float32
}

func newRigidBody(handle int, desc RigidBodyDesc) *RigidBody {
	return &RigidBody{
		handle:          handle,
		bodyType:        desc.Type,
		translation:     desc.Translation,
		rotationsLocked: desc.RotationsLocked,
		gravityScale:    desc.GravityScale,
		canSleep:        desc.CanSleep && desc.Type == BodyDynamic,
	}
}

func (b *RigidBody) Handle() int { return b.handle }

func (b *RigidBody) IsFixed() bool { return b.bodyType == BodyFixed }

func (b *RigidBody) IsDynamic() bool { return b.bodyType == BodyDynamic }

func (b *RigidBody) Colliders() []*Collider { return b.colliders }

// Translation returns the current world position of the body.
func (b *RigidBody) Translation() rl.Vector3 {
	return b.translation
}

func (b *RigidBody) SetTranslation(t rl.Vector3, wake bool) {
	b.translation = t
	if wake {
		b.WakeUp()
	}
}

func (b *RigidBody) Linvel() rl.Vector3 {
	return b.linvel
}

// SetLinvel commands the linear velocity. With wake set, a sleeping body is
// made active so the command takes effect on the next step.
func (b *RigidBody) SetLinvel(v rl.Vector3, wake bool) {
	if b.bodyType == BodyFixed {
		return
	}
	b.linvel = v
	if wake {
		b.WakeUp()
	}
}

func (b *RigidBody) RotationsLocked() bool {
	return b.rotationsLocked
}

func (b *RigidBody) IsSleeping() bool {
	return b.sleeping
}

// WakeUp forces the body out of sleep state
func (b *RigidBody) WakeUp() {
	b.sleeping = false
	b.sleepTimer = 0
}

// Sleep puts the body to sleep immediately and zeroes its velocity.
func (b *RigidBody) Sleep() {
	if !b.IsDynamic() {
		return
	}
	b.sleeping = true
	b.linvel = rl.Vector3{}
}

// trySleep counts time spent below the velocity thresholds and sends the body
// to sleep once it has been slow for long enough. Returns true on the step the
// body falls asleep.
func (b *RigidBody) trySleep(dt float32) bool {
	if !b.canSleep || b.sleeping {
		return false
	}

	if rl.Vector3Length(b.linvel) >= SleepVelocityThreshold {
		b.sleepTimer = 0
		return false
	}

	b.sleepTimer += dt
	// Extra damping near rest reduces jitter
	b.linvel = rl.Vector3Scale(b.linvel, 0.9)

	if b.sleepTimer >= SleepTimeThreshold {
		b.Sleep()
		return true
	}
	return false
}

// integrate applies gravity and advances position by dt.
func (b *RigidBody) integrate(gravity rl.Vector3, dt float32) {
	b.linvel = rl.Vector3Add(b.linvel, rl.Vector3Scale(gravity, b.gravityScale*dt))
	b.translation = rl.Vector3Add(b.translation, rl.Vector3Scale(b.linvel, dt))
}

// applyContact removes the velocity component pointing into the contact
// normal and applies Coulomb friction bounded by the normal impulse.
func (b *RigidBody) applyContact(normal rl.Vector3, friction, restitution float32) {
	vn := rl.Vector3DotProduct(b.linvel, normal)
	if vn >= 0 {
		return
	}

	jn := -vn
	b.linvel = rl.Vector3Add(b.linvel, rl.Vector3Scale(normal, jn*(1+restitution)))

	tangent := rl.Vector3Subtract(b.linvel, rl.Vector3Scale(normal, rl.Vector3DotProduct(b.linvel, normal)))
	tangentLen := rl.Vector3Length(tangent)
	if tangentLen < 1e-6 {
		return
	}
	drop := friction * jn
	if tangentLen <= drop {
		b.linvel = rl.Vector3Subtract(b.linvel, tangent)
	} else {
		b.linvel = rl.Vector3Subtract(b.linvel, rl.Vector3Scale(tangent, drop/tangentLen))
	}
}
