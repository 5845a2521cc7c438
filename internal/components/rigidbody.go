package components

import (
	"isodemo/internal/engine"
	"isodemo/internal/physics"
)

// Rigidbody links a GameObject to the physics body that drives it.
// Physics owns the body; the GameObject only mirrors it.
type Rigidbody struct {
	engine.BaseComponent
	Body *physics.RigidBody
}

func NewRigidbody(body *physics.RigidBody) *Rigidbody {
	return &Rigidbody{Body: body}
}

// FindBodyOwner returns the object whose Rigidbody holds body.
func FindBodyOwner(scene *engine.Scene, body *physics.RigidBody) *engine.GameObject {
	for _, g := range scene.GameObjects {
		if rb := engine.GetComponent[*Rigidbody](g); rb != nil && rb.Body == body {
			return g
		}
	}
	return nil
}
