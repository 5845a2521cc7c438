package components

import (
	"isodemo/internal/engine"
)

// Visual is the drawable stand-in for the player body. The capsule variant
// uses CapsuleRenderer and the model variant uses ModelRenderer.
type Visual interface {
	engine.Component
	engine.Drawable
	Unload()
}
