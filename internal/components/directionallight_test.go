package components

import (
	"testing"

	"isodemo/internal/camera"
	"isodemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestLightFollowKeepsOffset(t *testing.T) {
	obj := engine.NewGameObject("Sun")
	light := NewDirectionalLight(rl.Vector3{X: 5, Y: 10, Z: 7.5})
	obj.AddComponent(light)

	light.Follow(rl.Vector3{X: 2, Y: 1, Z: -3})

	want := rl.Vector3{X: 7, Y: 11, Z: 4.5}
	if light.Position != want {
		t.Errorf("Expected position %v, got %v", want, light.Position)
	}
	if light.Target != (rl.Vector3{X: 2, Y: 1, Z: -3}) {
		t.Errorf("Expected target at the character, got %v", light.Target)
	}
	if obj.Transform.Position != want {
		t.Errorf("GameObject should mirror the light, got %v", obj.Transform.Position)
	}
}

func TestShadowPointIsStableWhileFollowing(t *testing.T) {
	light := NewDirectionalLight(rl.Vector3{X: 5, Y: 10, Z: 7.5})

	var offsets []rl.Vector3
	for _, p := range []rl.Vector3{{Y: 1}, {X: 4, Y: 1, Z: 4}, {X: -9, Y: 1, Z: 6}} {
		light.Follow(p)
		shadow, ok := light.ShadowPoint(p, 0)
		if !ok {
			t.Fatal("Expected a shadow on the ground")
		}
		if !near(shadow.Y, 0) {
			t.Errorf("Shadow should lie on the ground, got %v", shadow)
		}
		offsets = append(offsets, rl.Vector3Subtract(shadow, p))
	}

	for i := 1; i < len(offsets); i++ {
		if !near(offsets[i].X, offsets[0].X) || !near(offsets[i].Z, offsets[0].Z) {
			t.Errorf("Shadow offset changed from %v to %v", offsets[0], offsets[i])
		}
	}
}

func TestShadowPointHorizontalLight(t *testing.T) {
	light := NewDirectionalLight(rl.Vector3{X: 10})
	light.Follow(rl.Vector3{Y: 1})

	if _, ok := light.ShadowPoint(rl.Vector3{Y: 1}, 0); ok {
		t.Error("Horizontal light should cast no shadow")
	}
}

func TestCameraFollowMirrorsRig(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	cam := NewCamera(camera.New(rl.Vector3{X: 20, Y: 20, Z: 20}, 20, 1280, 720))
	obj.AddComponent(cam)

	cam.Follow(rl.Vector3{X: 1, Y: 1, Z: 1})

	if obj.Transform.Position != (rl.Vector3{X: 21, Y: 21, Z: 21}) {
		t.Errorf("Expected camera object at (21,21,21), got %v", obj.Transform.Position)
	}
	rc := cam.GetRaylibCamera()
	if rc.Target != (rl.Vector3{X: 1, Y: 1, Z: 1}) || rc.Projection != rl.CameraOrthographic {
		t.Errorf("Unexpected raylib camera %+v", rc)
	}
}

func TestCapsuleSegmentFollowsObject(t *testing.T) {
	obj := engine.NewGameObject("Player")
	capsule := NewCapsuleRenderer(0.5, 0.5, rl.Orange)
	obj.AddComponent(capsule)
	obj.SetPose(rl.Vector3{X: 3, Y: 1, Z: -2}, 90)

	start, end := capsule.Segment()

	// Yaw does not tilt the vertical axis
	if !near(start.X, 3) || !near(start.Y, 0.5) || !near(start.Z, -2) {
		t.Errorf("Unexpected start %v", start)
	}
	if !near(end.X, 3) || !near(end.Y, 1.5) || !near(end.Z, -2) {
		t.Errorf("Unexpected end %v", end)
	}
}

func TestCapsuleRendererIsVisual(t *testing.T) {
	var v Visual = NewCapsuleRenderer(0.5, 0.5, rl.Orange)
	if v == nil {
		t.Fatal("Expected a visual")
	}
	var _ Visual = &ModelRenderer{}
}
