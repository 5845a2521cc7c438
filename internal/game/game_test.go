package game

import (
	"strings"
	"testing"
	"time"

	"isodemo/internal/config"
	"isodemo/internal/engine"
	"isodemo/internal/physics"
	"isodemo/internal/sim"
	"isodemo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDropLogRateLimited(t *testing.T) {
	var d dropLog
	start := time.Unix(100, 0)

	if d.Record(0, start) {
		t.Error("Nothing dropped, nothing to log")
	}
	if !d.Record(3, start) {
		t.Fatal("First drop should be logged")
	}
	if n := d.Flush(); n != 3 {
		t.Errorf("Expected 3 pending, got %d", n)
	}

	if d.Record(2, start.Add(500*time.Millisecond)) {
		t.Error("Second drop within a second should be held back")
	}
	if !d.Record(1, start.Add(time.Second)) {
		t.Fatal("Drop a second later should be logged")
	}
	if n := d.Flush(); n != 3 {
		t.Errorf("Expected held drops to be batched, got %d", n)
	}
}

func TestNewGameUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true

	g := New(cfg)
	if !g.DebugMode {
		t.Error("Debug flag should carry over from config")
	}
	if g.Renderer == nil || g.Overlay == nil {
		t.Error("Renderer and overlay should be ready before Run")
	}
	if g.World != nil {
		t.Error("World must wait for the window")
	}
}

func TestLines(t *testing.T) {
	s := Stats{
		Report: sim.FrameReport{
			Steps:       2,
			Dropped:     1,
			Steering:    sim.SteeringSeeking,
			Target:      rl.Vector3{X: 3, Y: 1, Z: -4},
			HasTarget:   true,
			Translation: rl.Vector3{X: 1, Y: 1, Z: -1},
		},
		Dropped:  5,
		Sleeping: true,
		Hovered:  "-",
	}

	text := strings.Join(Lines(s), "\n")
	for _, want := range []string{
		"Steps: 2",
		"Dropped: 1 (total 5)",
		"Steering: seeking",
		"Target: (3.00, -4.00)",
		"Body: (1.00, 1.00, -1.00) sleeping",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in overlay:\n%s", want, text)
		}
	}

	s.Report.HasTarget = false
	if text := strings.Join(Lines(s), "\n"); !strings.Contains(text, "Target: none") {
		t.Errorf("Expected no target, got:\n%s", text)
	}
}

func TestOverlayContains(t *testing.T) {
	o := NewOverlay()
	o.Layout(1280, 9)

	if !o.Contains(rl.Vector2{X: 1200, Y: 20}) {
		t.Error("Point inside the panel should be captured")
	}
	if o.Contains(rl.Vector2{X: 640, Y: 360}) {
		t.Error("Screen centre should reach the world")
	}
}

func TestDescribeHit(t *testing.T) {
	hit := physics.RaycastHit{Point: rl.Vector3{X: 1, Y: 2, Z: 3}}

	if got := describeHit(hit, engine.NewGameObject("Player")); got != "Player at (1.00, 2.00, 3.00)" {
		t.Errorf("Unexpected description %q", got)
	}
	if got := describeHit(hit, nil); !strings.HasPrefix(got, "?") {
		t.Errorf("Unowned collider should be unnamed, got %q", got)
	}
}

func TestReleaseOverOverlayEndsDrag(t *testing.T) {
	w, err := world.New(config.Default(), 1280, 720)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	g := New(config.Default())
	g.World = w
	g.DebugMode = true
	g.Overlay.Layout(1280, 9)

	centre := rl.Vector2{X: 640, Y: 360}
	panel := rl.Vector2{X: 1200, Y: 20}

	g.handlePointer(pointerInput{Pos: centre, Pressed: true, Down: true})
	if !w.State.Targeting.Pressed() {
		t.Fatal("Press on the ground should start a drag")
	}
	target, _ := w.State.Steering.Target()

	g.handlePointer(pointerInput{Pos: panel, Released: true})
	if w.State.Targeting.Pressed() {
		t.Error("Release over the overlay should end the drag")
	}

	g.handlePointer(pointerInput{Pos: rl.Vector2{X: 900, Y: 360}, Down: true, Moved: true})
	if got, _ := w.State.Steering.Target(); got != target {
		t.Errorf("Drag after release moved the target to %v", got)
	}

	g.handlePointer(pointerInput{Pos: panel, Pressed: true, Down: true})
	if w.State.Targeting.Pressed() {
		t.Error("Press on the overlay should not reach the world")
	}
}
