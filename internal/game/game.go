package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"isodemo/internal/config"
	"isodemo/internal/sim"
	"isodemo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindow is returned when raylib could not open a window.
var ErrWindow = errors.New("window unavailable")

type Game struct {
	Config    config.Config
	World     *world.World
	Renderer  *world.Renderer
	Overlay   *Overlay
	DebugMode bool

	report  sim.FrameReport
	drops   dropLog
	hovered string

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	return &Game{
		Config:    cfg,
		Renderer:  world.NewRenderer(),
		Overlay:   NewOverlay(),
		DebugMode: cfg.Debug,
	}
}

// Run opens the window, builds the world and drives the frame loop until
// the window is closed. Startup failures are returned, nothing is retried.
func (g *Game) Run() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.WindowWidth, g.Config.WindowHeight, "isodemo")
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return ErrWindow
	}
	rl.SetTargetFPS(g.Config.TargetFPS)

	// Initialize world after OpenGL context is created
	w, err := world.New(g.Config, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	defer w.Unload()
	g.World = w

	w.OnRetarget.AddListener(func(p rl.Vector3) {
		if g.DebugMode {
			log.Printf("Game: target (%.2f, %.2f)", p.X, p.Z)
		}
	})
	w.OnArrived.AddListener(func() {
		pos := w.Body.Translation()
		log.Printf("Game: arrived at (%.2f, %.2f)", pos.X, pos.Z)
	})

	g.Overlay.Init()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()

	g.handleInput()
	g.report = g.World.Update(rl.GetFrameTime())

	if g.drops.Record(g.report.Dropped, updateStart) {
		log.Printf("Game: dropped %d catch-up steps in the last second (cap %d per frame)",
			g.drops.Flush(), g.Config.MaxStepsPerFrame)
	}

	if g.DebugMode {
		mouse := rl.GetMousePosition()
		g.hovered = "-"
		if hit, owner, ok := g.World.Hover(mouse.X, mouse.Y); ok {
			g.hovered = describeHit(hit, owner)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleInput() {
	if rl.IsWindowResized() {
		g.World.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.Renderer.Debug = g.DebugMode
	}

	d := rl.GetMouseDelta()
	g.handlePointer(pointerInput{
		Pos:      rl.GetMousePosition(),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
		Moved:    d.X != 0 || d.Y != 0,
	})
}

// pointerInput is the left button state for one frame.
type pointerInput struct {
	Pos      rl.Vector2
	Pressed  bool
	Down     bool
	Released bool
	Moved    bool
}

// handlePointer routes the left button to the world. Presses and drags on
// the overlay are swallowed, releases never are.
func (g *Game) handlePointer(in pointerInput) {
	if !g.DebugMode || !g.Overlay.Contains(in.Pos) {
		switch {
		case in.Pressed:
			g.World.Press(in.Pos.X, in.Pos.Y)
		case in.Down && in.Moved:
			g.World.Drag(in.Pos.X, in.Pos.Y)
		}
	}
	if in.Released {
		g.World.Release()
	}
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	g.Renderer.Debug = g.DebugMode
	g.Renderer.Draw(g.World)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Click or drag on the ground to move", 10, 10, 20, rl.RayWhite)
	rl.DrawText("F1 to toggle debug view", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		stats := Stats{
			Report:   g.report,
			Dropped:  g.World.State.Clock.TotalDropped(),
			Sleeping: g.World.Body.IsSleeping(),
			Contacts: g.World.Physics.ContactCount(),
			Hovered:  g.hovered,
			Culled:   g.Renderer.Culled(),
			UpdateMs: g.updateMs,
			DrawMs:   g.drawMs,
		}
		g.Overlay.Draw(stats, g.Renderer)
	}
}

// dropLog batches dropped catch-up steps so they are logged at most once
// per second.
type dropLog struct {
	pending int
	last    time.Time
}

// Record adds n dropped steps and reports whether a log line is due.
func (d *dropLog) Record(n int, now time.Time) bool {
	d.pending += n
	if d.pending == 0 || now.Sub(d.last) < time.Second {
		return false
	}
	d.last = now
	return true
}

// Flush returns the pending count and resets it.
func (d *dropLog) Flush() int {
	n := d.pending
	d.pending = 0
	return n
}
