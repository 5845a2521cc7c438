package game

import (
	"fmt"

	"isodemo/internal/engine"
	"isodemo/internal/physics"
	"isodemo/internal/sim"
	"isodemo/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayWidth  = 300
	overlayLine   = 20
	overlayMargin = 10
)

// Theme colors, dark with an indigo accent
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

// Stats is what the debug overlay shows for one frame.
type Stats struct {
	Report   sim.FrameReport
	Dropped  uint64
	Sleeping bool
	Contacts int
	Hovered  string
	Culled   int
	UpdateMs float64
	DrawMs   float64
}

// Overlay is the raygui debug panel in the top right corner.
type Overlay struct {
	Bounds rl.Rectangle
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Init applies the panel theme. Needs an open window.
func (o *Overlay) Init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Layout sizes the panel for the given screen width and line count.
func (o *Overlay) Layout(screenWidth int32, lines int) {
	h := float32(lines+2)*overlayLine + 2*overlayMargin
	o.Bounds = rl.Rectangle{
		X:      float32(screenWidth) - overlayWidth - overlayMargin,
		Y:      overlayMargin,
		Width:  overlayWidth,
		Height: h,
	}
}

// Contains reports whether a screen point is over the panel, so clicks on
// it do not retarget the character.
func (o *Overlay) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, o.Bounds)
}

func (o *Overlay) Draw(s Stats, r *world.Renderer) {
	lines := Lines(s)
	o.Layout(int32(rl.GetScreenWidth()), len(lines))

	gui.Panel(o.Bounds, "Debug")

	x := o.Bounds.X + overlayMargin
	y := o.Bounds.Y + overlayLine + overlayMargin/2
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: overlayWidth - 2*overlayMargin, Height: overlayLine}, line)
		y += overlayLine
	}

	r.ShowLight = gui.CheckBox(rl.Rectangle{X: x, Y: y + 4, Width: 14, Height: 14}, "Light gizmo", r.ShowLight)
}

// Lines formats the overlay text.
func Lines(s Stats) []string {
	rep := s.Report
	target := "none"
	if rep.HasTarget {
		target = fmt.Sprintf("(%.2f, %.2f)", rep.Target.X, rep.Target.Z)
	}
	body := "awake"
	if s.Sleeping {
		body = "sleeping"
	}
	return []string{
		fmt.Sprintf("Steps: %d  acc: %.4f", rep.Steps, rep.Accumulator),
		fmt.Sprintf("Dropped: %d (total %d)", rep.Dropped, s.Dropped),
		fmt.Sprintf("Steering: %s", rep.Steering),
		fmt.Sprintf("Target: %s", target),
		fmt.Sprintf("Body: (%.2f, %.2f, %.2f) %s", rep.Translation.X, rep.Translation.Y, rep.Translation.Z, body),
		fmt.Sprintf("Contacts: %d", s.Contacts),
		fmt.Sprintf("Hover: %s", s.Hovered),
		fmt.Sprintf("Culled: %d", s.Culled),
		fmt.Sprintf("Update: %.2fms  Draw: %.2fms", s.UpdateMs, s.DrawMs),
	}
}

func describeHit(hit physics.RaycastHit, owner *engine.GameObject) string {
	name := "?"
	if owner != nil {
		name = owner.Name
	}
	return fmt.Sprintf("%s at (%.2f, %.2f, %.2f)", name, hit.Point.X, hit.Point.Y, hit.Point.Z)
}
