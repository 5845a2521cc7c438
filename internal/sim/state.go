package sim

import (
	"isodemo/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stepper advances physics by exactly one fixed step.
type Stepper interface {
	Step()
}

// Body is the part of a rigid body the frame update reads and commands.
type Body interface {
	Translation() rl.Vector3
	SetLinvel(v rl.Vector3, wake bool)
}

// FrameReport summarises one Advance for the overlay and the logs.
type FrameReport struct {
	Steps       int
	Dropped     int
	Accumulator float32
	Steering    SteeringState
	Command     rl.Vector3 // only meaningful when Steering is not idle
	Target      rl.Vector3
	HasTarget   bool
	Translation rl.Vector3
}

// State holds everything the frame loop carries between frames.
type State struct {
	Clock     *Clock
	Targeting *Targeting
	Steering  *Steering
	Sync      *FrameSync
	Body      Body
}

func NewState(cfg config.Config, body Body, sync *FrameSync) *State {
	if sync == nil {
		sync = &FrameSync{}
	}
	return &State{
		Clock:     NewClock(cfg.FixedTimeStep, cfg.MaxStepsPerFrame),
		Targeting: NewTargeting(cfg.GroundHalfSize, cfg.RestHeight),
		Steering:  NewSteering(cfg.MoveSpeed, cfg.StopThreshold),
		Sync:      sync,
		Body:      body,
	}
}

// Press starts targeting and retargets along the ray.
func (s *State) Press(origin, direction rl.Vector3) bool {
	p, ok := s.Targeting.Press(origin, direction)
	if ok {
		s.Steering.SetTarget(p)
	}
	return ok
}

// Drag retargets only while pressed.
func (s *State) Drag(origin, direction rl.Vector3) bool {
	p, ok := s.Targeting.Drag(origin, direction)
	if ok {
		s.Steering.SetTarget(p)
	}
	return ok
}

func (s *State) Release() {
	s.Targeting.Release()
}

// Steer evaluates steering at the body's current position and applies the
// command. Idle leaves the body untouched.
func Steer(steering *Steering, body Body) (pos, cmd rl.Vector3, st SteeringState) {
	pos = body.Translation()
	cmd, st = steering.Update(pos)
	if st != SteeringIdle {
		body.SetLinvel(cmd, true)
	}
	return pos, cmd, st
}

// Advance runs one frame. Steering follows every fixed step, and a frame
// without a step still steers once. Presentation sync comes last.
func (s *State) Advance(dt float32, world Stepper) FrameReport {
	steps := s.Clock.Advance(dt)

	var pos, cmd rl.Vector3
	var st SteeringState
	arrived := false
	for i := 0; i < steps; i++ {
		world.Step()
		pos, cmd, st = Steer(s.Steering, s.Body)
		if st == SteeringArrived {
			arrived = true
		}
	}
	if steps == 0 {
		pos, cmd, st = Steer(s.Steering, s.Body)
	}
	// Steps after an arrival are idle, the frame still reports the arrival
	if arrived {
		st = SteeringArrived
	}

	s.Sync.Sync(pos, s.Steering.Yaw())

	target, hasTarget := s.Steering.Target()
	return FrameReport{
		Steps:       steps,
		Dropped:     s.Clock.Dropped(),
		Accumulator: s.Clock.Accumulator(),
		Steering:    st,
		Command:     cmd,
		Target:      target,
		HasTarget:   hasTarget,
		Translation: pos,
	}
}
